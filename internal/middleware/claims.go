package middleware

import (
	"rentdesk/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Claims is the typed view of the session. Guards and handlers consult
// this structure only; raw session values never leave this package.
type Claims struct {
	UserID   uint
	Username string
	Role     models.UserRole
}

func (cl Claims) IsAdmin() bool {
	return cl.Role == models.RoleAdmin
}

const claimsKey = "SessionClaims"

// InjectClaims converts the raw session into Claims once per request.
func InjectClaims() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uid, ok := sess.Get("user_id").(uint); ok && uid > 0 {
			username, _ := sess.Get("username").(string)
			role, _ := sess.Get("role").(string)

			c.Set(claimsKey, Claims{
				UserID:   uid,
				Username: username,
				Role:     models.UserRole(role),
			})
		}

		c.Next()
	}
}

// CurrentClaims reports the signed-in user, if any.
func CurrentClaims(c *gin.Context) (Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return Claims{}, false
	}
	claims, ok := v.(Claims)
	return claims, ok
}
