package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// RequireAuth sends anonymous requests to the login page, remembering the
// page they were after so login can send them back.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentClaims(c); !ok {
			c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.Path))
			c.Abort()
			return
		}
		c.Next()
	}
}
