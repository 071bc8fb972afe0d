package handlers

import (
	"rentdesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and makes the signed-in user visible to every template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if claims, ok := middleware.CurrentClaims(c); ok {
		data["Username"] = claims.Username
		data["Role"] = claims.Role
		data["IsAdmin"] = claims.IsAdmin()
	}

	c.HTML(status, tmpl, data)
}
