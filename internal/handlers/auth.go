package handlers

import (
	"net/http"

	"rentdesk/internal/database"
	"rentdesk/internal/middleware"
	"rentdesk/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid credentials"})
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", form.Username).First(&user).Error; err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid credentials"})
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("username", user.Username)
	sess.Set("role", string(user.Role))
	_ = sess.Save()

	next := c.Query("next")
	if next == "" {
		next = "/dashboard"
	}
	c.Redirect(http.StatusFound, next)
}

func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/")
}

// requireLogin is the inline guard for write endpoints whose read side is
// public. Anonymous callers get a JSON 401 instead of the login redirect.
func requireLogin(c *gin.Context) bool {
	if _, ok := middleware.CurrentClaims(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return false
	}
	return true
}

// requireAdmin backs the delete endpoints, which stay admin-only even
// though the surrounding routes accept any signed-in user.
func requireAdmin(c *gin.Context) bool {
	claims, ok := middleware.CurrentClaims(c)
	if !ok || !claims.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin required"})
		return false
	}
	return true
}
