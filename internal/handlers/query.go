package handlers

import (
	"net/http"

	"rentdesk/internal/database"
	"rentdesk/internal/models"

	"github.com/gin-gonic/gin"
)

func ListQueries(c *gin.Context) {
	var qs []models.Query
	database.DB.Order("created_at desc").Find(&qs)
	c.JSON(http.StatusOK, qs)
}

func CreateQuery(c *gin.Context) {
	if !requireLogin(c) {
		return
	}

	data := payload(c)

	status := strField(data, "status")
	if status == "" {
		status = "Pending"
	}

	q := models.Query{
		Subject: strField(data, "subject"),
		Message: strField(data, "message"),
		Status:  status,
	}
	if err := database.DB.Create(&q).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save query"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// UpdateQueryStatus takes the target id in the body rather than the path.
// It deliberately carries no auth guard; see DESIGN.md before tightening.
func UpdateQueryStatus(c *gin.Context) {
	data := payload(c)

	id := int(numField(data, "id"))
	if err := database.DB.Model(&models.Query{}).Where("id = ?", id).
		Update("status", strField(data, "status")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update query"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}
