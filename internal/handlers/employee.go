package handlers

import (
	"net/http"
	"strconv"

	"rentdesk/internal/database"
	"rentdesk/internal/models"

	"github.com/gin-gonic/gin"
)

func ListEmployees(c *gin.Context) {
	var emps []models.Employee
	database.DB.Order("id desc").Find(&emps)
	c.JSON(http.StatusOK, emps)
}

// SaveEmployee inserts or, when an id field is present, updates. Any
// signed-in user may edit any record, including the permissions label.
func SaveEmployee(c *gin.Context) {
	data := payload(c)

	if idStr := strField(data, "id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
			return
		}

		updates := map[string]any{
			"name":        strField(data, "name"),
			"role":        strField(data, "role"),
			"permissions": strField(data, "permissions"),
		}
		if err := database.DB.Model(&models.Employee{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save employee"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	emp := models.Employee{
		Name:        strField(data, "name"),
		Role:        strField(data, "role"),
		Permissions: strField(data, "permissions"),
	}
	if err := database.DB.Create(&emp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save employee"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func DeleteEmployee(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
		return
	}

	if err := database.DB.Delete(&models.Employee{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete employee"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
