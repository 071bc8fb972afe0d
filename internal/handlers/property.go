package handlers

import (
	"net/http"
	"path/filepath"
	"strconv"

	"rentdesk/internal/database"
	"rentdesk/internal/models"

	"github.com/gin-gonic/gin"
)

func ListProperties(c *gin.Context) {
	var props []models.Property
	database.DB.Order("id desc").Find(&props)
	c.JSON(http.StatusOK, props)
}

// SaveProperty handles both insert and update: a present id field means
// update that row, otherwise a new property is created. An uploaded image,
// if any, replaces the stored filename.
func SaveProperty(c *gin.Context) {
	if !requireLogin(c) {
		return
	}

	data := payload(c)

	image := ""
	if file, err := c.FormFile("image"); err == nil && file.Filename != "" {
		name := sanitizeFilename(file.Filename)
		if name != "" {
			// same name overwrites the previous upload
			if err := c.SaveUploadedFile(file, filepath.Join(UploadDir, name)); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
				return
			}
			image = name
		}
	}

	if idStr := strField(data, "id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
			return
		}

		updates := map[string]any{
			"title":    strField(data, "title"),
			"district": strField(data, "district"),
			"status":   strField(data, "status"),
			"price":    numField(data, "price"),
		}
		if image != "" {
			updates["image"] = image
		}

		if err := database.DB.Model(&models.Property{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save property"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	prop := models.Property{
		Title:    strField(data, "title"),
		District: strField(data, "district"),
		Status:   strField(data, "status"),
		Price:    numField(data, "price"),
		Image:    image,
	}
	if err := database.DB.Create(&prop).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save property"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func DeleteProperty(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
		return
	}

	if err := database.DB.Delete(&models.Property{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete property"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// PropertyStatusBreakdown counts properties per distinct status label.
func PropertyStatusBreakdown(c *gin.Context) {
	var rows []struct {
		Status string
		Count  int64
	}
	database.DB.Model(&models.Property{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows)

	out := map[string]int64{}
	for _, r := range rows {
		out[r.Status] = r.Count
	}
	c.JSON(http.StatusOK, out)
}
