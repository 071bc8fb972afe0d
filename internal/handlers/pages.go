package handlers

import (
	"net/http"

	"rentdesk/internal/database"
	"rentdesk/internal/models"

	"github.com/gin-gonic/gin"
)

func IndexPage(c *gin.Context) {
	render(c, http.StatusOK, "index.html", nil)
}

// DashboardPage shows row counts per table.
func DashboardPage(c *gin.Context) {
	var props, pays, qs, emps int64
	database.DB.Model(&models.Property{}).Count(&props)
	database.DB.Model(&models.Payment{}).Count(&pays)
	database.DB.Model(&models.Query{}).Count(&qs)
	database.DB.Model(&models.Employee{}).Count(&emps)

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"Properties": props,
		"Payments":   pays,
		"Queries":    qs,
		"Employees":  emps,
	})
}

func PropertiesPage(c *gin.Context) {
	render(c, http.StatusOK, "properties.html", nil)
}

func EmployeesPage(c *gin.Context) {
	render(c, http.StatusOK, "employees.html", nil)
}

// UploadedFile keeps the short /uploads/... links working; the files
// themselves live in the public static tree.
func UploadedFile(c *gin.Context) {
	c.Redirect(http.StatusFound, "/static/uploads/"+c.Param("filename"))
}
