package handlers

import (
	"net/http"
	"strconv"

	"rentdesk/internal/database"
	"rentdesk/internal/models"

	"github.com/gin-gonic/gin"
)

func ListPayments(c *gin.Context) {
	var pays []models.Payment
	database.DB.Order("created_at desc").Find(&pays)
	c.JSON(http.StatusOK, pays)
}

func CreatePayment(c *gin.Context) {
	if !requireLogin(c) {
		return
	}

	data := payload(c)

	status := strField(data, "status")
	if status == "" {
		status = "Pending"
	}

	pay := models.Payment{
		Property:    strField(data, "property"),
		Tenant:      strField(data, "tenant"),
		Amount:      numField(data, "amount"),
		PaymentType: strField(data, "payment_type"),
		TxnID:       strField(data, "txn_id"),
		Status:      status,
	}
	if err := database.DB.Create(&pay).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save payment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// UpdatePaymentStatus lets any signed-in user move a payment between
// states; the status values themselves are free text set by staff.
func UpdatePaymentStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
		return
	}

	data := payload(c)
	if err := database.DB.Model(&models.Payment{}).Where("id = ?", id).
		Update("status", strField(data, "status")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func DeletePayment(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
		return
	}

	if err := database.DB.Delete(&models.Payment{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete payment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
