package database

import (
	"log"
	"os"

	"rentdesk/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed inserts the default accounts and demo records. Each table is only
// touched while it is empty, so restarts never duplicate data.
func Seed(db *gorm.DB) {
	seedUsers(db)
	seedProperties(db)
	seedEmployees(db)
	seedPayments(db)
	seedQueries(db)
}

func tableEmpty(db *gorm.DB, model any) bool {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		log.Printf("failed to count rows for seed check: %v", err)
		return false
	}
	return count == 0
}

func seedUsers(db *gorm.DB) {
	if !tableEmpty(db, &models.User{}) {
		return
	}

	type seedUser struct {
		Username string
		Password string
		EnvVar   string
		Role     models.UserRole
	}

	users := []seedUser{
		{Username: "admin", Password: "adminpass", EnvVar: "ADMIN_PASSWORD", Role: models.RoleAdmin},
		{Username: "staff", Password: "staffpass", EnvVar: "STAFF_PASSWORD", Role: models.RoleStaff},
	}

	for _, u := range users {
		if pw := os.Getenv(u.EnvVar); pw != "" {
			u.Password = pw
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("failed to hash password for %s: %v", u.Username, err)
			continue
		}

		user := models.User{
			Username:     u.Username,
			PasswordHash: string(hash),
			Role:         u.Role,
		}

		if err := db.Create(&user).Error; err != nil {
			log.Printf("failed to create seed user %s: %v", u.Username, err)
			continue
		}

		log.Printf("created seed user: %s (role=%s)", u.Username, u.Role)
	}
}

func seedProperties(db *gorm.DB) {
	if !tableEmpty(db, &models.Property{}) {
		return
	}

	props := []models.Property{
		{Title: "Sunny 2BHK in Mitte", District: "Mitte", Status: "Available", Price: 1200, Image: "property1.jpg"},
		{Title: "Cozy Studio in Kreuzberg", District: "Kreuzberg", Status: "Occupied", Price: 800, Image: "property2.jpg"},
		{Title: "Family Flat in Prenzlauer Berg", District: "Prenzlauer Berg", Status: "Available", Price: 1500, Image: "property3.jpg"},
		{Title: "Modern Loft in Charlottenburg", District: "Charlottenburg", Status: "Occupied", Price: 2000},
		{Title: "Budget Room in Neukölln", District: "Neukölln", Status: "Available", Price: 600},
	}

	if err := db.Create(&props).Error; err != nil {
		log.Printf("failed to seed properties: %v", err)
	}
}

func seedEmployees(db *gorm.DB) {
	if !tableEmpty(db, &models.Employee{}) {
		return
	}

	emps := []models.Employee{
		{Name: "Alice", Role: "Admin", Permissions: "all"},
		{Name: "Bob", Role: "Manager", Permissions: "manage_properties"},
		{Name: "Clara", Role: "Support", Permissions: "queries"},
	}

	if err := db.Create(&emps).Error; err != nil {
		log.Printf("failed to seed employees: %v", err)
	}
}

func seedPayments(db *gorm.DB) {
	if !tableEmpty(db, &models.Payment{}) {
		return
	}

	pays := []models.Payment{
		{Property: "Sunny 2BHK in Mitte", Tenant: "John Doe", Amount: 1200, PaymentType: "Bank Transfer", TxnID: "TXN001", Status: "Confirmed"},
		{Property: "Cozy Studio in Kreuzberg", Tenant: "Jane Smith", Amount: 800, PaymentType: "Cash", TxnID: "TXN002", Status: "Confirmed"},
		{Property: "Family Flat in Prenzlauer Berg", Tenant: "Paul Müller", Amount: 1500, PaymentType: "Card", TxnID: "TXN003", Status: "Pending"},
		{Property: "Modern Loft in Charlottenburg", Tenant: "Anna Schmidt", Amount: 2000, PaymentType: "Bank Transfer", TxnID: "TXN004", Status: "Confirmed"},
		{Property: "Budget Room in Neukölln", Tenant: "Leo Weber", Amount: 600, PaymentType: "UPI", TxnID: "TXN005", Status: "Pending"},
	}

	if err := db.Create(&pays).Error; err != nil {
		log.Printf("failed to seed payments: %v", err)
	}
}

func seedQueries(db *gorm.DB) {
	if !tableEmpty(db, &models.Query{}) {
		return
	}

	qs := []models.Query{
		{Subject: "WiFi Issue", Message: "Internet is down in my flat", Status: "Pending"},
		{Subject: "Rent Confirmation", Message: "Did you receive my rent payment?", Status: "In Progress"},
		{Subject: "Repair Request", Message: "The heater is not working.", Status: "Resolved"},
	}

	if err := db.Create(&qs).Error; err != nil {
		log.Printf("failed to seed queries: %v", err)
	}
}
