package models

// Permissions is a free-text label shown in the UI; no guard consults it.
type Employee struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255" json:"name"`
	Role        string `gorm:"size:100" json:"role"`
	Permissions string `gorm:"size:255" json:"permissions"`
}
