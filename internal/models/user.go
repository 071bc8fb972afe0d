package models

type UserRole string

const (
	RoleAdmin UserRole = "Admin"
	RoleStaff UserRole = "Staff"
)

type User struct {
	ID           uint     `gorm:"primaryKey"`
	Username     string   `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`
}
