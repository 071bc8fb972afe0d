package models

import "time"

type Query struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Subject   string    `gorm:"size:255" json:"subject"`
	Message   string    `gorm:"type:text" json:"message"`
	Status    string    `gorm:"size:50;default:Pending" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
