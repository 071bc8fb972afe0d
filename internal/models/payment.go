package models

import "time"

// Payment.Property is a free-text reference to a property title, not a
// foreign key. A payment may point at a property that no longer exists.
type Payment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Property    string    `gorm:"size:255" json:"property"`
	Tenant      string    `gorm:"size:255" json:"tenant"`
	Amount      float64   `json:"amount"`
	PaymentType string    `gorm:"size:50" json:"payment_type"`
	TxnID       string    `gorm:"size:100" json:"txn_id"`
	Status      string    `gorm:"size:50;default:Pending" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
