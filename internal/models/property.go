package models

type Property struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Title    string  `gorm:"size:255" json:"title"`
	District string  `gorm:"size:100" json:"district"`
	Status   string  `gorm:"size:50;default:Available" json:"status"`
	Price    float64 `gorm:"default:0" json:"price"`
	Image    string  `gorm:"size:255" json:"image"`
}
