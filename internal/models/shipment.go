package models

import "time"

// Shipment is immutable once created: there is no update or delete path,
// identity is the store-assigned id.
type Shipment struct {
	ID             uint      `gorm:"primaryKey"`
	ShipmentNumber string    `gorm:"size:100;not null"`
	Route          string    `gorm:"size:100;not null"`
	Device         string    `gorm:"size:100;not null"`
	PONumber       int       `gorm:"not null"`
	NDCNumber      int       `gorm:"not null"`
	SerialNumber   int       `gorm:"not null"`
	GoodsType      string    `gorm:"size:100;not null"`
	DeliveryDate   time.Time `gorm:"index;not null"`
	DeliveryNumber int       `gorm:"not null"`
	BatchID        string    `gorm:"size:100;not null"`
	Description    string    `gorm:"size:255"`
	CreatedBy      string    `gorm:"size:100;index;not null"` // creator's email
	CreatedAt      time.Time
}
