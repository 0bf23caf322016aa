package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

// AuditLog records who changed what. Actor identity is denormalized to the
// email so the row survives the account being deleted.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index"`

	ActorEmail string `gorm:"size:100;index;not null"`

	// Entity: "user" or "shipment".
	EntityType string `gorm:"size:50;index;not null"`
	EntityID   uint   `gorm:"index"`

	Action      AuditAction `gorm:"size:20;not null"`
	Description string      `gorm:"size:255"`
}
