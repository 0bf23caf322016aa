package audit

import (
	"fmt"

	"shipment-portal/internal/database"
	"shipment-portal/internal/models"
)

type LogOptions struct {
	ActorEmail  string
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
}

func WriteLog(opts LogOptions) error {
	entry := models.AuditLog{
		ActorEmail:  opts.ActorEmail,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		return fmt.Errorf("audit log write failed: %w", err)
	}

	return nil
}
