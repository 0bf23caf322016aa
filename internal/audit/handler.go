package audit

import (
	"shipment-portal/internal/database"
	"shipment-portal/internal/models"

	"github.com/gofiber/fiber/v2"
)

type LogRow struct {
	CreatedAt   string
	ActorEmail  string
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
}

// GET /admin/audit-logs
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var logs []models.AuditLog
		if err := database.DB.Order("created_at DESC").Limit(200).Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list audit logs")
		}

		rows := make([]LogRow, 0, len(logs))
		for _, l := range logs {
			rows = append(rows, LogRow{
				CreatedAt:   l.CreatedAt.Format("2006-01-02 15:04"),
				ActorEmail:  l.ActorEmail,
				EntityType:  l.EntityType,
				EntityID:    l.EntityID,
				Action:      l.Action,
				Description: l.Description,
			})
		}

		return c.Render("audit_logs", fiber.Map{"Logs": rows})
	}
}
