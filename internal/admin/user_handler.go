package admin

import (
	"log"
	"strconv"
	"strings"

	"shipment-portal/internal/audit"
	"shipment-portal/internal/auth"
	"shipment-portal/internal/database"
	"shipment-portal/internal/models"

	"github.com/gofiber/fiber/v2"
)

type UserRow struct {
	ID    uint
	Name  string
	Email string
	Role  models.UserRole
}

func toUserRow(u models.User) UserRow {
	return UserRow{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// GET /admin/users
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.Order("id").Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list users")
		}

		rows := make([]UserRow, 0, len(users))
		for _, u := range users {
			rows = append(rows, toUserRow(u))
		}

		return c.Render("user_details", fiber.Map{"Users": rows})
	}
}

// GET /admin/users/edit/:id
func EditUserFormHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var user models.User
		if err := database.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
			return c.Redirect("/admin/users", fiber.StatusSeeOther)
		}

		return c.Render("edit_user", fiber.Map{"User": toUserRow(user)})
	}
}

// POST /admin/users/edit/:id
func UpdateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		name := strings.TrimSpace(c.FormValue("username"))
		email := strings.TrimSpace(strings.ToLower(c.FormValue("email")))
		role := models.UserRole(c.FormValue("role"))

		if name == "" || email == "" || (role != models.RoleAdmin && role != models.RoleUser) {
			return c.Render("edit_user", fiber.Map{
				"Message": "Username, email and a valid role are required.",
				"User":    UserRow{ID: parseID(id), Name: name, Email: email, Role: role},
			})
		}

		updates := map[string]any{"name": name, "email": email, "role": role}
		if err := database.DB.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update the user")
		}

		actor, _ := auth.CurrentUser(c)
		writeAudit(audit.LogOptions{
			ActorEmail:  actor,
			EntityType:  "user",
			EntityID:    parseID(id),
			Action:      models.AuditActionUpdate,
			Description: "updated account " + email,
		})

		return c.Redirect("/admin/users", fiber.StatusSeeOther)
	}
}

// POST /admin/users/delete/:id
func DeleteUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := database.DB.Delete(&models.User{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete the user")
		}

		actor, _ := auth.CurrentUser(c)
		writeAudit(audit.LogOptions{
			ActorEmail:  actor,
			EntityType:  "user",
			EntityID:    parseID(id),
			Action:      models.AuditActionDelete,
			Description: "deleted account",
		})

		return c.Redirect("/admin/users", fiber.StatusSeeOther)
	}
}

// Audit failures must not fail the request that triggered them.
func writeAudit(opts audit.LogOptions) {
	if err := audit.WriteLog(opts); err != nil {
		log.Println("audit:", err)
	}
}

func parseID(raw string) uint {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
