package shipments

import (
	"log"
	"strconv"
	"strings"
	"time"

	"shipment-portal/internal/audit"
	"shipment-portal/internal/auth"
	"shipment-portal/internal/database"
	"shipment-portal/internal/flash"
	"shipment-portal/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	deliveryDateLayout = "2006-01-02"
	createdAtLayout    = "2006-01-02 15:04"
)

type ShipmentRow struct {
	ID             uint
	ShipmentNumber string
	Route          string
	Device         string
	PONumber       int
	NDCNumber      int
	SerialNumber   int
	GoodsType      string
	DeliveryDate   string
	DeliveryNumber int
	BatchID        string
	Description    string
	CreatedBy      string
	CreatedAt      string
}

// createForm carries the raw submission so validation failures can echo it
// back into the re-rendered form.
type createForm struct {
	ShipmentNumber string
	Route          string
	Device         string
	PONumber       string
	NDCNumber      string
	SerialNumber   string
	GoodsType      string
	DeliveryDate   string
	DeliveryNumber string
	BatchID        string
	Description    string
}

func readCreateForm(c *fiber.Ctx) createForm {
	return createForm{
		ShipmentNumber: strings.TrimSpace(c.FormValue("shipmentNumber")),
		Route:          strings.TrimSpace(c.FormValue("route")),
		Device:         strings.TrimSpace(c.FormValue("device")),
		PONumber:       strings.TrimSpace(c.FormValue("poNumber")),
		NDCNumber:      strings.TrimSpace(c.FormValue("ndcNumber")),
		SerialNumber:   strings.TrimSpace(c.FormValue("serialNumber")),
		GoodsType:      strings.TrimSpace(c.FormValue("goodsType")),
		DeliveryDate:   strings.TrimSpace(c.FormValue("deliveryDate")),
		DeliveryNumber: strings.TrimSpace(c.FormValue("deliveryNumber")),
		BatchID:        strings.TrimSpace(c.FormValue("batchId")),
		Description:    strings.TrimSpace(c.FormValue("shipmentDesc")),
	}
}

// GET /admin/shipments/create
func CreatePageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("create_shipment", fiber.Map{
			"Message": flash.Pop(c, flash.MessageCookie),
			"Form":    createForm{},
		})
	}
}

// POST /admin/shipments/create
//
// Validation failures re-render the form with an inline error, the submitted
// values echoed back, and nothing inserted; only a fully parsed submission
// reaches the store.
func CreateShipmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := readCreateForm(c)

		renderError := func(msg string) error {
			return c.Render("create_shipment", fiber.Map{"Error": msg, "Form": form})
		}

		if form.ShipmentNumber == "" || form.Route == "" || form.Device == "" ||
			form.GoodsType == "" || form.BatchID == "" || form.Description == "" {
			return renderError("All fields are required.")
		}

		poNumber, err := strconv.Atoi(form.PONumber)
		if err != nil {
			return renderError("PO number must be a whole number.")
		}
		ndcNumber, err := strconv.Atoi(form.NDCNumber)
		if err != nil {
			return renderError("NDC number must be a whole number.")
		}
		serialNumber, err := strconv.Atoi(form.SerialNumber)
		if err != nil {
			return renderError("Serial number must be a whole number.")
		}
		deliveryNumber, err := strconv.Atoi(form.DeliveryNumber)
		if err != nil {
			return renderError("Delivery number must be a whole number.")
		}

		deliveryDate, err := time.Parse(deliveryDateLayout, form.DeliveryDate)
		if err != nil {
			return renderError("Invalid date format. Use YYYY-MM-DD.")
		}

		email, _ := auth.CurrentUser(c)

		shipment := models.Shipment{
			ShipmentNumber: form.ShipmentNumber,
			Route:          form.Route,
			Device:         form.Device,
			PONumber:       poNumber,
			NDCNumber:      ndcNumber,
			SerialNumber:   serialNumber,
			GoodsType:      form.GoodsType,
			DeliveryDate:   deliveryDate,
			DeliveryNumber: deliveryNumber,
			BatchID:        form.BatchID,
			Description:    form.Description,
			CreatedBy:      email,
		}
		if err := database.DB.Create(&shipment).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create the shipment")
		}

		if err := audit.WriteLog(audit.LogOptions{
			ActorEmail:  email,
			EntityType:  "shipment",
			EntityID:    shipment.ID,
			Action:      models.AuditActionCreate,
			Description: "created shipment " + form.ShipmentNumber,
		}); err != nil {
			log.Println("audit:", err)
		}

		flash.Set(c, flash.MessageCookie, "Shipment created successfully!", 5*time.Second)
		return c.Redirect("/admin/shipments/create", fiber.StatusSeeOther)
	}
}

// GET /admin/shipments
func ListShipmentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var list []models.Shipment
		if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list shipments")
		}

		rows := make([]ShipmentRow, 0, len(list))
		for _, s := range list {
			rows = append(rows, ShipmentRow{
				ID:             s.ID,
				ShipmentNumber: s.ShipmentNumber,
				Route:          s.Route,
				Device:         s.Device,
				PONumber:       s.PONumber,
				NDCNumber:      s.NDCNumber,
				SerialNumber:   s.SerialNumber,
				GoodsType:      s.GoodsType,
				DeliveryDate:   displayDate(s.DeliveryDate, deliveryDateLayout),
				DeliveryNumber: s.DeliveryNumber,
				BatchID:        s.BatchID,
				Description:    s.Description,
				CreatedBy:      s.CreatedBy,
				CreatedAt:      displayDate(s.CreatedAt, createdAtLayout),
			})
		}

		return c.Render("shipment_details", fiber.Map{"Shipments": rows})
	}
}

// displayDate renders stored timestamps for templates. Values that already
// arrive as display strings pass through untouched, so formatting is
// idempotent.
func displayDate(v any, layout string) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format(layout)
	case string:
		return t
	}
	return ""
}
