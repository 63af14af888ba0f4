package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "vtop_backend/internals/features/finance/payments/controller"
)

// PublicPaymentRoutes: gateway webhook, no auth.
func PublicPaymentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentController.NewPaymentController(db)
	r.Post("/payments/notification", ctl.Notification)
}

// AdminPaymentRoutes: invoice management.
func AdminPaymentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentController.NewPaymentController(db)
	r.Post("/payments/invoices", ctl.CreateInvoice)
}

// UserPaymentRoutes: dues listing on dashboards.
func UserPaymentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentController.NewPaymentController(db)
	r.Get("/payments", ctl.List)
}
