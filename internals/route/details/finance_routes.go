package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentRoute "vtop_backend/internals/features/finance/payments/route"
)

func FinancePublicRoutes(r fiber.Router, db *gorm.DB) {
	paymentRoute.PublicPaymentRoutes(r, db)
}

func FinanceUserRoutes(r fiber.Router, db *gorm.DB) {
	paymentRoute.UserPaymentRoutes(r, db)
}

func FinanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	paymentRoute.AdminPaymentRoutes(r, db)
}
