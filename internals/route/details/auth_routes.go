package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "vtop_backend/internals/features/users/auth/route"
)

func AuthRoutes(r fiber.Router, db *gorm.DB) {
	authRoute.AuthRoutes(r, db)
}

func MeRoutes(r fiber.Router, db *gorm.DB) {
	authRoute.MeRoutes(r, db)
}
