package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "vtop_backend/internals/features/users/auth/controller"
	"vtop_backend/internals/middlewares"
)

// AuthRoutes registers the public auth endpoints.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/logout", ctl.Logout)
}

// MeRoutes registers authenticated self-service endpoints.
func MeRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)
	r.Get("/me", ctl.Me)
}
