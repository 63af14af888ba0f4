package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eligibilityController "vtop_backend/internals/features/academics/eligibility/controller"
)

// UserEligibilityRoutes: hall-ticket gate read (all authenticated roles).
func UserEligibilityRoutes(r fiber.Router, db *gorm.DB) {
	ctl := eligibilityController.NewEligibilityController(db)
	r.Get("/eligibility/hall-ticket/:student_id", ctl.HallTicket)
}
