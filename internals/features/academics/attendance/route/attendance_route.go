package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attController "vtop_backend/internals/features/academics/attendance/controller"
)

// FacultyAttendanceRoutes: roll-call entry point (faculty group).
func FacultyAttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attController.NewAttendanceController(db)
	att := r.Group("/attendance")
	att.Post("/roll-call", ctl.RollCall)
	att.Get("/entries", ctl.ListEntries)
}

// AdminAttendanceRoutes: override entry point (admin group).
func AdminAttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attController.NewAttendanceController(db)
	att := r.Group("/attendance")
	att.Patch("/entries/:id", ctl.Override)
}

// UserAttendanceRoutes: dashboard reads (all authenticated roles).
func UserAttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attController.NewAttendanceController(db)
	att := r.Group("/attendance")
	att.Get("/summary", ctl.GetSummary)
	att.Get("/summaries/:student_id", ctl.ListSummaries)
	att.Get("/entries", ctl.ListEntries)
}
