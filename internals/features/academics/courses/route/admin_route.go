package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "vtop_backend/internals/features/academics/courses/controller"
)

// AdminCourseRoutes: catalog + registration management (admin group).
func AdminCourseRoutes(r fiber.Router, db *gorm.DB) {
	courseCtl := courseController.NewCourseController(db)
	regCtl := courseController.NewCourseRegistrationController(db)

	courses := r.Group("/courses")
	courses.Post("/", courseCtl.Create)
	courses.Patch("/:id", courseCtl.Update)
	courses.Delete("/:id", courseCtl.Delete)
	courses.Post("/:id/registrations", regCtl.Register)

	r.Delete("/registrations/:id", regCtl.Deregister)
}

// FacultyCourseRoutes: roster read for roll-call screens.
func FacultyCourseRoutes(r fiber.Router, db *gorm.DB) {
	regCtl := courseController.NewCourseRegistrationController(db)
	r.Get("/courses/:id/roster", regCtl.Roster)
}

// UserCourseRoutes: catalog browsing for every authenticated role.
func UserCourseRoutes(r fiber.Router, db *gorm.DB) {
	courseCtl := courseController.NewCourseController(db)
	r.Get("/courses", courseCtl.List)
}
