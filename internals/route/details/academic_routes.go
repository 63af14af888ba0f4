package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "vtop_backend/internals/features/academics/attendance/route"
	courseRoute "vtop_backend/internals/features/academics/courses/route"
	eligibilityRoute "vtop_backend/internals/features/academics/eligibility/route"
)

func AcademicUserRoutes(r fiber.Router, db *gorm.DB) {
	courseRoute.UserCourseRoutes(r, db)
	attendanceRoute.UserAttendanceRoutes(r, db)
	eligibilityRoute.UserEligibilityRoutes(r, db)
}

func AcademicFacultyRoutes(r fiber.Router, db *gorm.DB) {
	courseRoute.FacultyCourseRoutes(r, db)
	attendanceRoute.FacultyAttendanceRoutes(r, db)
}

func AcademicAdminRoutes(r fiber.Router, db *gorm.DB) {
	courseRoute.AdminCourseRoutes(r, db)
	attendanceRoute.AdminAttendanceRoutes(r, db)
}
