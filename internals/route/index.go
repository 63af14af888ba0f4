package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vtop_backend/internals/constants"
	authMiddleware "vtop_backend/internals/middlewares/auth"
	routeDetails "vtop_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC routes...")
	api := app.Group("/api")
	routeDetails.AuthRoutes(api, db)
	routeDetails.FinancePublicRoutes(api, db)

	// ===================== PRIVATE (any role) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	routeDetails.AcademicUserRoutes(user, db)
	routeDetails.FinanceUserRoutes(user, db)
	routeDetails.MeRoutes(user, db)

	// ===================== FACULTY =====================
	log.Println("[INFO] Setting up FACULTY group (Auth + RoleCheck)...")
	faculty := app.Group("/api/f",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorFaculty("roll-call"),
			constants.FacultyAndAbove...,
		),
	)
	routeDetails.AcademicFacultyRoutes(faculty, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("administration"),
			constants.AdminOnly...,
		),
	)
	routeDetails.AcademicAdminRoutes(admin, db)
	routeDetails.FinanceAdminRoutes(admin, db)
}
