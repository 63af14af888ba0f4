package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eligibilityService "vtop_backend/internals/features/academics/eligibility/service"
	helper "vtop_backend/internals/helpers"
)

type EligibilityController struct {
	Service *eligibilityService.EligibilityService
}

func NewEligibilityController(db *gorm.DB) *EligibilityController {
	return &EligibilityController{
		Service: eligibilityService.NewEligibilityService(db),
	}
}

// GET /api/u/eligibility/hall-ticket/:student_id
func (ctl *EligibilityController) HallTicket(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id is not a valid UUID")
	}

	decision, err := ctl.Service.CheckHallTicket(c.UserContext(), studentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", decision)
}
