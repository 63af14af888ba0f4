package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attService "vtop_backend/internals/features/academics/attendance/service"
	courseDTO "vtop_backend/internals/features/academics/courses/dto"
	courseModel "vtop_backend/internals/features/academics/courses/model"
	helper "vtop_backend/internals/helpers"
)

type CourseRegistrationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCourseRegistrationController(db *gorm.DB) *CourseRegistrationController {
	return &CourseRegistrationController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/a/courses/:id/registrations
func (ctl *CourseRegistrationController) Register(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var req courseDTO.RegisterStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// course must exist
	var count int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&courseModel.CourseModel{}).
		Where("course_id = ?", courseID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	m := courseModel.CourseRegistrationModel{
		CourseRegistrationStudentID: req.StudentID,
		CourseRegistrationCourseID:  courseID,
		CourseRegistrationSemester:  req.Semester,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Student is already registered for this course")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Student registered", m)
}

// DELETE /api/a/registrations/:id
// Removes the registration and the pair's cached attendance summary in one
// transaction. The journal rows stay: the log is append-only history, the
// summary is a cache keyed by an active registration.
func (ctl *CourseRegistrationController) Deregister(c *fiber.Ctx) error {
	regID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid registration id")
	}

	var reg courseModel.CourseRegistrationModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&reg, "course_registration_id = ?", regID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&reg).Error; err != nil {
			return err
		}
		return attService.DropSummaryTx(tx,
			reg.CourseRegistrationStudentID, reg.CourseRegistrationCourseID).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Registration removed", nil)
}

// GET /api/f/courses/:id/roster
func (ctl *CourseRegistrationController) Roster(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	ids, err := courseModel.RosterStudentIDs(ctl.DB.WithContext(c.Context()), courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"course_id":   courseID,
		"student_ids": ids,
	})
}
