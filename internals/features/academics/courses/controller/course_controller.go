package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseDTO "vtop_backend/internals/features/academics/courses/dto"
	courseModel "vtop_backend/internals/features/academics/courses/model"
	helper "vtop_backend/internals/helpers"
)

type CourseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{
		DB:        db,
		Validator: validator.New(),
	}
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "violates unique constraint") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "sqlstate 23505")
}

// ===============================
// Handlers
// ===============================

// POST /api/a/courses
func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req courseDTO.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Course code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Course created", courseDTO.ToCourseResponse(m))
}

// GET /api/u/courses
func (ctl *CourseController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).Model(&courseModel.CourseModel{})
	if sem := strings.TrimSpace(c.Query("semester")); sem != "" {
		tx = tx.Where("course_semester = ?", sem)
	}
	if fac := strings.TrimSpace(c.Query("faculty_id")); fac != "" {
		fid, err := uuid.Parse(fac)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "faculty_id is not a valid UUID")
		}
		tx = tx.Where("course_faculty_id = ?", fid)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []courseModel.CourseModel
	if err := tx.Order("course_code ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]courseDTO.CourseResponse, 0, len(rows))
	for i := range rows {
		out = append(out, courseDTO.ToCourseResponse(&rows[i]))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"courses":    out,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// PATCH /api/a/courses/:id
func (ctl *CourseController) Update(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var req courseDTO.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m courseModel.CourseModel
	if err := ctl.DB.WithContext(c.Context()).First(&m, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]interface{}{}
	if req.CourseTitle != nil {
		updates["course_title"] = strings.TrimSpace(*req.CourseTitle)
	}
	if req.CourseCredits != nil {
		updates["course_credits"] = *req.CourseCredits
	}
	if req.CourseSemester != nil {
		updates["course_semester"] = strings.TrimSpace(*req.CourseSemester)
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Nothing to update", courseDTO.ToCourseResponse(&m))
	}

	if err := ctl.DB.WithContext(c.Context()).Model(&m).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Course updated", courseDTO.ToCourseResponse(&m))
}

// DELETE /api/a/courses/:id
func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("course_id = ?", courseID).
		Delete(&courseModel.CourseModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	return helper.JsonDeleted(c, "Course deleted", nil)
}
