package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attDTO "vtop_backend/internals/features/academics/attendance/dto"
	attModel "vtop_backend/internals/features/academics/attendance/model"
	attService "vtop_backend/internals/features/academics/attendance/service"
	helper "vtop_backend/internals/helpers"
)

type AttendanceController struct {
	DB        *gorm.DB
	Service   *attService.AggregatorService
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:        db,
		Service:   attService.NewAggregatorService(db),
		Validator: validator.New(),
	}
}

// serviceError maps aggregator sentinels onto the JSON envelope.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, attService.ErrUnauthorized):
		return helper.JsonError(c, fiber.StatusForbidden, "You are not permitted to perform this action")
	case errors.Is(err, attService.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Referenced record not found")
	case errors.Is(err, attService.ErrInvalidStatus):
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid attendance status")
	case errors.Is(err, attService.ErrEmptyRollCall):
		return helper.JsonError(c, fiber.StatusBadRequest, "Roll-call entries must not be empty")
	case errors.Is(err, attService.ErrConflict):
		return helper.JsonError(c, fiber.StatusConflict, "Attendance update conflicted, please retry")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// ===============================
// POST /api/f/attendance/roll-call
// Faculty records one session for a roster. Per-student outcomes are
// independent: a bad status for one student never blocks the rest.
// ===============================
func (ctl *AttendanceController) RollCall(c *fiber.Ctx) error {
	role, err := helper.GetRoleFromLocals(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	facultyID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req attDTO.RecordAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, err := req.ParseDate()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date invalid format, expected YYYY-MM-DD")
	}

	entries := make([]attService.RollCallEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		// Unknown statuses pass through unparsed; the service rejects them
		// per student so the rest of the roster still lands.
		status, _ := attModel.ParseAttendanceStatus(e.Status)
		entries = append(entries, attService.RollCallEntry{
			StudentID: e.StudentID,
			Status:    status,
		})
	}

	outcomes, err := ctl.Service.RecordAttendance(
		c.UserContext(), role, facultyID, req.CourseID, date, strings.TrimSpace(req.Slot), entries)
	if err != nil {
		return serviceError(c, err)
	}

	out := make([]attDTO.RollCallOutcomeResponse, 0, len(outcomes))
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
		out = append(out, attDTO.ToRollCallOutcomeResponse(o))
	}

	return helper.JsonCreated(c, "Roll-call recorded", fiber.Map{
		"course_id": req.CourseID,
		"date":      req.Date,
		"slot":      req.Slot,
		"recorded":  len(outcomes) - failed,
		"failed":    failed,
		"outcomes":  out,
	})
}

// ===============================
// PATCH /api/a/attendance/entries/:id
// Admin override: mutates one entry's status, summary re-derived.
// ===============================
func (ctl *AttendanceController) Override(c *fiber.Ctx) error {
	role, err := helper.GetRoleFromLocals(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid entry id")
	}

	var req attDTO.OverrideEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	status, ok := attModel.ParseAttendanceStatus(req.Status)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid attendance status (PRESENT/ABSENT/LATE/EXCUSED/ON_DUTY)")
	}

	entry, sum, err := ctl.Service.OverrideEntry(c.UserContext(), role, entryID, status)
	if err != nil {
		return serviceError(c, err)
	}

	return helper.JsonUpdated(c, "Attendance entry overridden", fiber.Map{
		"entry":   attDTO.ToLogEntryResponse(entry),
		"summary": sum,
	})
}

// ===============================
// GET /api/u/attendance/summary?student_id=&course_id=
// Cached read; zero-valued summary when nothing is recorded yet.
// ===============================
func (ctl *AttendanceController) GetSummary(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(strings.TrimSpace(c.Query("student_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id is not a valid UUID")
	}
	courseID, err := uuid.Parse(strings.TrimSpace(c.Query("course_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "course_id is not a valid UUID")
	}

	sum, err := ctl.Service.GetSummary(c.UserContext(), studentID, courseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", sum)
}

// ===============================
// GET /api/u/attendance/summaries/:student_id
// ===============================
func (ctl *AttendanceController) ListSummaries(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id is not a valid UUID")
	}

	sums, err := ctl.Service.ListSummaries(c.UserContext(), studentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", sums)
}

// ===============================
// GET /api/u/attendance/entries?student_id=&course_id=
// Paginated journal read for dashboards.
// ===============================
func (ctl *AttendanceController) ListEntries(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&attModel.AttendanceLogEntryModel{})

	if sid := strings.TrimSpace(c.Query("student_id")); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id is not a valid UUID")
		}
		tx = tx.Where("attendance_log_entry_student_id = ?", id)
	}
	if cid := strings.TrimSpace(c.Query("course_id")); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "course_id is not a valid UUID")
		}
		tx = tx.Where("attendance_log_entry_course_id = ?", id)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		status, ok := attModel.ParseAttendanceStatus(st)
		if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid attendance status (PRESENT/ABSENT/LATE/EXCUSED/ON_DUTY)")
		}
		tx = tx.Where("attendance_log_entry_status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []attModel.AttendanceLogEntryModel
	if err := tx.Order("attendance_log_entry_date DESC, attendance_log_entry_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]attDTO.LogEntryResponse, 0, len(rows))
	for i := range rows {
		out = append(out, attDTO.ToLogEntryResponse(&rows[i]))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"entries":    out,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}
