package dto

import (
	"time"

	"github.com/google/uuid"

	attModel "vtop_backend/internals/features/academics/attendance/model"
	attService "vtop_backend/internals/features/academics/attendance/service"
)

type RollCallEntryRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required"`
}

type RecordAttendanceRequest struct {
	CourseID uuid.UUID              `json:"course_id" validate:"required"`
	Date     string                 `json:"date" validate:"required"` // YYYY-MM-DD
	Slot     string                 `json:"slot" validate:"required,max=8"`
	Entries  []RollCallEntryRequest `json:"entries" validate:"required,min=1,dive"`
}

const dateLayout = "2006-01-02"

func (r *RecordAttendanceRequest) ParseDate() (time.Time, error) {
	return time.Parse(dateLayout, r.Date)
}

type OverrideEntryRequest struct {
	Status string `json:"status" validate:"required"`
}

type RollCallOutcomeResponse struct {
	StudentID uuid.UUID                `json:"student_id"`
	EntryID   *uuid.UUID               `json:"entry_id,omitempty"`
	Summary   *attService.SummaryValue `json:"summary,omitempty"`
	Error     *string                  `json:"error,omitempty"`
}

func ToRollCallOutcomeResponse(o attService.RollCallOutcome) RollCallOutcomeResponse {
	resp := RollCallOutcomeResponse{StudentID: o.StudentID}
	if o.Err != nil {
		msg := o.Err.Error()
		resp.Error = &msg
		return resp
	}
	id := o.EntryID
	resp.EntryID = &id
	sum := o.Summary
	resp.Summary = &sum
	return resp
}

type LogEntryResponse struct {
	EntryID   uuid.UUID                 `json:"entry_id"`
	StudentID uuid.UUID                 `json:"student_id"`
	CourseID  uuid.UUID                 `json:"course_id"`
	FacultyID uuid.UUID                 `json:"faculty_id"`
	Date      string                    `json:"date"`
	Slot      string                    `json:"slot"`
	Status    attModel.AttendanceStatus `json:"status"`
}

func ToLogEntryResponse(m *attModel.AttendanceLogEntryModel) LogEntryResponse {
	return LogEntryResponse{
		EntryID:   m.AttendanceLogEntryID,
		StudentID: m.AttendanceLogEntryStudentID,
		CourseID:  m.AttendanceLogEntryCourseID,
		FacultyID: m.AttendanceLogEntryFacultyID,
		Date:      m.AttendanceLogEntryDate.Format(dateLayout),
		Slot:      m.AttendanceLogEntrySlot,
		Status:    m.AttendanceLogEntryStatus,
	}
}
