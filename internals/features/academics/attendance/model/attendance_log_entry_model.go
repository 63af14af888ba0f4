package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceLate    AttendanceStatus = "LATE"
	AttendanceExcused AttendanceStatus = "EXCUSED"
	AttendanceOnDuty  AttendanceStatus = "ON_DUTY"
)

// Valid reports whether the status is one of the supported values.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused, AttendanceOnDuty:
		return true
	default:
		return false
	}
}

// CountsAsAttended: PRESENT, LATE and ON_DUTY all count toward the
// attended tally; ABSENT and EXCUSED do not.
func (s AttendanceStatus) CountsAsAttended() bool {
	switch s {
	case AttendancePresent, AttendanceLate, AttendanceOnDuty:
		return true
	default:
		return false
	}
}

// ParseAttendanceStatus normalizes raw input to a status value.
func ParseAttendanceStatus(raw string) (AttendanceStatus, bool) {
	s := AttendanceStatus(strings.ToUpper(strings.TrimSpace(raw)))
	return s, s.Valid()
}

// AttendanceLogEntryModel is one immutable roll-call fact. The table has
// deliberately NO unique constraint on (student, course, date, slot):
// repeated roll-calls append further journal rows and the summary is
// recomputed from the full set, so duplicates are harmless.
type AttendanceLogEntryModel struct {
	// PK
	AttendanceLogEntryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_log_entry_id" json:"attendance_log_entry_id"`

	// FKs
	AttendanceLogEntryStudentID uuid.UUID `gorm:"type:uuid;not null;column:attendance_log_entry_student_id;index:idx_attendance_log_pair" json:"attendance_log_entry_student_id"`
	AttendanceLogEntryCourseID  uuid.UUID `gorm:"type:uuid;not null;column:attendance_log_entry_course_id;index:idx_attendance_log_pair" json:"attendance_log_entry_course_id"`
	AttendanceLogEntryFacultyID uuid.UUID `gorm:"type:uuid;not null;column:attendance_log_entry_faculty_id" json:"attendance_log_entry_faculty_id"`

	// Occurrence
	AttendanceLogEntryDate time.Time `gorm:"type:date;not null;column:attendance_log_entry_date" json:"attendance_log_entry_date"`
	AttendanceLogEntrySlot string    `gorm:"type:varchar(8);not null;column:attendance_log_entry_slot" json:"attendance_log_entry_slot"`

	// Status (DB constraint via CHECK); only field an admin override may change
	AttendanceLogEntryStatus AttendanceStatus `gorm:"type:varchar(16);not null;column:attendance_log_entry_status" json:"attendance_log_entry_status"`

	// Timestamps
	AttendanceLogEntryCreatedAt time.Time `gorm:"column:attendance_log_entry_created_at;autoCreateTime" json:"attendance_log_entry_created_at"`
	AttendanceLogEntryUpdatedAt time.Time `gorm:"column:attendance_log_entry_updated_at;autoUpdateTime" json:"attendance_log_entry_updated_at"`
}

func (AttendanceLogEntryModel) TableName() string {
	return "attendance_log_entries"
}
