package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceSummaryModel is the derived cache for one (student, course)
// pair. It is never hand-edited: the aggregator service is its single
// writer and always re-derives it from the complete log-entry set.
type AttendanceSummaryModel struct {
	// PK
	AttendanceSummaryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_summary_id" json:"attendance_summary_id"`

	// Unique pair key
	AttendanceSummaryStudentID uuid.UUID `gorm:"type:uuid;not null;column:attendance_summary_student_id;uniqueIndex:uq_attendance_summary_pair" json:"attendance_summary_student_id"`
	AttendanceSummaryCourseID  uuid.UUID `gorm:"type:uuid;not null;column:attendance_summary_course_id;uniqueIndex:uq_attendance_summary_pair" json:"attendance_summary_course_id"`

	// Derived values
	AttendanceSummaryAttendedClasses int     `gorm:"not null;default:0;column:attendance_summary_attended_classes" json:"attendance_summary_attended_classes"`
	AttendanceSummaryTotalClasses    int     `gorm:"not null;default:0;column:attendance_summary_total_classes" json:"attendance_summary_total_classes"`
	AttendanceSummaryPercentage      float64 `gorm:"type:numeric(5,2);not null;default:0;column:attendance_summary_percentage" json:"attendance_summary_percentage"`

	// Timestamps
	AttendanceSummaryCreatedAt time.Time `gorm:"column:attendance_summary_created_at;autoCreateTime" json:"attendance_summary_created_at"`
	AttendanceSummaryUpdatedAt time.Time `gorm:"column:attendance_summary_updated_at;autoUpdateTime" json:"attendance_summary_updated_at"`
}

func (AttendanceSummaryModel) TableName() string {
	return "attendance_summaries"
}
