package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	attModel "vtop_backend/internals/features/academics/attendance/model"
)

// SummaryValue is the derived attendance state for one (student, course)
// pair. The zero value doubles as the "no entries yet" answer.
type SummaryValue struct {
	StudentID       uuid.UUID `json:"student_id"`
	CourseID        uuid.UUID `json:"course_id"`
	AttendedClasses int       `json:"attended_classes"`
	TotalClasses    int       `json:"total_classes"`
	Percentage      float64   `json:"percentage"`
}

// Summarize derives a summary from a full set of log statuses. This is the
// single derivation rule: total = all entries, attended = PRESENT/LATE/
// ON_DUTY, percentage = 100*attended/total (0 when empty).
func Summarize(statuses []attModel.AttendanceStatus) (attended, total int, percentage float64) {
	total = len(statuses)
	for _, s := range statuses {
		if s.CountsAsAttended() {
			attended++
		}
	}
	if total > 0 {
		percentage = 100 * float64(attended) / float64(total)
	}
	return attended, total, percentage
}

// DropSummaryTx deletes the cached summary for one pair. Deregistration
// runs it inside the transaction that removes the registration row; the
// journal entries stay, but the cache does not outlive the registration.
func DropSummaryTx(tx *gorm.DB, studentID, courseID uuid.UUID) *gorm.DB {
	return tx.Where(
		"attendance_summary_student_id = ? AND attendance_summary_course_id = ?",
		studentID, courseID,
	).Delete(&attModel.AttendanceSummaryModel{})
}

func summaryFromModel(m *attModel.AttendanceSummaryModel) SummaryValue {
	return SummaryValue{
		StudentID:       m.AttendanceSummaryStudentID,
		CourseID:        m.AttendanceSummaryCourseID,
		AttendedClasses: m.AttendanceSummaryAttendedClasses,
		TotalClasses:    m.AttendanceSummaryTotalClasses,
		Percentage:      m.AttendanceSummaryPercentage,
	}
}
