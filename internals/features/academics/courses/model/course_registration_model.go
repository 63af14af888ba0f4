package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseRegistrationModel links a student to a course for one semester.
// Attendance summaries hang off this pair; deregistering deletes the
// pair's summary row in the same transaction (see Deregister).
type CourseRegistrationModel struct {
	// PK
	CourseRegistrationID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_registration_id" json:"course_registration_id"`

	// FKs
	CourseRegistrationStudentID uuid.UUID `gorm:"type:uuid;not null;column:course_registration_student_id;uniqueIndex:uq_course_registration_pair" json:"course_registration_student_id"`
	CourseRegistrationCourseID  uuid.UUID `gorm:"type:uuid;not null;column:course_registration_course_id;uniqueIndex:uq_course_registration_pair;index:idx_course_registration_course" json:"course_registration_course_id"`

	CourseRegistrationSemester string `gorm:"type:varchar(16);not null;column:course_registration_semester" json:"course_registration_semester"`

	// Timestamps
	CourseRegistrationCreatedAt time.Time      `gorm:"column:course_registration_created_at;autoCreateTime" json:"course_registration_created_at"`
	CourseRegistrationDeletedAt gorm.DeletedAt `gorm:"column:course_registration_deleted_at;index" json:"course_registration_deleted_at,omitempty"`
}

func (CourseRegistrationModel) TableName() string {
	return "course_registrations"
}

// RosterStudentIDs returns the enrolled students for a course. Roll-call
// uses this as its precondition: only listed students may be marked.
func RosterStudentIDs(db *gorm.DB, courseID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.Model(&CourseRegistrationModel{}).
		Where("course_registration_course_id = ?", courseID).
		Pluck("course_registration_student_id", &ids).Error
	return ids, err
}
