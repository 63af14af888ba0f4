package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	// PK
	CourseID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_id" json:"course_id"`

	// Identity
	CourseCode  string `gorm:"type:varchar(16);not null;uniqueIndex;column:course_code" json:"course_code"`
	CourseTitle string `gorm:"type:varchar(160);not null;column:course_title" json:"course_title"`

	// Owning faculty
	CourseFacultyID uuid.UUID `gorm:"type:uuid;not null;column:course_faculty_id;index:idx_course_faculty" json:"course_faculty_id"`

	CourseCredits  int    `gorm:"not null;default:3;column:course_credits" json:"course_credits"`
	CourseSemester string `gorm:"type:varchar(16);not null;column:course_semester" json:"course_semester"`

	// Timestamps
	CourseCreatedAt time.Time      `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string {
	return "courses"
}
