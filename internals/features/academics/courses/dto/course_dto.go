package dto

import (
	"strings"

	"github.com/google/uuid"

	"vtop_backend/internals/features/academics/courses/model"
)

type CreateCourseRequest struct {
	CourseCode      string    `json:"course_code" validate:"required,max=16"`
	CourseTitle     string    `json:"course_title" validate:"required,max=160"`
	CourseFacultyID uuid.UUID `json:"course_faculty_id" validate:"required"`
	CourseCredits   int       `json:"course_credits" validate:"omitempty,min=1,max=12"`
	CourseSemester  string    `json:"course_semester" validate:"required,max=16"`
}

func (r *CreateCourseRequest) ToModel() *model.CourseModel {
	credits := r.CourseCredits
	if credits == 0 {
		credits = 3
	}
	return &model.CourseModel{
		CourseCode:      strings.ToUpper(strings.TrimSpace(r.CourseCode)),
		CourseTitle:     strings.TrimSpace(r.CourseTitle),
		CourseFacultyID: r.CourseFacultyID,
		CourseCredits:   credits,
		CourseSemester:  strings.TrimSpace(r.CourseSemester),
	}
}

type UpdateCourseRequest struct {
	CourseTitle    *string `json:"course_title" validate:"omitempty,max=160"`
	CourseCredits  *int    `json:"course_credits" validate:"omitempty,min=1,max=12"`
	CourseSemester *string `json:"course_semester" validate:"omitempty,max=16"`
}

type RegisterStudentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Semester  string    `json:"semester" validate:"required,max=16"`
}

type CourseResponse struct {
	CourseID        uuid.UUID `json:"course_id"`
	CourseCode      string    `json:"course_code"`
	CourseTitle     string    `json:"course_title"`
	CourseFacultyID uuid.UUID `json:"course_faculty_id"`
	CourseCredits   int       `json:"course_credits"`
	CourseSemester  string    `json:"course_semester"`
}

func ToCourseResponse(m *model.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID:        m.CourseID,
		CourseCode:      m.CourseCode,
		CourseTitle:     m.CourseTitle,
		CourseFacultyID: m.CourseFacultyID,
		CourseCredits:   m.CourseCredits,
		CourseSemester:  m.CourseSemester,
	}
}
