package constants

import "fmt"

const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
	RoleParent  = "parent"
	RoleAdmin   = "admin"
)

// Role error message templates
const (
	ErrOnlyFacultyCanAccess = "Only faculty or admin may access %s."
	ErrOnlyAdminsCanAccess  = "Only admin may access %s."
	ErrOnlyStaffCanAccess   = "Only non-student roles may access %s."
)

func RoleErrorFaculty(feature string) string {
	return fmt.Sprintf(ErrOnlyFacultyCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleFaculty,
		RoleParent,
		RoleAdmin,
	}

	StaffRoles = []string{
		RoleFaculty,
		RoleAdmin,
	}

	FacultyAndAbove = []string{
		RoleFaculty,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
