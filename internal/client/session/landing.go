package session

import (
	"slices"
	"strings"

	"github.com/dmitrijs2005/credittransfer/internal/client/models"
)

// Screen identifies a navigable view of the client.
type Screen string

const (
	ScreenEntry            Screen = "/"
	ScreenAdminDashboard   Screen = "/admin/dashboard"
	ScreenFacultyDashboard Screen = "/faculty/dashboard"
	ScreenStudentDashboard Screen = "/student/dashboard"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleFaculty Role = "faculty"
	RoleStudent Role = "student"
)

// IsFaculty reports the faculty-membership signal: an explicit claim, or a
// username that names the account as faculty.
func IsFaculty(id models.Identity) bool {
	return id.IsFaculty || strings.Contains(strings.ToLower(id.Username), "faculty")
}

// Landing is the role policy. Admin wins over faculty, faculty over student.
func Landing(id models.Identity) Screen {
	switch {
	case id.IsStaff:
		return ScreenAdminDashboard
	case IsFaculty(id):
		return ScreenFacultyDashboard
	default:
		return ScreenStudentDashboard
	}
}

// Roles lists every role the identity holds.
func Roles(id models.Identity) []Role {
	var roles []Role
	if id.IsStaff {
		roles = append(roles, RoleAdmin)
	}
	if IsFaculty(id) {
		roles = append(roles, RoleFaculty)
	}
	if len(roles) == 0 {
		roles = append(roles, RoleStudent)
	}
	return roles
}

func hasAnyRole(id models.Identity, required []Role) bool {
	if len(required) == 0 {
		return true
	}
	held := Roles(id)
	for _, r := range required {
		if slices.Contains(held, r) {
			return true
		}
	}
	return false
}
