package session

import (
	"testing"

	"github.com/dmitrijs2005/credittransfer/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestLanding_RolePriority(t *testing.T) {
	tests := []struct {
		name string
		id   models.Identity
		want Screen
	}{
		{"admin", models.Identity{Username: "root", IsStaff: true}, ScreenAdminDashboard},
		{"admin and faculty", models.Identity{Username: "faculty_admin", IsStaff: true, IsFaculty: true}, ScreenAdminDashboard},
		{"faculty claim", models.Identity{Username: "somsak", IsFaculty: true}, ScreenFacultyDashboard},
		{"faculty username", models.Identity{Username: "Faculty01"}, ScreenFacultyDashboard},
		{"student", models.Identity{Username: "6501234"}, ScreenStudentDashboard},
		{"empty identity", models.Identity{}, ScreenStudentDashboard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Landing(tt.id))
		})
	}
}

func TestRoles(t *testing.T) {
	assert.Equal(t, []Role{RoleAdmin, RoleFaculty}, Roles(models.Identity{IsStaff: true, IsFaculty: true}))
	assert.Equal(t, []Role{RoleStudent}, Roles(models.Identity{Username: "x"}))
}
