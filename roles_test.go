package jobhub_test

import (
	"testing"

	jobhub "github.com/goliatone/go-jobhub"
	"github.com/stretchr/testify/assert"
)

func TestIsValidRole(t *testing.T) {
	assert.True(t, jobhub.IsValidRole(jobhub.RoleUser))
	assert.True(t, jobhub.IsValidRole(jobhub.RoleAdmin))
	assert.False(t, jobhub.IsValidRole("superuser"))
	assert.False(t, jobhub.IsValidRole(""))
}

func TestGetAllRoles(t *testing.T) {
	assert.ElementsMatch(t, []jobhub.UserRole{jobhub.RoleUser, jobhub.RoleAdmin}, jobhub.GetAllRoles())
}

func TestRoleAllowed(t *testing.T) {
	tests := []struct {
		name    string
		role    jobhub.UserRole
		allowed []jobhub.UserRole
		want    bool
	}{
		{"empty allow-list admits anyone", "user", nil, true},
		{"empty allow-list admits unknown roles", "superuser", []jobhub.UserRole{}, true},
		{"role in list", jobhub.RoleAdmin, []jobhub.UserRole{jobhub.RoleAdmin}, true},
		{"role in longer list", jobhub.RoleUser, []jobhub.UserRole{jobhub.RoleAdmin, jobhub.RoleUser}, true},
		{"role outside list", jobhub.RoleUser, []jobhub.UserRole{jobhub.RoleAdmin}, false},
		{"empty role outside list", "", []jobhub.UserRole{jobhub.RoleAdmin}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, jobhub.RoleAllowed(tt.role, tt.allowed))
		})
	}
}
