package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fitstack/internal/model"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name       string
		role       model.Role
		permission string
		expected   bool
	}{
		{"admin can get users", model.RoleAdmin, PermissionGetUsers, true},
		{"admin can manage users", model.RoleAdmin, PermissionManageUsers, true},
		{"admin can manage applications", model.RoleAdmin, PermissionManageApplications, true},
		{"user cannot get users", model.RoleUser, PermissionGetUsers, false},
		{"user cannot manage users", model.RoleUser, PermissionManageUsers, false},
		{"user cannot manage applications", model.RoleUser, PermissionManageApplications, false},
		{"unknown role has nothing", model.Role("GUEST"), PermissionGetUsers, false},
		{"admin does not hold unknown permissions", model.RoleAdmin, "dropTables", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasPermission(tt.role, tt.permission))
		})
	}
}
