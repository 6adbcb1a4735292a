package auth

import "fitstack/internal/model"

// Permission names the actions endpoints can require.
const (
	PermissionGetUsers           = "getUsers"
	PermissionManageUsers        = "manageUsers"
	PermissionManageApplications = "manageApplications"
)

// rolePermissions maps each role to its permitted actions. Built once at init,
// read-only afterwards. Regular users hold no standing permissions; they act
// only on their own resources.
var rolePermissions = map[model.Role][]string{
	model.RoleUser: {},
	model.RoleAdmin: {
		PermissionGetUsers,
		PermissionManageUsers,
		PermissionManageApplications,
	},
}

// HasPermission reports whether the role's permission set contains the action.
func HasPermission(role model.Role, permission string) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
