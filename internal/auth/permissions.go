package auth

import "errors"

// RBAC roles mirrored in the user_roles table.
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleUser      = "user"
)

// Permissions per role.
var Permissions = map[string][]string{
	RoleAdmin: {
		"users:read",
		"users:write",
		"users:delete",
		"content:read",
		"content:write",
		"content:delete",
		"system:admin",
	},
	RoleModerator: {
		"users:read",
		"content:read",
		"content:write",
		"content:delete",
	},
	RoleUser: {
		"users:read:self",
		"users:write:self",
		"content:read",
		"content:write:self",
		"content:delete:self",
	},
}

// HasPermission reports whether the role carries the permission.
func HasPermission(role, permission string) bool {
	permissions, exists := Permissions[role]
	if !exists {
		return false
	}
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// ValidateRole rejects unknown role names.
func ValidateRole(role string) error {
	switch role {
	case RoleAdmin, RoleModerator, RoleUser:
		return nil
	}
	return errors.New("unknown role: " + role)
}
