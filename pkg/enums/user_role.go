package enums

import "fmt"

// UserRole maps to the user_role enum in Postgres. Admin gates catalog writes.
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleWorker UserRole = "worker"
)

var validUserRoles = []UserRole{
	UserRoleAdmin,
	UserRoleWorker,
}

// IsValid checks whether the given role matches the canonical enum.
func (u UserRole) IsValid() bool {
	for _, candidate := range validUserRoles {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseUserRole converts raw strings into UserRole.
func ParseUserRole(value string) (UserRole, error) {
	for _, candidate := range validUserRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user role %q", value)
}
