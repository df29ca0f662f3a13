package models

// User roles. Self-registration may only pick general or advanced;
// admin is assignable solely through the admin role-update endpoint.
const (
	RoleAdmin    = "admin"
	RoleGeneral  = "general"
	RoleAdvanced = "advanced"
)

// IsValidRole reports whether role is one of the known roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleGeneral, RoleAdvanced:
		return true
	}
	return false
}

// IsSelfAssignableRole reports whether role may be chosen at registration.
func IsSelfAssignableRole(role string) bool {
	switch role {
	case RoleGeneral, RoleAdvanced:
		return true
	}
	return false
}
