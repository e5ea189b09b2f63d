package jobhub

// IsValid checks if the role is one of the predefined valid roles.
// Note that sign-up deliberately does not call this: the source accepts
// whatever role string the caller supplies, and guards only ever compare
// against explicit allow-lists.
func IsValidRole(r UserRole) bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// GetAllRoles returns all predefined roles
func GetAllRoles() []UserRole {
	return []UserRole{
		RoleUser,
		RoleAdmin,
	}
}

// RoleAllowed reports whether role is in the allow-list. An empty
// allow-list admits any authenticated role.
func RoleAllowed(role UserRole, allowed []UserRole) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == role {
			return true
		}
	}
	return false
}
