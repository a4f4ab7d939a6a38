package models

// Role is the privilege tier stored on a user profile.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// roleLevels defines the role hierarchy (higher number = more privileges).
var roleLevels = map[Role]int{
	RoleUser:       1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// ValidRoles returns all assignable roles.
func ValidRoles() []Role {
	return []Role{RoleUser, RoleAdmin, RoleSuperAdmin}
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast reports whether r grants at least the privileges of tier.
// Unknown roles never satisfy any tier.
func (r Role) AtLeast(tier Role) bool {
	rl, ok := roleLevels[r]
	if !ok {
		return false
	}
	tl, ok := roleLevels[tier]
	if !ok {
		return false
	}
	return rl >= tl
}
