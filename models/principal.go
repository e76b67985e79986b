package models

// Role is the closed set of caller roles. Authentication lives outside this
// process; requests arrive with the role already resolved.
type Role string

const (
	RoleUser     Role = "user"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

// IsValid returns true if the role is one of the recognized roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleProvider, RoleAdmin:
		return true
	}
	return false
}

// Principal is an authenticated caller identity. It is passed explicitly
// into every service call rather than read from ambient state.
type Principal struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
