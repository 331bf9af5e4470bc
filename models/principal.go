package models

// Principal is the authenticated identity resolved once per request by the
// auth middleware and passed down to handler and service logic.
type Principal struct {
	UserID string
	Email  string
	Role   string
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
