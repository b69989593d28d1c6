package model

// UserRole represents the role of a dashboard user.
type UserRole string

const (
	// RoleStaff can view resources but not mutate them.
	RoleStaff UserRole = "staff"
	// RoleAdmin has full access to every resource and action.
	RoleAdmin UserRole = "admin"
)

// AdminUser is the admin account shape returned by the platform API on
// login.
type AdminUser struct {
	ID    string   `json:"_id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// IsAdmin returns true if the user has admin role.
func (u *AdminUser) IsAdmin() bool {
	return u.Role == RoleAdmin
}
