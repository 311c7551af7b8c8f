package domain

const (
	RoleMember = "member"
	RoleStaff  = "staff"
)

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	return role == RoleMember || role == RoleStaff
}

// User models an authenticated actor in the system.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
