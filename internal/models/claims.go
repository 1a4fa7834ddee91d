package models

// Role represents caller roles in the surrounding dashboard.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleViewer  Role = "viewer"
	RoleService Role = "service"
)

// Claims represents the JWT claims this service validates. Tokens are issued
// by the dashboard's auth service; this core only verifies them.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Exp      int64  `json:"exp"`
}

// IsValidRole checks if a role is valid.
func IsValidRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleViewer, RoleService:
		return true
	default:
		return false
	}
}
