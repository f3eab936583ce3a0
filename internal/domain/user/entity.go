package user

import "time"

// Role represents user roles in the system
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// MaxUsernameLen is the longest username accepted at signup.
const MaxUsernameLen = 30

// User represents a registered account
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose the hash in JSON
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the role grants access to the admin panel
// and the promote/demote operations.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
