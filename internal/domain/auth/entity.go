package auth

import "time"

// Session represents durable server-side session state for one token.
// It is bound to the username (not the email), so the identity a handler
// sees is always the account's username.
type Session struct {
	Token     string    `json:"-"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SignupRequest represents a signup submission
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login submission
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
