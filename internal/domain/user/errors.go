package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidUsername    = errors.New("username is required and must be at most 30 characters")
	ErrInvalidEmail       = errors.New("email must be a valid email address")
	ErrInvalidPassword    = errors.New("password must be between 6 and 20 characters")
)
