package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrLastAdmin          = errors.New("cannot remove the last admin account")
	ErrSelfDelete         = errors.New("cannot remove your own account")
	ErrInvalidToken       = errors.New("invalid or expired token")

	errNameRequired     = errors.New("name is required")
	errEmailRequired    = errors.New("email is required")
	errUsernameRequired = errors.New("username is required")
	errPasswordTooShort = errors.New("password must be at least 6 characters")
	errInvalidRole      = errors.New("role must be admin or superadmin")
)
