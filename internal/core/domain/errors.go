package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already in use")
	ErrEmailTaken         = errors.New("email already registered")
	ErrAreaNotFound       = errors.New("area not found")
	ErrItemNotFound       = errors.New("item not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrSelfDeletion       = errors.New("cannot delete own account")
	ErrInvalidResetCode   = errors.New("invalid reset code")
	ErrValidation         = errors.New("validation failed")
)
