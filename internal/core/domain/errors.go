package domain

import "errors"

var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNoteNotFound       = errors.New("note not found")
	ErrInvalidNoteID      = errors.New("invalid note id")
	ErrForbidden          = errors.New("note does not belong to user")
	ErrInternal           = errors.New("internal server error")
)
