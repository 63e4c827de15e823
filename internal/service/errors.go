package service

import "errors"

// Sentinel errors the handlers map onto the HTTP status taxonomy.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrVideoNotFound      = errors.New("video not found")
)
