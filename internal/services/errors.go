package services

import "errors"

// Sentinel errors the handlers translate into HTTP statuses. Anything not
// matched here surfaces as a 500.
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("token is invalid or expired")
	ErrUnknownTokenSubject = errors.New("invalid token user")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("already exists")
	ErrAlreadySubscribed   = errors.New("already subscribed")
	ErrUpload              = errors.New("upload failed")
)
