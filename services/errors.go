package services

import "errors"

// Common errors
var (
	ErrNoteNotFound    = errors.New("note not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInternal        = errors.New("internal server error")
	ErrMissingFilePart = errors.New("missing file part")
)
