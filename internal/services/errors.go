package services

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidReference = errors.New("invalid reference")
	ErrNotConfigured    = errors.New("matchmaker quiz not configured")
	ErrConflict         = errors.New("conflict")
	ErrForbidden        = errors.New("forbidden")
)

// ValidationError is a caller-fixable input problem. Message is shown verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(msg string) error {
	return &ValidationError{Message: msg}
}
