package consultations

import "errors"

var (
	ErrNotFound             = errors.New("consultation not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrProfessionalNotFound = errors.New("professional not found")
)
