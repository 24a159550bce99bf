package professionals

import "errors"

var (
	ErrNotFound         = errors.New("professional not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrHasConsultations = errors.New("professional has consultations")
)
