package domain

import "errors"

// Error kinds surfaced by services and repositories. Callers classify
// with errors.Is; call sites attach context via pkg/errors wrapping.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflict")
	ErrNotFound        = errors.New("not found")
	ErrInvalidState    = errors.New("invalid state")
)
