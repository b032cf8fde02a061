package interfaces

import "errors"

// Errors repositories must return so use cases can react without knowing
// the backing store.
var (
	// ErrUniqueViolation is returned when an insert collides with an
	// existing row for the same unique key.
	ErrUniqueViolation = errors.New("unique constraint violation")
	// ErrConstraintViolation is returned when a field value is outside the
	// store's domain constraint (e.g. an unknown attribution type).
	ErrConstraintViolation = errors.New("domain constraint violation")
)
