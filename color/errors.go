package color

import (
	"errors"
	"fmt"
)

// ErrInvalidShape is reported when a value matches neither the RGBA nor the
// HSLA field set. Test for it with errors.Is.
var ErrInvalidShape = errors.New("invalid color shape")

// ShapeError describes why a value could not be recognized as a color.
type ShapeError struct {
	// Value is the rejected input.
	Value any

	// Field names the missing or malformed field, if there is a single one.
	Field string

	// Reason is a short human-readable explanation.
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%v: %s (field %q)", ErrInvalidShape, e.Reason, e.Field)
	}
	return fmt.Sprintf("%v: %s", ErrInvalidShape, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidShape) hold for every ShapeError.
func (e *ShapeError) Unwrap() error {
	return ErrInvalidShape
}
