package canvas

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCanvas     = errors.New("invalid canvas")
	ErrDimensionMismatch = errors.New("canvas dimension mismatch")
)

// ValidationError describes a canvas that breaks one of its invariants.
type ValidationError struct {
	Kind     Violation
	Width    int32
	Height   int32
	Contents int
}

func newValidationError(kind Violation, c Canvas) *ValidationError {
	return &ValidationError{Kind: kind, Width: c.Width, Height: c.Height, Contents: len(c.Contents)}
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case NegativeWidth:
		return fmt.Sprintf("canvas width must be at least 1, got %d", e.Width)
	case NegativeHeight:
		return fmt.Sprintf("canvas height must be at least 1, got %d", e.Height)
	case OverflowingSize:
		return fmt.Sprintf("canvas size %d x %d overflows a 32-bit pixel count", e.Width, e.Height)
	case MismatchedSize:
		return fmt.Sprintf("canvas has %d pixels but %d x %d needs %d",
			e.Contents, e.Width, e.Height, int64(e.Width)*int64(e.Height))
	default:
		return fmt.Sprintf("canvas invalid: %s", e.Kind)
	}
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidCanvas }

// DimensionMismatchError is returned when an edit does not match the size of
// the canvas it is merged into.
type DimensionMismatchError struct {
	Field  string
	Target int
	Source int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("canvas %s mismatch: room has %d, edit has %d", e.Field, e.Target, e.Source)
}

func (e *DimensionMismatchError) Is(target error) bool { return target == ErrDimensionMismatch }
