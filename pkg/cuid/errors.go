package cuid

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions callers branch on.
var (
	// ErrOutOfRange is matched by every *RangeError.
	ErrOutOfRange = errors.New("value out of range")

	// ErrEntropy wraps failures of the random source.
	ErrEntropy = errors.New("entropy source unavailable")
)

// RangeError is returned when a configured size falls outside its bounds.
// A zero Max means the value has no upper bound.
type RangeError struct {
	Name  string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	if e.Max == 0 {
		return fmt.Sprintf("%s must be at least %d, got %d", e.Name, e.Min, e.Value)
	}
	return fmt.Sprintf("%s must be between %d and %d, got %d", e.Name, e.Min, e.Max, e.Value)
}

// Is reports whether target is ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

func checkLength(length int) error {
	if length < MinLength || length > BigLength {
		return &RangeError{Name: "length", Value: length, Min: MinLength, Max: BigLength}
	}
	return nil
}
