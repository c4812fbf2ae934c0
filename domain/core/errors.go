package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Cleaning pipeline errors
	ErrNoData              = errors.New("no data to analyze")
	ErrEmptyVector         = errors.New("vector is empty after cleaning")
	ErrMinimumSize         = errors.New("vector below minimum size")
	ErrUnequalVectorLength = errors.New("paired vectors have unequal length")

	// Analysis errors
	ErrEmptyGroup  = errors.New("group has no usable members")
	ErrNotComputed = errors.New("analysis has not been run")
)

// Error constructors with context
func NewMinimumSizeError(got, minSize int) error {
	return fmt.Errorf("%w: need more than %d values, got %d", ErrMinimumSize, minSize, got)
}

func NewUnequalLengthError(lenX, lenY int) error {
	return fmt.Errorf("%w: %d vs %d", ErrUnequalVectorLength, lenX, lenY)
}

// Error checking helpers
func IsCleaningError(err error) bool {
	return errors.Is(err, ErrNoData) ||
		errors.Is(err, ErrEmptyVector) ||
		errors.Is(err, ErrMinimumSize) ||
		errors.Is(err, ErrUnequalVectorLength)
}
