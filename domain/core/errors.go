package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound       = errors.New("resource not found")
	ErrResultNotFound = fmt.Errorf("%w: generation result", ErrNotFound)

	// Validation errors
	ErrInvalidParameter   = errors.New("invalid distribution parameter")
	ErrInvalidBounds      = errors.New("invalid integration bounds")
	ErrInvalidPrior       = errors.New("prior probability outside [0,1]")
	ErrInsufficientSample = errors.New("insufficient sample size")

	// Dispatch errors
	ErrUnsupportedDistribution = errors.New("unsupported distribution family")
)

// NewParameterError reports a rejected parameter with field context.
func NewParameterError(field string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidParameter, field, reason)
}

// NewInsufficientSampleError reports a sample too small for a requested statistic.
func NewInsufficientSampleError(got, need int) error {
	return fmt.Errorf("%w: got %d, need at least %d", ErrInsufficientSample, got, need)
}

// NewUnsupportedError reports a calculator path with no rule for a family.
func NewUnsupportedError(kind string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedDistribution, kind)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsParameterError(err error) bool {
	return errors.Is(err, ErrInvalidParameter) ||
		errors.Is(err, ErrInvalidBounds) ||
		errors.Is(err, ErrInvalidPrior)
}

func IsInsufficientSampleError(err error) bool {
	return errors.Is(err, ErrInsufficientSample)
}

func IsUnsupportedError(err error) bool {
	return errors.Is(err, ErrUnsupportedDistribution)
}
