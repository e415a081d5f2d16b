package core

import (
	"errors"
	"fmt"

	apperrors "mathkit/internal/errors"
)

// Domain errors - centralized error definitions
var (
	// ErrNullArgument is returned when a required slice or map is nil
	ErrNullArgument = errors.New("argument is nil")

	// ErrInvalidArgument is returned when an argument is present but unusable
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned when a numeric argument is outside its valid domain
	ErrOutOfRange = errors.New("argument out of range")

	// ErrOverflow is returned when a result does not fit the target type
	ErrOverflow = errors.New("arithmetic overflow")
)

// Error constructors with context
func NewNullArgumentError(param string) error {
	return apperrors.WithCause(apperrors.CodeNullArgument,
		fmt.Sprintf("%s is nil", param), ErrNullArgument)
}

func NewInvalidArgumentError(param string, reason string) error {
	return apperrors.WithCause(apperrors.CodeInvalidArgument,
		fmt.Sprintf("%s: %s", param, reason), ErrInvalidArgument)
}

func NewOutOfRangeError(param string, value interface{}, reason string) error {
	return apperrors.WithCause(apperrors.CodeOutOfRange,
		fmt.Sprintf("%s=%v %s", param, value, reason), ErrOutOfRange)
}

func NewOverflowError(reason string) error {
	return apperrors.WithCause(apperrors.CodeOverflow, reason, ErrOverflow)
}

// Error checking helpers
func IsNullArgumentError(err error) bool {
	return errors.Is(err, ErrNullArgument)
}

func IsInvalidArgumentError(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsOutOfRangeError(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

func IsOverflowError(err error) bool {
	return errors.Is(err, ErrOverflow)
}
