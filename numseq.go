package numseq

import (
	"errors"
	"fmt"
)

// --- Error kinds -----------------------------------------------------------

// Errors reported by the packages of this module. Callers should test for
// them with errors.Is, as they will usually be wrapped with more context.
var (
	// ErrInvalidArgument flags a violated precondition, e.g. a negative length.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDivisionByZero flags the construction of or division by a zero denominator.
	ErrDivisionByZero = errors.New("division by zero")
)

// InvalidArgument creates an error of kind ErrInvalidArgument.
func InvalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// DivisionByZero creates an error of kind ErrDivisionByZero.
func DivisionByZero(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDivisionByZero, fmt.Sprintf(format, args...))
}

// CheckLength returns an error of kind ErrInvalidArgument if a requested
// sequence length is negative.
func CheckLength(length int) error {
	if length < 0 {
		return InvalidArgument("sequence length must not be negative, is %d", length)
	}
	return nil
}
