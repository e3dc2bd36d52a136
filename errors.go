package pbxgen

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for construction failures.
var (
	// ErrTypeMismatch is returned when a constructor receives an object
	// that does not satisfy the required record kind.
	ErrTypeMismatch = errors.New("pbxgen: type mismatch")

	// ErrInvalidArgument is returned when a required value fails a basic
	// domain check.
	ErrInvalidArgument = errors.New("pbxgen: invalid argument")
)

// TypeMismatchError reports a constructor argument of the wrong record kind.
type TypeMismatchError struct {
	Param string // Parameter name
	Want  string // Required record kind
}

// Error returns the error string.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("pbxgen: parameter %q must be of type %s", e.Param, e.Want)
}

// Is reports whether the target error matches TypeMismatchError.
// This allows errors.Is(err, pbxgen.ErrTypeMismatch) to return true.
func (e *TypeMismatchError) Is(err error) bool {
	return err == ErrTypeMismatch
}

// NewTypeMismatchError returns a new TypeMismatchError for the given
// parameter and required record kind.
func NewTypeMismatchError(param, want string) *TypeMismatchError {
	return &TypeMismatchError{Param: param, Want: want}
}

// IsTypeMismatch returns true if the error is a TypeMismatchError.
func IsTypeMismatch(err error) bool {
	if err == nil {
		return false
	}
	var e *TypeMismatchError
	return errors.As(err, &e) || errors.Is(err, ErrTypeMismatch)
}

// InvalidArgumentError reports a value that fails a basic domain check.
type InvalidArgumentError struct {
	Param  string // Parameter name
	Value  any    // The rejected value
	Reason string // Why the value was rejected
}

// Error returns the error string.
func (e *InvalidArgumentError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("pbxgen: parameter %q has invalid value %v: %s", e.Param, e.Value, e.Reason)
	}
	return fmt.Sprintf("pbxgen: parameter %q has invalid value %v", e.Param, e.Value)
}

// Is reports whether the target error matches InvalidArgumentError.
// This allows errors.Is(err, pbxgen.ErrInvalidArgument) to return true.
func (e *InvalidArgumentError) Is(err error) bool {
	return err == ErrInvalidArgument
}

// NewInvalidArgumentError returns a new InvalidArgumentError for the given
// parameter, value, and reason.
func NewInvalidArgumentError(param string, value any, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Param: param, Value: value, Reason: reason}
}

// IsInvalidArgument returns true if the error is an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidArgumentError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidArgument)
}
