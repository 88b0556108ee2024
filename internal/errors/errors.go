// Package errors carries the semantic error types shared across recount and
// re-exports the standard helpers so callers need a single errors import.
//
// Each semantic type implements Is so two errors of the same type match
// without a sentinel:
//
//	if errors.Is(err, &errors.NotFoundError{}) { ... }
//
// Callers that need the structured fields use As:
//
//	var bad *errors.ValidationError
//	if errors.As(err, &bad) {
//	    fmt.Println(bad.Field, bad.Reason)
//	}
package errors

import (
	"errors"
	"fmt"
)

// Standard library re-exports.
var (
	As     = errors.As
	Is     = errors.Is
	Join   = errors.Join
	New    = errors.New
	Unwrap = errors.Unwrap
)

// NotFoundError reports a name that matched nothing, like an unknown
// approach or theme.
type NotFoundError struct {
	Kind string
	Name string
	Err  error
}

// NewNotFoundError builds a NotFoundError for the named resource.
func NewNotFoundError(kind, name string) *NotFoundError {
	return &NotFoundError{Kind: kind, Name: name}
}

// WithCause attaches the underlying error and returns the receiver.
func (e *NotFoundError) WithCause(err error) *NotFoundError {
	e.Err = err
	return e
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s '%s' not found", e.Kind, e.Name)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// Is matches any NotFoundError, whatever its kind and name.
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// AlreadyExistsError reports a resource that is already in place, like a
// config file that init refuses to overwrite.
type AlreadyExistsError struct {
	Kind string
	Name string
}

// NewAlreadyExistsError builds an AlreadyExistsError for the named resource.
func NewAlreadyExistsError(kind, name string) *AlreadyExistsError {
	return &AlreadyExistsError{Kind: kind, Name: name}
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s '%s' already exists", e.Kind, e.Name)
}

// Is matches any AlreadyExistsError.
func (e *AlreadyExistsError) Is(target error) bool {
	_, ok := target.(*AlreadyExistsError)
	return ok
}

// ValidationError reports a value that failed a configuration check.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

// NewValidationError builds a ValidationError with the given reason.
// Field and value context attach through WithField and WithValue.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// WithField names the config field the value came from.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue records the rejected value.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

func (e *ValidationError) Error() string {
	switch {
	case e.Field != "" && e.Value != nil:
		return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Reason, e.Value)
	case e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	default:
		return e.Reason
	}
}

// Is matches any ValidationError.
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// Wrapf prefixes err with a formatted message, or returns nil when err is.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
