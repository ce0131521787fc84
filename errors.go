package lisp

import (
	"errors"
	"fmt"

	"github.com/xiam/lisp/parser"
)

var (
	ErrUnboundIdentifier = errors.New("unbound identifier")
	ErrArity             = errors.New("wrong number of arguments")
	ErrType              = errors.New("wrong type of argument")
	ErrRange             = errors.New("index out of range")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrOverflow          = errors.New("integer overflow")
	ErrMalformed         = errors.New("malformed special form")
	ErrRecursionDepth    = errors.New("maximum recursion depth exceeded")
)

// LookupError is returned when an identifier is not bound in any scope of the
// environment chain.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%v: %s", ErrUnboundIdentifier, e.Name)
}

func (e *LookupError) Unwrap() error {
	return ErrUnboundIdentifier
}

// ApplicationError wraps a failure raised by a callable.
type ApplicationError struct {
	Callee string
	Err    error
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Callee, e.Err)
}

func (e *ApplicationError) Unwrap() error {
	return e.Err
}

// FormError is returned for a special form that does not have the expected
// shape.
type FormError struct {
	Form  string
	Usage string
}

func (e *FormError) Error() string {
	return fmt.Sprintf("%s: %v, expected %s", e.Form, ErrMalformed, e.Usage)
}

func (e *FormError) Unwrap() error {
	return ErrMalformed
}

func arityError(expected string, got int) error {
	return fmt.Errorf("%w: expected %s, got %d", ErrArity, expected, got)
}

func typeError(expected ValueType, got *Value) error {
	return fmt.Errorf("%w: expected %v, got %v", ErrType, expected, got.Type)
}

// ErrorKind names the family an error belongs to.
func ErrorKind(err error) string {
	var (
		perr *parser.Error
		lerr *LookupError
		ferr *FormError
		aerr *ApplicationError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &perr):
		return "ParseError"
	case errors.As(err, &lerr):
		return "LookupError"
	case errors.Is(err, ErrRange):
		return "RangeError"
	case errors.As(err, &ferr):
		return "FormError"
	case errors.As(err, &aerr):
		return "ApplicationError"
	}
	return "RuntimeError"
}
