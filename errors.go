package bigfloat

import (
	"fmt"

	"github.com/pkg/errors"
)

// ArithmeticError reports a failure that is inherent to the mathematical
// operation being attempted regardless of how it was invoked: zero to the
// power of zero, the logarithm of a nonpositive number, an even root of a
// negative number, and similar domain violations.
type ArithmeticError struct {
	Op  string
	Msg string
	err error
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("bigfloat: %s: %s", e.Op, e.Msg)
}

func (e *ArithmeticError) Unwrap() error { return e.err }

func newArithmeticError(op, msg string) error {
	return wrap(&ArithmeticError{Op: op, Msg: msg, err: errors.New(msg)})
}

// OperationalError reports a failure that stems from how an operation was
// invoked rather than from the mathematics itself: an infinite-precision
// request to a routine that cannot return an exact transcendental result,
// an overflowing exponent, or an invalid precision argument.
type OperationalError struct {
	Op  string
	Msg string
	err error
}

func (e *OperationalError) Error() string {
	return fmt.Sprintf("bigfloat: %s: %s", e.Op, e.Msg)
}

func (e *OperationalError) Unwrap() error { return e.err }

func newOperationalError(op, msg string) error {
	return wrap(&OperationalError{Op: op, Msg: msg, err: errors.New(msg)})
}

// wrap attaches a stack trace to err at the point of detection, without
// altering its message or its Unwrap chain — both newArithmeticError and
// newOperationalError call it at construction, which is the only place an
// error of either kind crosses back out of the kernel to a caller for the
// first time. errors.As/errors.Is still see through it to the concrete
// *ArithmeticError/*OperationalError beneath.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	return errors.WithStack(err)
}
