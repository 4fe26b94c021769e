// Package errors provides the error type used throughout the driver.
// It adds printf-style construction, wrapping and a captured stack
// trace on the innermost error, while staying compatible with the
// standard errors.Is/As/Unwrap machinery.
package errors

import (
	"fmt"
	"runtime/debug"
)

// Error wraps an underlying error with a message and a stack trace.
type Error struct {
	msg     string
	wrapped error
	stack   []byte
}

// New makes a new error with a formatted message and a stack trace.
func New(msg string, args ...interface{}) *Error {
	return &Error{
		msg:   fmt.Sprintf(msg, args...),
		stack: debug.Stack(),
	}
}

// Wrap wraps an error with a new formatted message. The stack trace is
// only captured when the wrapped error doesn't already carry one.
func Wrap(err error, msg string, args ...interface{}) *Error {
	e := &Error{
		msg:     fmt.Sprintf(msg, args...),
		wrapped: err,
	}
	if _, ok := err.(*Error); !ok {
		e.stack = debug.Stack()
	}
	return e
}

// Error gets the error output, including the chain of wrapped errors
// and the stack trace when one was captured.
func (e *Error) Error() string {
	msg := e.msg
	if e.wrapped != nil {
		msg += ": " + e.wrapped.Error()
	}
	if len(e.stack) > 0 {
		msg += fmt.Sprintf("\n\nStack Trace:\n\n%s", e.stack)
	}
	return msg
}

// Unwrap returns the wrapped error, so errors.Is and errors.As can
// walk the chain.
func (e *Error) Unwrap() error {
	return e.wrapped
}

// InnerMost returns the innermost error wrapped by this error.
func (e *Error) InnerMost() error {
	if e.wrapped == nil {
		return e
	}
	if inner, ok := e.wrapped.(*Error); ok {
		return inner.InnerMost()
	}
	return e.wrapped
}
