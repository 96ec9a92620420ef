// Package errors wraps github.com/pkg/errors and adds a lightweight error
// code so callers can test the kind of failure (e.g. QueryError.NotInitialized)
// without string-matching messages.
package errors

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// Code is an error code which can be checked against with Is.
type Code string

const ErrUncoded Code = "Uncoded"

func New(code Code, message string) error {
	return errors.WithStack(codedError{
		Code:    code,
		Message: message,
	})
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

func Cause(err error) error {
	return errors.Cause(err)
}

func Errorf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}

// Is reports whether err (or any error it wraps) carries the given Code.
func Is(err error, target Code) bool {
	match := codedError{Code: target}
	return errors.Is(err, match)
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

func WithMessage(err error, message string) error {
	return errors.WithMessage(err, message)
}

func WithMessagef(err error, format string, args ...interface{}) error {
	return errors.WithMessagef(err, format, args...)
}

func WithStack(err error) error {
	return errors.WithStack(err)
}

func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// CodeOf returns the Code of err if it (or a cause in its chain) is a
// codedError, and false otherwise.
func CodeOf(err error) (Code, bool) {
	cause := Cause(err)
	if ce, ok := cause.(codedError); ok {
		return ce.Code, true
	}
	return "", false
}

// codedError is the fundamental type this package uses to carry a Code.
type codedError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Wrapped string `json:"wrapped,omitempty"`
}

func (ce codedError) Error() string {
	if ce.Wrapped != "" {
		return ce.Wrapped
	}
	return ce.Message
}

func (ce codedError) Is(err error) bool {
	e, ok := err.(codedError)
	return ok && ce.Code == e.Code
}

// MarshalJSON returns err rendered as a codedError JSON object. If err is
// not already a codedError, the rendered object's code is empty.
func MarshalJSON(err error) string {
	cause := Cause(err)

	var out *codedError
	switch v := cause.(type) {
	case codedError:
		v.Wrapped = err.Error()
		out = &v
	default:
		out = &codedError{
			Message: cause.Error(),
			Wrapped: err.Error(),
		}
	}

	j, jerr := json.Marshal(out)
	if jerr != nil {
		return out.Error()
	}
	return string(j)
}

// UnmarshalJSON converts r into a codedError. If it cannot be unmarshaled,
// a plain error wrapping the raw bytes is returned instead.
func UnmarshalJSON(r io.Reader) error {
	b, _ := io.ReadAll(r)

	out := &codedError{}
	if err := json.Unmarshal(b, out); err != nil {
		return errors.New(string(b))
	}
	return out
}
