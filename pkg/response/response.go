package response

import (
	"errors"
)

type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{code, errors.New(err)}
}

// WithMessage keeps the status code of base but reports msg to the client.
func WithMessage(base error, msg string) error {
	var respErr *Error
	if !errors.As(base, &respErr) {
		return errors.New(msg)
	}
	return &Error{Code: respErr.Code, Err: &messageError{msg: msg, base: respErr}}
}

type messageError struct {
	msg  string
	base *Error
}

func (e *messageError) Error() string {
	return e.msg
}

func (e *messageError) Unwrap() error {
	return e.base
}
