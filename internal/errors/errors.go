// Package errors wraps github.com/go-errors/errors so that every error
// carries a stack trace from its point of origin.
package errors

import (
	"runtime"

	errorsGo "github.com/go-errors/errors"
)

type Error = errorsGo.Error

func New(obj any) *Error {
	// return nil for nil unlike github.com/go-errors/errors.New()
	if obj == nil {
		return nil
	}
	// don't overwrite origin of failure
	if errGo, okErrGo := obj.(*errorsGo.Error); okErrGo {
		return errGo
	}
	return errorsGo.Wrap(obj, 1)
}

func Errorf(format string, a ...interface{}) *Error { return errorsGo.Errorf(format, a...) }

func WrapPrefix(e interface{}, prefix string, skip int) *Error {
	return errorsGo.WrapPrefix(e, prefix, skip)
}

func As(err error, target any) bool { return errorsGo.As(err, target) }

func Is(err, target error) bool { return errorsGo.Is(err, target) }

func Unwrap(err error) error { return errorsGo.Unwrap(err) }

func Join(errs ...error) error {
	// not implemented by github.com/go-errors/errors
	if err := errorsGo.Join(errs...); err != nil {
		if errGo, okErrGo := err.(*errorsGo.Error); okErrGo {
			return errGo
		}
		return errorsGo.Wrap(err, 1)
	} else {
		return nil
	}
}

// NilReceiver returns an error with the function name if any of the arguments are nil
func NilReceiver(args ...any) error {
	return errMsgNilTester(`nil receiver or struct field`, 2, args...)
}

// NilParam returns an error with the function name if any of the arguments are nil
func NilParam(args ...any) error {
	return errMsgNilTester(`nil parameter`, 2, args...)
}

func errMsgNilTester(msg string, skip int, args ...any) error {
	for i := range args {
		if args[i] == nil {
			goto anyNil
		}
	}
	return nil
anyNil:
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return errorsGo.Wrap(msg, skip)
	}
	return errorsGo.Wrap(msg+`: `+runtime.FuncForPC(pc).Name()+`()`, skip)
}
