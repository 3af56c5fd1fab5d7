package common

import (
	"errors"
	"fmt"
)

// Kinds of failures surfaced by the client. Every *Error carries exactly one
// of these as its Kind so callers can branch with errors.Is.
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvalidAmount      = fmt.Errorf("invalid amount: %w", ErrInvalidArgument)
	ErrUnsupportedAsset   = errors.New("unsupported asset")
	ErrUnknownAsset       = errors.New("unknown asset")
	ErrUnknownContract    = errors.New("unknown contract")
	ErrUnsupportedNetwork = errors.New("unsupported network")
	ErrTransactionFailed  = errors.New("transaction failed")
)

// ErrorPrefix returns the greppable prefix used for every error raised by
// operation op, e.g. "Onyx [supply] | ".
func ErrorPrefix(op string) string {
	return fmt.Sprintf("Onyx [%s] | ", op)
}

// Error is the error type returned by every public client operation.
type Error struct {
	Op   string
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := ErrorPrefix(e.Op) + e.Msg
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	res := []error{}
	if e.Kind != nil {
		res = append(res, e.Kind)
	}
	if e.Err != nil {
		res = append(res, e.Err)
	}
	return res
}

func NewError(op string, kind error, format string, args ...interface{}) *Error {
	return &Error{
		Op:   op,
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
	}
}

func WrapError(op string, kind error, err error, format string, args ...interface{}) *Error {
	return &Error{
		Op:   op,
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
		Err:  err,
	}
}

// AsError reports whether err is (or wraps) an *Error and returns it.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
