package domain

import (
	"errors"
	"fmt"
)

// Result is the outcome of one remote call: either a value or a failure,
// never both.
type Result[T any] struct {
	value T
	err   error
}

func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure wraps err as a failed result. A nil err is recorded as an
// unknown failure so a failed result always carries a reason.
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("unknown failure")
	}
	return Result[T]{err: err}
}

func (r Result[T]) OK() bool {
	return r.err == nil
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns the value and the failure, in Go's usual order.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// TransportFailure covers network errors, unreadable bodies and non-2xx
// responses without an error field.
type TransportFailure struct {
	Operation string
	Err       error
}

func (e *TransportFailure) Error() string {
	return e.Err.Error()
}

func (e *TransportFailure) Unwrap() error {
	return e.Err
}

// DomainFailure is an application error reported by the service in an
// otherwise well-formed response.
type DomainFailure struct {
	Operation string
	Message   string
}

func (e *DomainFailure) Error() string {
	return e.Message
}

// LocalGuardFailure is a client-side precondition that was not met; no
// request was issued.
type LocalGuardFailure struct {
	Operation string
	Notice    string
}

func (e *LocalGuardFailure) Error() string {
	return e.Notice
}

func NewTransportFailure(operation string, err error) *TransportFailure {
	return &TransportFailure{Operation: operation, Err: err}
}

func NewTransportFailuref(operation, format string, args ...any) *TransportFailure {
	return &TransportFailure{Operation: operation, Err: fmt.Errorf(format, args...)}
}

func NewDomainFailure(operation, message string) *DomainFailure {
	return &DomainFailure{Operation: operation, Message: message}
}

// FailureReason is the human-readable reason shown in panels and in the
// activity log.
func FailureReason(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// IsTransportFailure reports whether err is, or wraps, a TransportFailure.
func IsTransportFailure(err error) bool {
	var target *TransportFailure
	return errors.As(err, &target)
}

// IsDomainFailure reports whether err is, or wraps, a DomainFailure.
func IsDomainFailure(err error) bool {
	var target *DomainFailure
	return errors.As(err, &target)
}

// IsLocalGuardFailure reports whether err is, or wraps, a LocalGuardFailure.
func IsLocalGuardFailure(err error) bool {
	var target *LocalGuardFailure
	return errors.As(err, &target)
}
