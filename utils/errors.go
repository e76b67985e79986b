package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind is the stable classification of a domain error. Callers branch
// on the kind; the message is for humans only.
type ErrorKind string

const (
	KindValidation        ErrorKind = "validation_error"
	KindNotFound          ErrorKind = "not_found"
	KindForbidden         ErrorKind = "forbidden"
	KindInvalidOperation  ErrorKind = "invalid_operation"
	KindInvalidTransition ErrorKind = "invalid_transition"
	KindConflict          ErrorKind = "conflict"
	KindInternal          ErrorKind = "internal"
)

// DomainError is the error type returned by the booking and review services.
type DomainError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError builds a DomainError with the given kind and message.
func NewDomainError(kind ErrorKind, format string, args ...any) *DomainError {
	return &DomainError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...any) *DomainError {
	return NewDomainError(KindValidation, format, args...)
}

func NotFoundf(format string, args ...any) *DomainError {
	return NewDomainError(KindNotFound, format, args...)
}

func Forbiddenf(format string, args ...any) *DomainError {
	return NewDomainError(KindForbidden, format, args...)
}

func InvalidOperationf(format string, args ...any) *DomainError {
	return NewDomainError(KindInvalidOperation, format, args...)
}

func InvalidTransitionf(format string, args ...any) *DomainError {
	return NewDomainError(KindInvalidTransition, format, args...)
}

func Conflictf(format string, args ...any) *DomainError {
	return NewDomainError(KindConflict, format, args...)
}

// InternalError wraps an unexpected failure. The underlying error is kept
// for logs but never surfaced to callers.
func InternalError(err error) *DomainError {
	return &DomainError{Kind: KindInternal, Message: "internal error", Err: err}
}

// KindOf extracts the ErrorKind from err, defaulting to KindInternal for
// errors that are not DomainErrors.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error kind to its HTTP status code. The mapping is a
// boundary concern: services only ever produce kinds.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindInvalidOperation, KindInvalidTransition:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
