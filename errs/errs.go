package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Common error sentinel values
var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrBadRequest    = errors.New("malformed request")
	ErrInternal      = errors.New("internal server error")
)

type ApiErr struct {
	StatusCode int
	err        error
	Field      string // Field that caused the error (for validation errors)
	Cause      error  // The underlying cause of the error
}

func NewApiErr(statusCode int, message string) *ApiErr {
	return &ApiErr{
		StatusCode: statusCode,
		err:        errors.New(message),
	}
}

// implements error interface. this allows us to pass an instance of ApiErr as an argument of type `error`
func (e *ApiErr) Error() string {
	return e.err.Error()
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ApiErr) Unwrap() error {
	return e.err
}

// Common error constructors with appropriate HTTP status codes

func NewNotFoundError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, err: errors.New(message)}
}

func NewBadRequestError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, err: errors.New(message)}
}

func NewUnauthorizedError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: errors.New(message)}
}

func NewInternalError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusInternalServerError, err: errors.New(message)}
}

// NewValidationError reports a single field-scoped constraint violation.
func NewValidationError(field, message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        fmt.Errorf("%s: %s", field, message),
		Field:      field,
	}
}

// NewNotFound wraps a backend miss for a single-record lookup, carrying the
// backend's error detail through to the caller.
func NewNotFound(entity string, cause error) *ApiErr {
	e := &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
		Cause:      cause,
	}
	if cause != nil {
		e.err = fmt.Errorf("%s %w: %s", entity, ErrNotFound, cause.Error())
	}
	return e
}

// NewBackendError classifies a persistence-layer failure. The collaborator's
// message is passed through verbatim; only the status code is derived, by
// matching the error text the way the drivers phrase it.
func NewBackendError(operation, entity string, cause error) *ApiErr {
	if cause == nil {
		return &ApiErr{
			StatusCode: http.StatusInternalServerError,
			err:        fmt.Errorf("failed to %s %s", operation, entity),
		}
	}

	errStr := cause.Error()
	switch {
	case strings.Contains(errStr, "duplicate key"), strings.Contains(errStr, "UNIQUE constraint"):
		return &ApiErr{
			StatusCode: http.StatusConflict,
			err:        fmt.Errorf("%s %w: %s", entity, ErrAlreadyExists, errStr),
			Cause:      cause,
		}
	case strings.Contains(errStr, "record not found"), strings.Contains(errStr, "not found"):
		return NewNotFound(entity, cause)
	default:
		return &ApiErr{
			StatusCode: http.StatusInternalServerError,
			err:        cause,
			Cause:      cause,
		}
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}
