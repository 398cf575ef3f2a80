// Package apierrors defines the error taxonomy of the control plane and its
// mapping to HTTP status codes. Validation, not-found and conflict errors are
// detected before any mutation; internal errors are the only category that
// can occur mid-persistence and always come with a full rollback.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError rejects malformed or missing input (400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation builds a ValidationError from a format string. The message is
// part of the wire contract and must not be decorated further.
func NewValidation(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an unknown id, either the primary resource of the
// request or a reference embedded in a payload.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError rejects a mutation at the status admission gate (409).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflict(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// InternalError wraps a store or collaborator failure (500). By the time the
// caller observes it, any partial state has been rolled back.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %v", e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

func NewInternal(err error) *InternalError {
	return &InternalError{Err: err}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

// StatusCode maps an error to its HTTP status. Unknown errors are treated as
// internal failures.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidation(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	case IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
