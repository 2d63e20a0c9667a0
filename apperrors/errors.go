package apperrors

import (
	"fmt"
	"net/http"
)

// AppError is the interface implemented by every domain error in salonbook.
// Handlers use Category and HTTPStatus to translate errors into responses;
// the core packages only build and return them.
type AppError interface {
	Error() string
	Category() string
	HTTPStatus() int
	Unwrap() error
}

// NotFoundError means a referenced id does not resolve to a live record.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("not found: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound }
func (e *NotFoundError) Unwrap() error    { return nil }

func NewNotFoundError(format string, args ...interface{}) AppError {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

// ValidationError means the input itself is structurally invalid: missing
// required field, non-positive duration/price/amount, duplicate unique key.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("validation: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *ValidationError) Unwrap() error    { return nil }

func NewValidationError(format string, args ...interface{}) AppError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ConflictError means a business-rule conflict detected at write time,
// e.g. a booking that overlaps an existing appointment, or deleting a
// record that other rows still depend on.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string    { return fmt.Sprintf("conflict: %s", e.Msg) }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusConflict }
func (e *ConflictError) Unwrap() error    { return nil }

func NewConflictError(format string, args ...interface{}) AppError {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

// InvalidTransitionError means an appointment status change violates the
// state machine (terminal states have no outgoing edges).
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}
func (e *InvalidTransitionError) Category() string { return "INVALID_TRANSITION" }
func (e *InvalidTransitionError) HTTPStatus() int  { return http.StatusUnprocessableEntity }
func (e *InvalidTransitionError) Unwrap() error    { return nil }

func NewInvalidTransitionError(from, to string) AppError {
	return &InvalidTransitionError{From: from, To: to}
}

// ReferentialIntegrityError means a join or derived lookup hit a dangling
// reference. Surfaced instead of skipped, since skipping would hide
// corrupted data.
type ReferentialIntegrityError struct {
	Msg string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("referential integrity: %s", e.Msg)
}
func (e *ReferentialIntegrityError) Category() string { return "REFERENTIAL_INTEGRITY" }
func (e *ReferentialIntegrityError) HTTPStatus() int  { return http.StatusInternalServerError }
func (e *ReferentialIntegrityError) Unwrap() error    { return nil }

func NewReferentialIntegrityError(format string, args ...interface{}) AppError {
	return &ReferentialIntegrityError{Msg: fmt.Sprintf(format, args...)}
}

// InternalError wraps unexpected failures from infrastructure code.
type InternalError struct {
	Msg string
	Err error
}

func (e *InternalError) Error() string    { return fmt.Sprintf("internal: %s", e.Msg) }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError }
func (e *InternalError) Unwrap() error    { return e.Err }

func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// MapToHTTPStatus translates any error into an HTTP status, category and
// message for the response body. Untyped errors are treated as internal.
func MapToHTTPStatus(err error) (int, string, string) {
	if appErr, ok := err.(AppError); ok {
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}
	return http.StatusInternalServerError, "UNKNOWN_ERROR", "an unexpected error occurred"
}
