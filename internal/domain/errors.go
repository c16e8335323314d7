// Package domain defines core types, interfaces, and errors for the
// governed-data-sharing service.
package domain

import (
	"fmt"
	"strings"
)

// NotFoundError indicates a resource was not found.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// AccessDeniedError indicates insufficient permissions.
type AccessDeniedError struct {
	Message string
}

func (e *AccessDeniedError) Error() string { return e.Message }

// ConflictError indicates a conflict (e.g., duplicate resource).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// ErrNotFound creates a NotFoundError with a formatted message.
func ErrNotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ErrAccessDenied creates an AccessDeniedError with a formatted message.
func ErrAccessDenied(format string, args ...interface{}) *AccessDeniedError {
	return &AccessDeniedError{Message: fmt.Sprintf(format, args...)}
}

// ErrConflict creates a ConflictError with a formatted message.
func ErrConflict(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// ErrorCode identifies one category of validation failure.
type ErrorCode string

const (
	CodeDatasetNameConflict        ErrorCode = "DATASET_NAME_CONFLICT"
	CodeDatasetNameNotFound        ErrorCode = "DATASET_NAME_NOT_FOUND"
	CodeDatasetIDNotFound          ErrorCode = "DATASET_ID_NOT_FOUND"
	CodeProjectNameConflict        ErrorCode = "PROJECT_NAME_CONFLICT"
	CodeProjectNameNotFound        ErrorCode = "PROJECT_NAME_NOT_FOUND"
	CodeProjectIDNotFound          ErrorCode = "PROJECT_ID_NOT_FOUND"
	CodeDataShareNameConflict      ErrorCode = "DATA_SHARE_NAME_CONFLICT"
	CodeDataShareNameNotFound      ErrorCode = "DATA_SHARE_NAME_NOT_FOUND"
	CodeDataShareIDNotFound        ErrorCode = "DATA_SHARE_ID_NOT_FOUND"
	CodeSharedResourceNameConflict ErrorCode = "SHARED_RESOURCE_NAME_CONFLICT"
	CodeSharedResourceIDNotFound   ErrorCode = "SHARED_RESOURCE_ID_NOT_FOUND"
	CodeShareInDatasetIDNotFound   ErrorCode = "DATA_SHARE_IN_DATASET_ID_NOT_FOUND"
	CodeDatasetInProjectIDNotFound ErrorCode = "DATASET_IN_PROJECT_ID_NOT_FOUND"
	CodeNonExistingUser            ErrorCode = "NON_EXISTING_USER"
	CodeNonExistingGroup           ErrorCode = "NON_EXISTING_GROUP"
	CodeNonExistingRole            ErrorCode = "NON_EXISTING_ROLE"
	CodeNotAdmin                   ErrorCode = "NOT_ADMIN"
	CodeServiceNameMissing         ErrorCode = "SERVICE_NAME_MISSING"
	CodeNonExistingService         ErrorCode = "NON_EXISTING_SERVICE"
	CodeNonExistingZone            ErrorCode = "NON_EXISTING_ZONE"
	CodeNotServiceAdmin            ErrorCode = "NOT_SERVICE_ADMIN"
	CodeNotServiceOrZoneAdmin      ErrorCode = "NOT_SERVICE_OR_ZONE_ADMIN"
	CodeInvalidAccessType          ErrorCode = "INVALID_ACCESS_TYPE"
	CodeInvalidMaskType            ErrorCode = "INVALID_MASK_TYPE"
	CodeInvalidStatus              ErrorCode = "INVALID_STATUS"
	CodeInvalidStatusChange        ErrorCode = "INVALID_STATUS_CHANGE"
	CodeUpdateImmutableField       ErrorCode = "UPDATE_IMMUTABLE_FIELD"
)

// ValidationFailure is one structured problem detected during validation.
// Field is the name of the offending field, empty when the failure applies
// to the operation as a whole.
type ValidationFailure struct {
	Code    ErrorCode `json:"code"`
	Field   string    `json:"field,omitempty"`
	Message string    `json:"message"`
}

// ValidationError indicates invalid input. When produced by the sharing
// validator it carries every failure detected during the pass, not just
// the first one.
type ValidationError struct {
	Message  string
	Failures []ValidationFailure
}

func (e *ValidationError) Error() string {
	if len(e.Failures) == 0 {
		return e.Message
	}
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.Message
	}
	return e.Message + ": " + strings.Join(msgs, "; ")
}

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
