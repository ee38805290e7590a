package domain

import (
	"errors"
	"fmt"
)

var (
	ErrOverrideNotFound   = errors.New("rate override not found")
	ErrPlanNotFound       = errors.New("rate plan not found")
	ErrEntryNotFound      = errors.New("rate entry not found")
	ErrProfileNotFound    = errors.New("shift profile not found")
	ErrShiftNotFound      = errors.New("shift not found")
	ErrAssignmentNotFound = errors.New("profile assignment not found")
)

// NotFoundError reports a missing referenced record.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func NewNotFoundError(kind, id string) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

// ValidationError reports malformed or disallowed input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ConflictError reports a date-range collision with an existing record.
type ConflictError struct {
	Kind          string
	ConflictingID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflicts with existing record %q", e.Kind, e.ConflictingID)
}

func NewConflictError(kind, conflictingID string) *ConflictError {
	return &ConflictError{Kind: kind, ConflictingID: conflictingID}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
