package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	ErrBookingNotFound       = fmt.Errorf("booking %w", ErrNotFound)
	ErrDriverNotFound        = fmt.Errorf("driver %w", ErrNotFound)
	ErrCompanyNotFound       = fmt.Errorf("company %w", ErrNotFound)
	ErrDriverPaymentNotFound = fmt.Errorf("driver payment %w", ErrNotFound)
	ErrFuelEntryNotFound     = fmt.Errorf("fuel entry %w", ErrNotFound)

	ErrInvalidTransition = fmt.Errorf("status transition %w", ErrConflict)

	// ErrLedgerNotRecorded means a balance change committed but its ledger
	// entry did not.
	ErrLedgerNotRecorded = errors.New("payment applied but ledger entry not recorded")
)

// ValidationError describes one rejected input field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// ValidationErrors collects every field rejected by a single request.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}

	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field)
	}

	return fmt.Sprintf("validation failed for %s", strings.Join(parts, ", "))
}

func NewValidationError(field, message string) ValidationErrors {
	return ValidationErrors{{Field: field, Message: message}}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsValidation(err error) bool {
	var many ValidationErrors
	if errors.As(err, &many) {
		return true
	}

	var one ValidationError
	return errors.As(err, &one)
}

// FieldErrors flattens err into field-level detail, or nil when err is not a
// validation failure.
func FieldErrors(err error) []ValidationError {
	var many ValidationErrors
	if errors.As(err, &many) {
		return many
	}

	var one ValidationError
	if errors.As(err, &one) {
		return []ValidationError{one}
	}

	return nil
}
