package domain

import (
	"errors"
	"fmt"
)

var (
	ErrQuotaExceeded      = errors.New("monthly quota exceeded")
	ErrRepurposeFailed    = errors.New("repurpose failed")
	ErrStateNotFound      = errors.New("state entry not found")
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	ErrValidation         = errors.New("invalid input")
)

// ValidationError reports unusable input. The user corrects it and resubmits.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// QuotaExceededError reports that no credit is left for the current month.
type QuotaExceededError struct {
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("You have used all %d credits for this month. Your credits will reset next month.", e.Limit)
}

func (e *QuotaExceededError) Is(target error) bool {
	return target == ErrQuotaExceeded
}

// RepurposeError is the single failure kind of the repurpose client.
// Message is meant for display; Err keeps the underlying cause for logs.
type RepurposeError struct {
	Message string
	Err     error
}

// DefaultRepurposeMessage is shown for every transport or remote failure.
const DefaultRepurposeMessage = "Failed to repurpose content. Please check your webhook URL."

// NewRepurposeError wraps cause behind the generic display message
func NewRepurposeError(cause error) *RepurposeError {
	return &RepurposeError{Message: DefaultRepurposeMessage, Err: cause}
}

func (e *RepurposeError) Error() string {
	if e.Message == "" {
		return DefaultRepurposeMessage
	}
	return e.Message
}

func (e *RepurposeError) Is(target error) bool {
	return target == ErrRepurposeFailed
}

func (e *RepurposeError) Unwrap() error {
	return e.Err
}
