package usecase

import (
	"fmt"
	"strings"
)

// DomainError is a validation-level failure surfaced before any write is
// attempted.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is a persistence or infrastructure failure carrying the
// original cause.
type TechnicalError struct {
	Code    string
	Message string
	Cause   error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Cause
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// PartialSaveError reports a multi-step save that failed after some writes
// already landed. No compensating deletes are attempted; the completed step
// names tell the caller which tiers of the graph persisted.
type PartialSaveError struct {
	Step      string
	Completed []string
	Cause     error
}

func (e *PartialSaveError) Error() string {
	if len(e.Completed) == 0 {
		return fmt.Sprintf("save failed at %q: %v", e.Step, e.Cause)
	}
	return fmt.Sprintf("save failed at %q after [%s]: %v",
		e.Step, strings.Join(e.Completed, ", "), e.Cause)
}

func (e *PartialSaveError) Unwrap() error {
	return e.Cause
}
