package model

import (
	"fmt"

	"patient-scheduler/internal/matching"
)

// ValidationError reports a malformed or duplicated input row. It is returned
// before any model is built, so a failed run never carries a partial result.
type ValidationError struct {
	Entity string // "patient" or "doctor"
	ID     string
	Reason string
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("invalid %v %q: %v", err.Entity, err.ID, err.Reason)
}

// SolverError reports a non-optimal solver outcome for a well-formed input.
// The constraint shape makes this an internal error, not a user-correctable
// one; input sizes are carried for diagnosis.
type SolverError struct {
	Status   matching.Status
	Patients int
	Units    int
	Err      error
}

func (err *SolverError) Error() string {
	message := fmt.Sprintf("solver returned %v for %v patients and %v slot units", err.Status, err.Patients, err.Units)
	if err.Err != nil {
		message = fmt.Sprintf("%v: %v", message, err.Err)
	}
	return message
}

func (err *SolverError) Unwrap() error {
	return err.Err
}
