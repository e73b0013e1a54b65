package delivery

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for rejected lifecycle transitions.
// Use errors.Is to classify; the concrete InvalidTransitionError carries
// the attempted pair.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a (current, attempted) status pair that
// the lifecycle does not allow.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the
// given transition attempt.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of a delivery record.
// It implements a state machine with a closed transition table so that
// illegal moves are a type-level concern rather than a string-matching
// bug surface.
//
// State transitions:
//
//	Pending ──────> InTransit ──────> Delivered
//	   │    accept     │    │ return
//	   │               │    └───────> Returned ──> InTransit (re-accept)
//	   │               │ cancel
//	   └───────────────┴────────────> Cancelled
//
// Delivered and Cancelled are terminal. A Returned record is available
// for acceptance again exactly like a Pending one but keeps its Returned
// label until re-accepted.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status set at creation, before any
	// driver assignment. Pending records appear in the available backlog.
	StatusPending

	// StatusInTransit indicates the record is assigned to a driver and
	// under way. Only the accept operation produces this status.
	StatusInTransit

	// StatusDelivered indicates the assigned driver completed the
	// delivery. Terminal; the driver reference is retained for history.
	StatusDelivered

	// StatusCancelled indicates the sender or an administrator cancelled
	// the record. Terminal.
	StatusCancelled

	// StatusReturned indicates the assigned driver handed the package
	// back. The record has no driver and is available for re-acceptance.
	StatusReturned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusInTransit: "InTransit",
		StatusDelivered: "Delivered",
		StatusCancelled: "Cancelled",
		StatusReturned:  "Returned",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "Pending",
		StatusInTransit: "InTransit",
		StatusDelivered: "Delivered",
		StatusCancelled: "Cancelled",
		StatusReturned:  "Returned",
	}
}

// Validate checks if the Status value is one of the five valid states.
// Used to reject raw values arriving from persistence or transport.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name as produced by String.
func StatusFromString(raw string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == raw {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", raw))
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// IsAvailable reports whether a record in this status belongs to the
// driver-facing backlog, assuming it has no assigned driver.
func (s Status) IsAvailable() bool {
	return s == StatusPending || s == StatusReturned
}

// Accept transitions the status to InTransit.
//
// Valid from: Pending (first acceptance), Returned (re-acceptance).
// Everything else fails with InvalidTransitionError, notably terminal
// states and InTransit itself.
func (s Status) Accept() (Status, error) {
	if !s.IsAvailable() {
		return StatusUnknown, NewInvalidTransitionError(s, StatusInTransit)
	}
	return StatusInTransit, nil
}

// Complete transitions the status to Delivered.
//
// Valid from: InTransit only. An unassigned record can never go directly
// to Delivered.
func (s Status) Complete() (Status, error) {
	if s != StatusInTransit {
		return StatusUnknown, NewInvalidTransitionError(s, StatusDelivered)
	}
	return StatusDelivered, nil
}

// Return transitions the status to Returned.
//
// Valid from: InTransit only.
func (s Status) Return() (Status, error) {
	if s != StatusInTransit {
		return StatusUnknown, NewInvalidTransitionError(s, StatusReturned)
	}
	return StatusReturned, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from: Pending, InTransit. A Returned record must be re-accepted
// before it can be cancelled; terminal states stay terminal.
func (s Status) Cancel() (Status, error) {
	if s != StatusPending && s != StatusInTransit {
		return StatusUnknown, NewInvalidTransitionError(s, StatusCancelled)
	}
	return StatusCancelled, nil
}

// ValidateCanHaveDriver validates the consistency between a record's
// status and its driver assignment.
//
// Rules:
//   - Pending and Returned records must not have a driver
//   - InTransit and Delivered records must have a driver
//     (Delivered retains the driver for history)
//   - Cancelled records may have either (a cancel during transit keeps
//     the driver for history, a cancel while pending never had one)
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	switch s {
	case StatusPending, StatusReturned:
		if hasDriver {
			return errs.NewValueIsInvalidErrorWithCause(
				"driverID",
				fmt.Errorf("%s is not a valid status to have a driver", s.String()),
			)
		}
	case StatusInTransit, StatusDelivered:
		if !hasDriver {
			return errs.NewValueIsInvalidErrorWithCause(
				"driverID",
				fmt.Errorf("%s is not a valid status to have no driver", s.String()),
			)
		}
	}
	return nil
}
