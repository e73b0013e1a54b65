package commands

import (
	"errors"
	"time"

	"dispatch/internal/pkg/guard"
)

var (
	ErrReleaseStaleDeliveriesCommandIsNotConstructed = errors.New(
		"ReleaseStaleDeliveriesCommand must be created via NewReleaseStaleDeliveriesCommand constructor",
	)
	ErrStaleAfterIsInvalid = errors.New("staleAfter must be greater than 0")
)

// ReleaseStaleDeliveriesCommand represents an administrative sweep over
// in-transit records whose driver has gone dark: every record untouched
// for longer than the threshold is force-returned to the available
// backlog.
type ReleaseStaleDeliveriesCommand struct { //nolint:recvcheck //using for validation
	staleAfter time.Duration

	guard guard.ConstructorGuard
}

// NewReleaseStaleDeliveriesCommand creates a stale sweep command with the
// given inactivity threshold. The threshold must be positive.
func NewReleaseStaleDeliveriesCommand(staleAfter time.Duration) (ReleaseStaleDeliveriesCommand, error) {
	if staleAfter <= 0 {
		return ReleaseStaleDeliveriesCommand{}, ErrStaleAfterIsInvalid
	}

	return ReleaseStaleDeliveriesCommand{
		staleAfter: staleAfter,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReleaseStaleDeliveriesCommandIsNotConstructed if validation fails.
func (c ReleaseStaleDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrReleaseStaleDeliveriesCommandIsNotConstructed)
}

// StaleAfter returns the inactivity threshold.
func (c ReleaseStaleDeliveriesCommand) StaleAfter() time.Duration {
	return c.staleAfter
}
