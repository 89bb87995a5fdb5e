package commands

import (
	"errors"
	"time"

	"restaurant/internal/pkg/guard"
)

var (
	ErrPurgeStaleCartsCommandIsNotConstructed = errors.New(
		"PurgeStaleCartsCommand must be created via NewPurgeStaleCartsCommand constructor",
	)
	ErrCutoffIsRequired = errors.New("cutoff time is required")
)

// PurgeStaleCartsCommand represents a request to delete cart lines that were
// added before the cutoff, across all customers. Issued by the background
// cleanup job.
type PurgeStaleCartsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewPurgeStaleCartsCommand creates a command to purge stale cart lines.
func NewPurgeStaleCartsCommand(cutoff time.Time) (PurgeStaleCartsCommand, error) {
	purgeCommand := PurgeStaleCartsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := purgeCommand.setCutoff(cutoff); err != nil {
		return PurgeStaleCartsCommand{}, err
	}

	return purgeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeStaleCartsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeStaleCartsCommandIsNotConstructed)
}

// Cutoff returns the time before which cart lines are considered stale.
func (c PurgeStaleCartsCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *PurgeStaleCartsCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return ErrCutoffIsRequired
	}

	c.cutoff = cutoff
	return nil
}
