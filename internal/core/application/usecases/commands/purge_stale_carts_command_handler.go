package commands

import (
	"context"
)

// PurgeStaleCartsCommandHandler handles bulk deletion of abandoned cart
// lines. Returns the number of lines removed so the caller can log it.
type PurgeStaleCartsCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewPurgeStaleCartsCommandHandler creates a handler for stale cart purging.
func NewPurgeStaleCartsCommandHandler(uowFactory CartUoWFactory) PurgeStaleCartsCommandHandler {
	return PurgeStaleCartsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command.
func (h PurgeStaleCartsCommandHandler) Handle(ctx context.Context, cmd PurgeStaleCartsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.CartRepository().DeleteOlderThan(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
