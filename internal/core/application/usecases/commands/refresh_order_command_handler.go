package commands

import (
	"context"

	"instore/internal/core/ports"
)

// RefreshOrderCommandHandler re-pulls an order's authoritative snapshot and
// reconciles it into the local session. The sequence gate makes the refresh
// safe to run concurrently with shopper mutations: a refresh that lost the
// race is simply discarded.
type RefreshOrderCommandHandler struct {
	uowFactory SessionUoWFactory
	client     ports.OrderClient
}

// NewRefreshOrderCommandHandler creates a handler for snapshot refreshes.
// Requires a SessionUoWFactory for persistence and the order service client.
func NewRefreshOrderCommandHandler(
	uowFactory SessionUoWFactory,
	client ports.OrderClient,
) RefreshOrderCommandHandler {
	return RefreshOrderCommandHandler{
		uowFactory: uowFactory,
		client:     client,
	}
}

// Handle processes the refresh command.
func (h *RefreshOrderCommandHandler) Handle(ctx context.Context, cmd RefreshOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.SessionRepository()
	sess, err := repo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	seq := sess.NextSeq()
	snapshot, err := h.client.GetOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// even a discarded snapshot advanced the sequence counter
	if _, err = sess.Apply(seq, snapshot); err != nil {
		return err
	}

	if err = repo.Update(ctx, sess); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
