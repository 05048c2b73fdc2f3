package commands

import (
	"context"

	"instore/internal/core/ports"
)

// RemoveItemCommandHandler deletes a cart line. Removing an id the cart does
// not hold is a no-op locally; the order service is still consulted so both
// sides converge on the same snapshot.
type RemoveItemCommandHandler struct {
	uowFactory SessionUoWFactory
	client     ports.OrderClient
}

// NewRemoveItemCommandHandler creates a handler for cart line removal.
// Requires a SessionUoWFactory for persistence and the order service client.
func NewRemoveItemCommandHandler(
	uowFactory SessionUoWFactory,
	client ports.OrderClient,
) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{
		uowFactory: uowFactory,
		client:     client,
	}
}

// Handle processes the remove command.
func (h *RemoveItemCommandHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
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

	sess.Order().RemoveItem(cmd.ItemID())

	seq := sess.NextSeq()
	snapshot, err := h.client.RemoveItem(ctx, cmd.OrderID(), cmd.ItemID())
	if err != nil {
		return err
	}

	if _, err = sess.Apply(seq, snapshot); err != nil {
		return err
	}

	if err = repo.Update(ctx, sess); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
