package commands

import (
	"context"

	"instore/internal/core/ports"
)

// CloseOrderCommandHandler submits the cart for checkout. The order's own
// preconditions run locally first: an empty cart or a missing order code is
// rejected before any network traffic, and the order stays in its draft
// state. Wishlist lines do not count toward the non-empty requirement.
type CloseOrderCommandHandler struct {
	uowFactory SessionUoWFactory
	client     ports.OrderClient
}

// NewCloseOrderCommandHandler creates a handler for checkout submission.
// Requires a SessionUoWFactory for persistence and the order service client.
func NewCloseOrderCommandHandler(
	uowFactory SessionUoWFactory,
	client ports.OrderClient,
) CloseOrderCommandHandler {
	return CloseOrderCommandHandler{
		uowFactory: uowFactory,
		client:     client,
	}
}

// Handle processes the close command.
func (h *CloseOrderCommandHandler) Handle(ctx context.Context, cmd CloseOrderCommand) error {
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

	if err = sess.Order().Close(); err != nil {
		return err
	}

	seq := sess.NextSeq()
	snapshot, err := h.client.CloseOrder(ctx, cmd.OrderID(),
		cmd.PaymentMethod(), cmd.Notes())
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
