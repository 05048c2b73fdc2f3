package commands

import (
	"context"

	"instore/internal/core/domain/model/order"
	"instore/internal/core/ports"
)

// MoveItemCommandHandler relocates a line between the cart and the wishlist.
// The line keeps its quantity and variant on both sides of the move.
type MoveItemCommandHandler struct {
	uowFactory SessionUoWFactory
	client     ports.OrderClient
}

// NewMoveItemCommandHandler creates a handler for cart/wishlist moves.
// Requires a SessionUoWFactory for persistence and the order service client.
func NewMoveItemCommandHandler(
	uowFactory SessionUoWFactory,
	client ports.OrderClient,
) MoveItemCommandHandler {
	return MoveItemCommandHandler{
		uowFactory: uowFactory,
		client:     client,
	}
}

// Handle processes the move command.
func (h *MoveItemCommandHandler) Handle(ctx context.Context, cmd MoveItemCommand) error {
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

	if cmd.To() == order.CollectionWishlist {
		sess.Order().MoveToWishlist(cmd.ItemID())
	} else {
		sess.Order().MoveToCart(cmd.ItemID())
	}

	seq := sess.NextSeq()
	snapshot, err := h.client.MoveItem(ctx, cmd.OrderID(), cmd.ItemID(),
		cmd.From(), cmd.To())
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
