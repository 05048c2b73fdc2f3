package commands

import (
	"context"

	"instore/internal/core/domain/model/order"
	"instore/internal/core/ports"
)

// AddToWishlistCommandHandler parks a product on the wishlist. The service
// assigns the line id, so there is no local mutation to apply optimistically;
// the returned snapshot is adopted wholesale under the issued sequence.
type AddToWishlistCommandHandler struct {
	uowFactory SessionUoWFactory
	client     ports.OrderClient
}

// NewAddToWishlistCommandHandler creates a handler for wishlist parking.
// Requires a SessionUoWFactory for persistence and the order service client.
func NewAddToWishlistCommandHandler(
	uowFactory SessionUoWFactory,
	client ports.OrderClient,
) AddToWishlistCommandHandler {
	return AddToWishlistCommandHandler{
		uowFactory: uowFactory,
		client:     client,
	}
}

// Handle processes the wishlist parking command.
func (h *AddToWishlistCommandHandler) Handle(ctx context.Context, cmd AddToWishlistCommand) error {
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
	snapshot, err := h.client.AddToWishlist(ctx, cmd.OrderID(), cmd.Code(),
		min(cmd.Quantity(), order.MaxQuantity), cmd.Color())
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
