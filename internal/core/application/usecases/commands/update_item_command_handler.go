package commands

import (
	"context"

	"instore/internal/core/domain/model/order"
	"instore/internal/core/ports"
)

// UpdateItemCommandHandler changes a cart line's quantity or variant.
// Non-positive quantities remove the line both locally and on the order
// service, so a zero-quantity ghost line never survives.
type UpdateItemCommandHandler struct {
	uowFactory SessionUoWFactory
	client     ports.OrderClient
}

// NewUpdateItemCommandHandler creates a handler for cart line updates.
// Requires a SessionUoWFactory for persistence and the order service client.
func NewUpdateItemCommandHandler(
	uowFactory SessionUoWFactory,
	client ports.OrderClient,
) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{
		uowFactory: uowFactory,
		client:     client,
	}
}

// Handle processes the update command. The local mutation happens first; the
// service's snapshot then replaces the whole order, sequence gate permitting.
func (h *UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) error {
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

	// The order service receives the same clamped quantity the local cart
	// keeps, so both sides agree on the committed amount.
	qty := min(cmd.Quantity(), order.MaxQuantity)
	sess.Order().SetQuantity(cmd.ItemID(), qty)

	seq := sess.NextSeq()
	var snapshot *order.Order
	if qty > 0 {
		snapshot, err = h.client.UpdateItem(ctx, cmd.OrderID(), cmd.ItemID(),
			qty, cmd.Color())
	} else {
		snapshot, err = h.client.RemoveItem(ctx, cmd.OrderID(), cmd.ItemID())
	}
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
