package commands

import (
	"context"

	"instore/internal/core/domain/model/order"
	"instore/internal/core/ports"
)

// AddItemCommandHandler puts a product into the cart. The cart is mutated
// locally first so a slow order service never blocks the scan flow, then the
// service's snapshot is folded back in. Only the cart collection is replaced
// by the fold; wishlist lines parked on the device stay put.
//
// Example:
//
//	handler := NewAddItemCommandHandler(uowFactory, client)
//	cmd, _ := NewAddItemCommand("ORD-1001", "p-7", "SKU-7", "Mug", 1250, 1, "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("add item failed: %w", err)
//	}
type AddItemCommandHandler struct {
	uowFactory SessionUoWFactory
	client     ports.OrderClient
}

// NewAddItemCommandHandler creates a handler for cart add operations.
// Requires a SessionUoWFactory for persistence and the order service client.
func NewAddItemCommandHandler(
	uowFactory SessionUoWFactory,
	client ports.OrderClient,
) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
		client:     client,
	}
}

// Handle processes the add command. A remote failure rolls the transaction
// back, leaving the committed local state untouched. A stale service response
// is discarded by the session's sequence gate.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
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

	item, err := order.NewItem(cmd.ItemID(), cmd.Code(), cmd.Name(),
		cmd.Price(), qty, cmd.Color())
	if err != nil {
		return err
	}
	if err = sess.Order().AddItem(item); err != nil {
		return err
	}

	seq := sess.NextSeq()
	snapshot, err := h.client.AddItem(ctx, cmd.OrderID(), cmd.Code(),
		qty, cmd.Color())
	if err != nil {
		return err
	}

	if _, err = sess.ApplyItems(seq, snapshot); err != nil {
		return err
	}

	if err = repo.Update(ctx, sess); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
