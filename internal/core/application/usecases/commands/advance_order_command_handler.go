package commands

import (
	"context"

	"instore/internal/core/domain/model/order"
	"instore/internal/core/ports"
)

// AdvanceOrderCommandHandler pushes an order through its cashier lifecycle.
// The transition is checked against the local snapshot first so an illegal
// step fails before any network traffic, but the service's answer is adopted
// wholesale afterwards: on status the service always wins.
//
// Example:
//
//	handler := NewAdvanceOrderCommandHandler(uowFactory, client)
//	cmd, _ := NewAdvanceOrderCommand(token, "ORD-1001", StageMarkPaid)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("advancement failed: %w", err)
//	}
type AdvanceOrderCommandHandler struct {
	uowFactory SessionUoWFactory
	client     ports.OrderClient
}

// NewAdvanceOrderCommandHandler creates a handler for cashier advancement.
// Requires a SessionUoWFactory for persistence and the order service client.
func NewAdvanceOrderCommandHandler(
	uowFactory SessionUoWFactory,
	client ports.OrderClient,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		client:     client,
	}
}

// Handle processes the advancement command.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
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

	if _, err = h.transition(sess.Order().Status(), cmd.Stage()); err != nil {
		return err
	}

	seq := sess.NextSeq()
	snapshot, err := h.advanceRemote(ctx, cmd)
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

func (h *AdvanceOrderCommandHandler) transition(status order.Status, stage Stage) (order.Status, error) {
	switch stage {
	case StageVerify:
		return status.Verify()
	case StageMarkPaid:
		return status.Pay()
	case StageMarkReady:
		return status.Fulfill()
	case StageMarkDelivered:
		return status.Deliver()
	default:
		return order.Unknown, stage.Validate()
	}
}

func (h *AdvanceOrderCommandHandler) advanceRemote(ctx context.Context, cmd AdvanceOrderCommand) (*order.Order, error) {
	switch cmd.Stage() {
	case StageVerify:
		return h.client.VerifyOrder(ctx, cmd.Token(), cmd.OrderID())
	case StageMarkPaid:
		return h.client.MarkOrderPaid(ctx, cmd.Token(), cmd.OrderID())
	case StageMarkReady:
		return h.client.MarkOrderReady(ctx, cmd.Token(), cmd.OrderID())
	default:
		return h.client.MarkOrderDelivered(ctx, cmd.Token(), cmd.OrderID())
	}
}
