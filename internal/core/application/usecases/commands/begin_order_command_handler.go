package commands

import (
	"context"

	"instore/internal/core/domain/model/session"
	"instore/internal/core/ports"
)

// BeginOrderCommandHandler opens a new shopping session. Registers a draft
// order with the remote order service and persists a session around the
// returned snapshot. The remote call happens before the transaction opens,
// so a service failure leaves no local trace.
type BeginOrderCommandHandler struct {
	uowFactory SessionUoWFactory
	client     ports.OrderClient
}

// NewBeginOrderCommandHandler creates a handler for session creation.
// Requires a SessionUoWFactory for persistence and the order service client.
func NewBeginOrderCommandHandler(
	uowFactory SessionUoWFactory,
	client ports.OrderClient,
) BeginOrderCommandHandler {
	return BeginOrderCommandHandler{
		uowFactory: uowFactory,
		client:     client,
	}
}

// Handle processes the command and returns the order code assigned by the
// order service.
func (h *BeginOrderCommandHandler) Handle(ctx context.Context, cmd BeginOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	snapshot, err := h.client.CreateOrder(ctx, cmd.ClientID())
	if err != nil {
		return "", err
	}

	sess, err := session.NewSession(cmd.ClientID(), snapshot)
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SessionRepository().Add(ctx, sess); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return snapshot.ID(), nil
}
