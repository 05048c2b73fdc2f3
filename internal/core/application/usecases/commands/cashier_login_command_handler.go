package commands

import (
	"context"

	"instore/internal/core/ports"
)

// CashierLoginCommandHandler exchanges staff credentials for a bearer token.
// No local state changes; rejected credentials surface as an AuthError from
// the client and are never retried here.
type CashierLoginCommandHandler struct {
	client ports.OrderClient
}

// NewCashierLoginCommandHandler creates a handler for cashier authentication.
func NewCashierLoginCommandHandler(client ports.OrderClient) CashierLoginCommandHandler {
	return CashierLoginCommandHandler{client: client}
}

// Handle processes the login command and returns the cashier session.
func (h *CashierLoginCommandHandler) Handle(ctx context.Context, cmd CashierLoginCommand) (*ports.CashierSession, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.client.CashierLogin(ctx, cmd.Email(), cmd.Password())
}
