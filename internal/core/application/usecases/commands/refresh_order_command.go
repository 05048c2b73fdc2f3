package commands

import (
	"errors"
	"strings"

	"instore/internal/pkg/guard"
)

var ErrRefreshOrderCommandIsNotConstructed = errors.New(
	"RefreshOrderCommand must be created via NewRefreshOrderCommand constructor",
)

// RefreshOrderCommand represents a request to re-pull an order's snapshot
// from the order service. Issued by the refresh job for every tracked order
// and by cashier-side lookups.
type RefreshOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewRefreshOrderCommand creates a command to refresh a tracked order.
func NewRefreshOrderCommand(orderID string) (RefreshOrderCommand, error) {
	cmd := RefreshOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RefreshOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefreshOrderCommandIsNotConstructed if validation fails.
func (c RefreshOrderCommand) Validate() error {
	return c.guard.Validate(ErrRefreshOrderCommandIsNotConstructed)
}

// OrderID returns the order code to refresh.
func (c RefreshOrderCommand) OrderID() string {
	return c.orderID
}

func (c *RefreshOrderCommand) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}
