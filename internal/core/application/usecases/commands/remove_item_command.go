package commands

import (
	"errors"
	"strings"

	"instore/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand represents a request to delete a line from the cart.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	orderID string
	itemID  string

	guard guard.ConstructorGuard
}

// NewRemoveItemCommand creates a command to remove a cart line.
func NewRemoveItemCommand(orderID string, itemID string) (RemoveItemCommand, error) {
	cmd := RemoveItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
	); err != nil {
		return RemoveItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveItemCommandIsNotConstructed if validation fails.
func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

// OrderID returns the order code holding the line.
func (c RemoveItemCommand) OrderID() string {
	return c.orderID
}

// ItemID returns the cart line to remove.
func (c RemoveItemCommand) ItemID() string {
	return c.itemID
}

func (c *RemoveItemCommand) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveItemCommand) setItemID(itemID string) error {
	if strings.TrimSpace(itemID) == "" {
		return ErrItemIDIsRequired
	}

	c.itemID = itemID
	return nil
}
