package commands

import (
	"errors"
	"strings"

	"instore/internal/pkg/guard"
)

var ErrUpdateItemCommandIsNotConstructed = errors.New(
	"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
)

// UpdateItemCommand represents a request to change a cart line's quantity or
// variant. Quantity zero or less removes the line.
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	orderID  string
	itemID   string
	quantity int
	color    string

	guard guard.ConstructorGuard
}

// NewUpdateItemCommand creates a command to update a cart line. Any quantity
// is accepted; non-positive values are treated as removal by the handler.
func NewUpdateItemCommand(orderID string, itemID string, quantity int,
	color string) (UpdateItemCommand, error) {
	cmd := UpdateItemCommand{
		quantity: quantity,
		color:    color,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
	); err != nil {
		return UpdateItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateItemCommandIsNotConstructed if validation fails.
func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

// OrderID returns the order code holding the line.
func (c UpdateItemCommand) OrderID() string {
	return c.orderID
}

// ItemID returns the cart line to update.
func (c UpdateItemCommand) ItemID() string {
	return c.itemID
}

// Quantity returns the requested quantity; zero or less means remove.
func (c UpdateItemCommand) Quantity() int {
	return c.quantity
}

// Color returns the requested variant, empty to leave unchanged.
func (c UpdateItemCommand) Color() string {
	return c.color
}

func (c *UpdateItemCommand) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateItemCommand) setItemID(itemID string) error {
	if strings.TrimSpace(itemID) == "" {
		return ErrItemIDIsRequired
	}

	c.itemID = itemID
	return nil
}
