package commands

import (
	"errors"
	"strings"

	"instore/internal/core/domain/model/order"
	"instore/internal/pkg/guard"
)

var (
	ErrMoveItemCommandIsNotConstructed = errors.New(
		"MoveItemCommand must be created via NewMoveItemCommand constructor",
	)
	ErrMoveHasNoEffect = errors.New("source and target collections are the same")
)

// MoveItemCommand represents a request to relocate a line between the cart
// and the wishlist. The move keeps the line's quantity and variant.
type MoveItemCommand struct { //nolint:recvcheck //using for validation
	orderID string
	itemID  string
	from    order.Collection
	to      order.Collection

	guard guard.ConstructorGuard
}

// NewMoveItemCommand creates a command to move a line between collections.
// Both collections must be valid and distinct.
func NewMoveItemCommand(orderID string, itemID string,
	from order.Collection, to order.Collection) (MoveItemCommand, error) {
	cmd := MoveItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setCollections(from, to),
	); err != nil {
		return MoveItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMoveItemCommandIsNotConstructed if validation fails.
func (c MoveItemCommand) Validate() error {
	return c.guard.Validate(ErrMoveItemCommandIsNotConstructed)
}

// OrderID returns the order code holding the line.
func (c MoveItemCommand) OrderID() string {
	return c.orderID
}

// ItemID returns the line to move.
func (c MoveItemCommand) ItemID() string {
	return c.itemID
}

// From returns the source collection.
func (c MoveItemCommand) From() order.Collection {
	return c.from
}

// To returns the target collection.
func (c MoveItemCommand) To() order.Collection {
	return c.to
}

func (c *MoveItemCommand) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *MoveItemCommand) setItemID(itemID string) error {
	if strings.TrimSpace(itemID) == "" {
		return ErrItemIDIsRequired
	}

	c.itemID = itemID
	return nil
}

func (c *MoveItemCommand) setCollections(from order.Collection, to order.Collection) error {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}
	if from == to {
		return ErrMoveHasNoEffect
	}

	c.from = from
	c.to = to
	return nil
}
