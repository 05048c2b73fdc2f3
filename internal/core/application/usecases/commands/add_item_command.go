package commands

import (
	"errors"
	"strings"

	"instore/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
	ErrOrderIDIsRequired  = errors.New("order id is required")
	ErrItemIDIsRequired   = errors.New("item id is required")
	ErrItemCodeIsRequired = errors.New("item code is required")
	ErrItemNameIsRequired = errors.New("item name is required")
	ErrPriceIsInvalid     = errors.New("price must not be negative")
	ErrQuantityIsInvalid  = errors.New("quantity must be greater than 0")
)

// AddItemCommand represents a request to put a scanned product into the cart.
// Carries the product details from the catalog lookup so the mutation can be
// applied locally before the order service confirms it.
//
// Example:
//
//	cmd, err := NewAddItemCommand("ORD-1001", p.ID(), p.Code(), p.Name(), p.Price(), 2, "black")
//	if err != nil {
//	    return fmt.Errorf("invalid item data: %w", err)
//	}
//
//	handler := NewAddItemCommandHandler(uowFactory, client)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add item: %w", err)
//	}
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID  string
	itemID   string
	code     string
	name     string
	price    int64
	quantity int
	color    string

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add a product to an order's cart.
// Validates identifiers, a non-negative price, and a positive quantity.
func NewAddItemCommand(orderID string, itemID string, code string, name string,
	price int64, quantity int, color string) (AddItemCommand, error) {
	cmd := AddItemCommand{
		color: color,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setCode(code),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddItemCommandIsNotConstructed if validation fails.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OrderID returns the order code the item is added to.
func (c AddItemCommand) OrderID() string {
	return c.orderID
}

// ItemID returns the line identity for the local optimistic merge.
func (c AddItemCommand) ItemID() string {
	return c.itemID
}

// Code returns the scannable product code.
func (c AddItemCommand) Code() string {
	return c.code
}

// Name returns the product's display name.
func (c AddItemCommand) Name() string {
	return c.name
}

// Price returns the unit price in minor currency units.
func (c AddItemCommand) Price() int64 {
	return c.price
}

// Quantity returns the number of units to add.
func (c AddItemCommand) Quantity() int {
	return c.quantity
}

// Color returns the selected variant, empty when not applicable.
func (c AddItemCommand) Color() string {
	return c.color
}

func (c *AddItemCommand) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *AddItemCommand) setItemID(itemID string) error {
	if strings.TrimSpace(itemID) == "" {
		return ErrItemIDIsRequired
	}

	c.itemID = itemID
	return nil
}

func (c *AddItemCommand) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return ErrItemCodeIsRequired
	}

	c.code = code
	return nil
}

func (c *AddItemCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddItemCommand) setPrice(price int64) error {
	if price < 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *AddItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
