package commands

import (
	"errors"
	"strings"

	"instore/internal/pkg/guard"
)

var ErrAddToWishlistCommandIsNotConstructed = errors.New(
	"AddToWishlistCommand must be created via NewAddToWishlistCommand constructor",
)

// AddToWishlistCommand represents a request to park a product on the
// wishlist without putting it in the cart.
type AddToWishlistCommand struct { //nolint:recvcheck //using for validation
	orderID  string
	code     string
	quantity int
	color    string

	guard guard.ConstructorGuard
}

// NewAddToWishlistCommand creates a command to park a product on the wishlist.
func NewAddToWishlistCommand(orderID string, code string, quantity int,
	color string) (AddToWishlistCommand, error) {
	cmd := AddToWishlistCommand{
		color: color,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCode(code),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddToWishlistCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddToWishlistCommandIsNotConstructed if validation fails.
func (c AddToWishlistCommand) Validate() error {
	return c.guard.Validate(ErrAddToWishlistCommandIsNotConstructed)
}

// OrderID returns the order code the product is parked under.
func (c AddToWishlistCommand) OrderID() string {
	return c.orderID
}

// Code returns the scannable product code.
func (c AddToWishlistCommand) Code() string {
	return c.code
}

// Quantity returns the number of units to park.
func (c AddToWishlistCommand) Quantity() int {
	return c.quantity
}

// Color returns the selected variant, empty when not applicable.
func (c AddToWishlistCommand) Color() string {
	return c.color
}

func (c *AddToWishlistCommand) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *AddToWishlistCommand) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return ErrItemCodeIsRequired
	}

	c.code = code
	return nil
}

func (c *AddToWishlistCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
