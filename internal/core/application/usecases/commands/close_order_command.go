package commands

import (
	"errors"
	"strings"

	"instore/internal/pkg/guard"
)

var ErrCloseOrderCommandIsNotConstructed = errors.New(
	"CloseOrderCommand must be created via NewCloseOrderCommand constructor",
)

// CloseOrderCommand represents a request to submit the cart for checkout.
// Payment method and notes travel to the order service unchanged; the core
// only records that checkout was requested.
type CloseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       string
	paymentMethod string
	notes         string

	guard guard.ConstructorGuard
}

// NewCloseOrderCommand creates a command to close an order for checkout.
// Payment method and notes are optional.
func NewCloseOrderCommand(orderID string, paymentMethod string, notes string) (CloseOrderCommand, error) {
	cmd := CloseOrderCommand{
		paymentMethod: paymentMethod,
		notes:         notes,
		guard:         guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CloseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCloseOrderCommandIsNotConstructed if validation fails.
func (c CloseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCloseOrderCommandIsNotConstructed)
}

// OrderID returns the order code being closed.
func (c CloseOrderCommand) OrderID() string {
	return c.orderID
}

// PaymentMethod returns the shopper's declared payment method, may be empty.
func (c CloseOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// Notes returns free-form checkout notes, may be empty.
func (c CloseOrderCommand) Notes() string {
	return c.notes
}

func (c *CloseOrderCommand) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}
