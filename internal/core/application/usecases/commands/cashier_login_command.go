package commands

import (
	"errors"
	"strings"

	"instore/internal/pkg/guard"
)

var (
	ErrCashierLoginCommandIsNotConstructed = errors.New(
		"CashierLoginCommand must be created via NewCashierLoginCommand constructor",
	)
	ErrEmailIsRequired    = errors.New("email is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// CashierLoginCommand represents a staff authentication request. The order
// service owns the credential check; this command only carries the inputs.
type CashierLoginCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewCashierLoginCommand creates a command to authenticate a cashier.
func NewCashierLoginCommand(email string, password string) (CashierLoginCommand, error) {
	cmd := CashierLoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return CashierLoginCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCashierLoginCommandIsNotConstructed if validation fails.
func (c CashierLoginCommand) Validate() error {
	return c.guard.Validate(ErrCashierLoginCommandIsNotConstructed)
}

// Email returns the staff member's login email.
func (c CashierLoginCommand) Email() string {
	return c.email
}

// Password returns the submitted password.
func (c CashierLoginCommand) Password() string {
	return c.password
}

func (c *CashierLoginCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *CashierLoginCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
