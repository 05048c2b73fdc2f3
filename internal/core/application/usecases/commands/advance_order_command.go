package commands

import (
	"errors"
	"fmt"
	"strings"

	"instore/internal/pkg/errs"
	"instore/internal/pkg/guard"
)

// Stage names a cashier-side lifecycle advancement.
type Stage string

const (
	StageVerify        Stage = "verify"
	StageMarkPaid      Stage = "mark-paid"
	StageMarkReady     Stage = "mark-ready"
	StageMarkDelivered Stage = "mark-delivered"
)

// Validate checks that the stage is one of the known advancement steps.
func (s Stage) Validate() error {
	switch s {
	case StageVerify, StageMarkPaid, StageMarkReady, StageMarkDelivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("%s is not a valid advancement stage", string(s)))
	}
}

func (s Stage) String() string {
	return string(s)
}

var (
	ErrAdvanceOrderCommandIsNotConstructed = errors.New(
		"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
	)
	ErrTokenIsRequired = errors.New("token is required")
)

// AdvanceOrderCommand represents a cashier request to push an order one step
// through its lifecycle: verify, mark-paid, mark-ready, or mark-delivered.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	token   string
	orderID string
	stage   Stage

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order's status.
// Requires the cashier's bearer token, the order code, and a valid stage.
func NewAdvanceOrderCommand(token string, orderID string, stage Stage) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setToken(token),
		cmd.setOrderID(orderID),
		cmd.setStage(stage),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderCommandIsNotConstructed if validation fails.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// Token returns the cashier's bearer token.
func (c AdvanceOrderCommand) Token() string {
	return c.token
}

// OrderID returns the order code being advanced.
func (c AdvanceOrderCommand) OrderID() string {
	return c.orderID
}

// Stage returns the requested advancement step.
func (c AdvanceOrderCommand) Stage() Stage {
	return c.stage
}

func (c *AdvanceOrderCommand) setToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrTokenIsRequired
	}

	c.token = token
	return nil
}

func (c *AdvanceOrderCommand) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setStage(stage Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}

	c.stage = stage
	return nil
}
