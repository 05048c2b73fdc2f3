package commands

import (
	"errors"

	"instore/internal/core/domain/model/kernel"
	"instore/internal/pkg/guard"
)

var ErrBeginOrderCommandIsNotConstructed = errors.New(
	"BeginOrderCommand must be created via NewBeginOrderCommand constructor",
)

// BeginOrderCommand represents a request to start a new shopping session.
// The order service registers a draft order for the shopper device and the
// handler creates a local session around the returned snapshot.
//
// Example:
//
//	clientID := kernel.NewUUID()
//	cmd, err := NewBeginOrderCommand(clientID)
//	if err != nil {
//	    return fmt.Errorf("invalid session data: %w", err)
//	}
//
//	handler := NewBeginOrderCommandHandler(uowFactory, client)
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to begin order: %w", err)
//	}
//	fmt.Printf("Order %s opened for client %s", orderID, clientID)
type BeginOrderCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewBeginOrderCommand creates a command to open a shopping session for a
// shopper device. Returns an error if the client id is invalid.
func NewBeginOrderCommand(clientID kernel.UUID) (BeginOrderCommand, error) {
	cmd := BeginOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setClientID(clientID); err != nil {
		return BeginOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBeginOrderCommandIsNotConstructed if validation fails.
func (c BeginOrderCommand) Validate() error {
	return c.guard.Validate(ErrBeginOrderCommandIsNotConstructed)
}

// ClientID returns the shopper device identifier.
func (c BeginOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c *BeginOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}
