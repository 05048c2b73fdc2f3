package ports

import (
	"context"

	"instore/internal/core/domain/model/kernel"
	"instore/internal/core/domain/model/session"
)

// SessionRepository defines the persistence contract for shopping session
// aggregates. A session is the local snapshot of one shopper's order plus
// the sequence counters that gate reconciliation.
type SessionRepository interface {
	// Add persists a new session aggregate.
	// The session must be valid and not already exist in the repository.
	Add(ctx context.Context, sess *session.Session) error

	// Update persists changes to an existing session aggregate, including
	// its order snapshot and both item collections.
	Update(ctx context.Context, sess *session.Session) error

	// Get retrieves the session belonging to a shopper device.
	Get(ctx context.Context, clientID kernel.UUID) (*session.Session, error)

	// GetByOrderID retrieves the session holding the order with the given
	// order code. Used by cashier-side lookups where only the code is known.
	GetByOrderID(ctx context.Context, orderID string) (*session.Session, error)

	// GetAllTracked retrieves every session whose order has not reached its
	// terminal status. The refresh job re-pulls these from the order service.
	GetAllTracked(ctx context.Context) ([]*session.Session, error)
}
