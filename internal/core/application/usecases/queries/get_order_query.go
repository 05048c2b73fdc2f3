// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read the local snapshot store directly and return flat read models;
// they never touch the remote order service except for catalog pass-through.
package queries

import (
	"errors"
	"strings"
	"time"

	"instore/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
)

// GetOrderQuery retrieves one order snapshot with both collections by its
// order code.
//
// Example:
//
//	query, err := NewGetOrderQuery("ORD-1001")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	snapshot, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve order: %w", err)
//	}
//	fmt.Printf("Order %s: %d items, total %d\n",
//	    snapshot.ID, len(snapshot.Items), snapshot.Total)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order snapshot.
func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order code being looked up.
func (q GetOrderQuery) OrderID() string {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return ErrOrderIDIsRequired
	}

	q.orderID = orderID
	return nil
}

// OrderItemResponse represents one line of a collection in the read model.
type OrderItemResponse struct {
	ID       string
	Code     string
	Name     string
	Price    int64
	Quantity int
	Color    string
}

// GetOrderQueryResponse represents the order snapshot read model: identity,
// lifecycle status, both collections, and the money fields. Total is
// Subtotal plus Tax, matching the aggregate's arithmetic.
type GetOrderQueryResponse struct {
	ID            string
	ClientID      string
	Status        string
	Items         []OrderItemResponse
	WishlistItems []OrderItemResponse
	Subtotal      int64
	Tax           int64
	Total         int64
	CreatedAt     time.Time
}
