package queries

import (
	"errors"

	"instore/internal/pkg/guard"
)

var ErrGetTrackedOrdersQueryIsNotConstructed = errors.New(
	"GetTrackedOrdersQuery must be created via NewGetTrackedOrdersQuery constructor",
)

// GetTrackedOrdersQuery retrieves every order snapshot that has not reached
// its terminal status. Feeds the refresh job and the cashier dashboard.
type GetTrackedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTrackedOrdersQuery creates a query for all non-delivered orders.
// This is a parameterless query.
func NewGetTrackedOrdersQuery() GetTrackedOrdersQuery {
	return GetTrackedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTrackedOrdersQueryIsNotConstructed if validation fails.
func (q GetTrackedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackedOrdersQueryIsNotConstructed)
}

// GetTrackedOrdersQueryResponse represents one tracked order in the read
// model: identity, status, and money, without the line detail.
type GetTrackedOrdersQueryResponse struct {
	ID       string
	ClientID string
	Status   string
	Subtotal int64
	Tax      int64
	Total    int64
}
