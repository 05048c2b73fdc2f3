package queries

import (
	"errors"
	"strings"

	"instore/internal/pkg/guard"
)

var (
	ErrSearchProductQueryIsNotConstructed = errors.New(
		"SearchProductQuery must be created via NewSearchProductQuery constructor",
	)
	ErrProductCodeIsRequired = errors.New("product code is required")
)

// SearchProductQuery looks up a catalog entry by its scannable code. This is
// a pass-through to the order service's catalog; nothing is cached locally.
type SearchProductQuery struct { //nolint:recvcheck //using for validation
	code string

	guard guard.ConstructorGuard
}

// NewSearchProductQuery creates a catalog lookup query.
func NewSearchProductQuery(code string) (SearchProductQuery, error) {
	query := SearchProductQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCode(code); err != nil {
		return SearchProductQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrSearchProductQueryIsNotConstructed if validation fails.
func (q SearchProductQuery) Validate() error {
	return q.guard.Validate(ErrSearchProductQueryIsNotConstructed)
}

// Code returns the scannable product code.
func (q SearchProductQuery) Code() string {
	return q.code
}

func (q *SearchProductQuery) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return ErrProductCodeIsRequired
	}

	q.code = code
	return nil
}

// SearchProductQueryResponse represents a catalog entry in the read model.
type SearchProductQueryResponse struct {
	ID            string
	Code          string
	Name          string
	Price         int64
	StockQuantity int
	InStock       bool
	Description   string
	Image         string
	Colors        []string
}
