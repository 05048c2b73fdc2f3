package queries

import (
	"context"

	"instore/internal/core/domain/model/product"
)

// ProductFinder is the slice of the order service client the catalog lookup
// needs.
type ProductFinder interface {
	SearchProduct(ctx context.Context, code string) (*product.Product, error)
}

// SearchProductQueryHandler resolves a scanned code against the remote
// catalog. Unknown codes surface as an ObjectNotFoundError from the client.
type SearchProductQueryHandler struct {
	finder ProductFinder
}

// NewSearchProductQueryHandler creates a handler for catalog lookups.
func NewSearchProductQueryHandler(finder ProductFinder) SearchProductQueryHandler {
	return SearchProductQueryHandler{finder: finder}
}

// Handle executes the lookup and flattens the product into the read model.
func (h SearchProductQueryHandler) Handle(
	ctx context.Context,
	query SearchProductQuery,
) (SearchProductQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SearchProductQueryResponse{}, err
	}

	p, err := h.finder.SearchProduct(ctx, query.Code())
	if err != nil {
		return SearchProductQueryResponse{}, err
	}

	return SearchProductQueryResponse{
		ID:            p.ID(),
		Code:          p.Code(),
		Name:          p.Name(),
		Price:         p.Price(),
		StockQuantity: p.StockQuantity(),
		InStock:       p.InStock(),
		Description:   p.Description(),
		Image:         p.Image(),
		Colors:        p.Colors(),
	}, nil
}
