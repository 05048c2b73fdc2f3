package queries_test

import (
	"context"
	"errors"
	"testing"

	"instore/internal/core/application/usecases/queries"
	"instore/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductFinder struct {
	mock.Mock
}

func (m *MockProductFinder) SearchProduct(
	ctx context.Context,
	code string,
) (*product.Product, error) {
	args := m.Called(ctx, code)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*product.Product), args.Error(1)
}

func TestSearchProductQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	found, err := product.NewProduct(
		"prod-1", "SKU-100", "Canvas Tote", 2500, 4,
		"Heavyweight cotton tote", "https://cdn.example/tote.jpg",
		[]string{"black", "sand"},
	)
	require.NoError(t, err)

	finder := &MockProductFinder{}
	finder.On("SearchProduct", ctx, "SKU-100").Return(found, nil)

	handler := queries.NewSearchProductQueryHandler(finder)

	query, err := queries.NewSearchProductQuery("SKU-100")
	require.NoError(t, err)

	response, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, "prod-1", response.ID)
	assert.Equal(t, "SKU-100", response.Code)
	assert.Equal(t, "Canvas Tote", response.Name)
	assert.Equal(t, int64(2500), response.Price)
	assert.Equal(t, 4, response.StockQuantity)
	assert.True(t, response.InStock)
	assert.Equal(t, "Heavyweight cotton tote", response.Description)
	assert.Equal(t, "https://cdn.example/tote.jpg", response.Image)
	assert.Equal(t, []string{"black", "sand"}, response.Colors)

	finder.AssertExpectations(t)
}

func TestSearchProductQueryHandler_Handle_FinderError(t *testing.T) {
	ctx := context.Background()
	finderErr := errors.New("catalog unavailable")

	finder := &MockProductFinder{}
	finder.On("SearchProduct", ctx, "SKU-404").Return(nil, finderErr)

	handler := queries.NewSearchProductQueryHandler(finder)

	query, err := queries.NewSearchProductQuery("SKU-404")
	require.NoError(t, err)

	_, err = handler.Handle(ctx, query)
	require.ErrorIs(t, err, finderErr)

	finder.AssertExpectations(t)
}

func TestSearchProductQueryHandler_Handle_InvalidQuery(t *testing.T) {
	finder := &MockProductFinder{}
	handler := queries.NewSearchProductQueryHandler(finder)

	_, err := handler.Handle(context.Background(), queries.SearchProductQuery{})
	require.ErrorIs(t, err, queries.ErrSearchProductQueryIsNotConstructed)

	finder.AssertNotCalled(t, "SearchProduct", mock.Anything, mock.Anything)
}
