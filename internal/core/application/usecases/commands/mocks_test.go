package commands_test

import (
	"context"
	"testing"
	"time"

	"instore/internal/core/application/usecases/commands"
	"instore/internal/core/domain/model/kernel"
	"instore/internal/core/domain/model/order"
	"instore/internal/core/domain/model/product"
	"instore/internal/core/domain/model/session"
	"instore/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, sess *session.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *MockSessionRepository) Update(ctx context.Context, sess *session.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, clientID kernel.UUID) (*session.Session, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionRepository) GetByOrderID(ctx context.Context, orderID string) (*session.Session, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionRepository) GetAllTracked(ctx context.Context) ([]*session.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*session.Session), args.Error(1)
}

type MockSessionUoW struct{ mock.Mock }

func (m *MockSessionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) SessionRepository() ports.SessionRepository {
	args := m.Called()
	return args.Get(0).(ports.SessionRepository)
}

type MockSessionUoWFactory struct{ mock.Mock }

func (m *MockSessionUoWFactory) Create() commands.SessionUoW {
	args := m.Called()
	return args.Get(0).(commands.SessionUoW)
}

type MockOrderClient struct{ mock.Mock }

func (m *MockOrderClient) orderResult(args mock.Arguments) (*order.Order, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderClient) CreateOrder(ctx context.Context, clientID kernel.UUID) (*order.Order, error) {
	return m.orderResult(m.Called(ctx, clientID))
}

func (m *MockOrderClient) GetOrder(ctx context.Context, orderID string) (*order.Order, error) {
	return m.orderResult(m.Called(ctx, orderID))
}

func (m *MockOrderClient) SearchProduct(ctx context.Context, code string) (*product.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockOrderClient) AddItem(ctx context.Context, orderID string, code string,
	quantity int, color string) (*order.Order, error) {
	return m.orderResult(m.Called(ctx, orderID, code, quantity, color))
}

func (m *MockOrderClient) UpdateItem(ctx context.Context, orderID string, itemID string,
	quantity int, color string) (*order.Order, error) {
	return m.orderResult(m.Called(ctx, orderID, itemID, quantity, color))
}

func (m *MockOrderClient) RemoveItem(ctx context.Context, orderID string, itemID string) (*order.Order, error) {
	return m.orderResult(m.Called(ctx, orderID, itemID))
}

func (m *MockOrderClient) AddToWishlist(ctx context.Context, orderID string, code string,
	quantity int, color string) (*order.Order, error) {
	return m.orderResult(m.Called(ctx, orderID, code, quantity, color))
}

func (m *MockOrderClient) MoveItem(ctx context.Context, orderID string, itemID string,
	from order.Collection, to order.Collection) (*order.Order, error) {
	return m.orderResult(m.Called(ctx, orderID, itemID, from, to))
}

func (m *MockOrderClient) CloseOrder(ctx context.Context, orderID string,
	paymentMethod string, notes string) (*order.Order, error) {
	return m.orderResult(m.Called(ctx, orderID, paymentMethod, notes))
}

func (m *MockOrderClient) CashierLogin(ctx context.Context, email string, password string) (*ports.CashierSession, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.CashierSession), args.Error(1)
}

func (m *MockOrderClient) GetCashierOrder(ctx context.Context, token string, orderID string) (*order.Order, error) {
	return m.orderResult(m.Called(ctx, token, orderID))
}

func (m *MockOrderClient) VerifyOrder(ctx context.Context, token string, orderID string) (*order.Order, error) {
	return m.orderResult(m.Called(ctx, token, orderID))
}

func (m *MockOrderClient) MarkOrderPaid(ctx context.Context, token string, orderID string) (*order.Order, error) {
	return m.orderResult(m.Called(ctx, token, orderID))
}

func (m *MockOrderClient) MarkOrderReady(ctx context.Context, token string, orderID string) (*order.Order, error) {
	return m.orderResult(m.Called(ctx, token, orderID))
}

func (m *MockOrderClient) MarkOrderDelivered(ctx context.Context, token string, orderID string) (*order.Order, error) {
	return m.orderResult(m.Called(ctx, token, orderID))
}

func restoredOrder(t *testing.T, id string, status order.Status,
	items []*order.Item, wishlist []*order.Item) *order.Order {
	t.Helper()
	var subtotal int64
	for _, item := range items {
		subtotal += item.LineTotal()
	}
	o, err := order.RestoreOrder(id, nil, status, items, wishlist, subtotal, 0, time.Now())
	require.NoError(t, err)
	return o
}

func cartItem(t *testing.T, id string, price int64, qty int) *order.Item {
	t.Helper()
	item, err := order.NewItem(id, "SKU-"+id, "Item "+id, price, qty, "")
	require.NoError(t, err)
	return item
}

func trackedSession(t *testing.T, ord *order.Order) *session.Session {
	t.Helper()
	sess, err := session.NewSession(kernel.NewUUID(), ord)
	require.NoError(t, err)
	return sess
}
