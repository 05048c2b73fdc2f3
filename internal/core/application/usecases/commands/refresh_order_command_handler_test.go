package commands_test

import (
	"testing"

	"instore/internal/core/application/usecases/commands"
	"instore/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRefreshOrderCommandHandler_Handle_AdoptsServerState(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRefreshOrderCommand("ORD-1")

	local := restoredOrder(t, "ORD-1", order.Pending,
		[]*order.Item{cartItem(t, "p-1", 100, 1)}, nil)
	sess := trackedSession(t, local)

	// the cashier confirmed and charged the order since the last pull
	snapshot := restoredOrder(t, "ORD-1", order.Paid,
		[]*order.Item{cartItem(t, "p-1", 100, 1)}, nil)

	client := new(MockOrderClient)
	repo := new(MockSessionRepository)
	uow := new(MockSessionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SessionRepository").Return(repo).Once(),
		repo.On("GetByOrderID", ctx, "ORD-1").Return(sess, nil).Once(),
		client.On("GetOrder", ctx, "ORD-1").Return(snapshot, nil).Once(),
		repo.On("Update", mock.Anything, sess).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefreshOrderCommandHandler(factory, client)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Same(t, snapshot, sess.Order())
	require.Equal(t, order.Paid, sess.Order().Status())
}

func TestRefreshOrderCommandHandler_Handle_StaleRefreshStillPersistsCounter(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRefreshOrderCommand("ORD-1")

	local := restoredOrder(t, "ORD-1", order.Pending,
		[]*order.Item{cartItem(t, "p-1", 100, 1)}, nil)
	sess := trackedSession(t, local)

	fresh := restoredOrder(t, "ORD-1", order.Paid,
		[]*order.Item{cartItem(t, "p-1", 100, 1)}, nil)
	snapshot := restoredOrder(t, "ORD-1", order.Draft, nil, nil)

	client := new(MockOrderClient)
	repo := new(MockSessionRepository)
	uow := new(MockSessionUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SessionRepository").Return(repo).Once()
	repo.On("GetByOrderID", ctx, "ORD-1").Return(sess, nil).Once()
	// while the refresh is in flight, a newer snapshot lands
	client.On("GetOrder", ctx, "ORD-1").
		Run(func(_ mock.Arguments) {
			seq := sess.NextSeq()
			_, err := sess.Apply(seq, fresh)
			require.NoError(t, err)
		}).Return(snapshot, nil).Once()
	repo.On("Update", mock.Anything, sess).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefreshOrderCommandHandler(factory, client)
	require.NoError(t, h.Handle(ctx, cmd))

	// the stale refresh result was discarded in favor of the newer snapshot
	require.Same(t, fresh, sess.Order())
	require.Equal(t, order.Paid, sess.Order().Status())
}
