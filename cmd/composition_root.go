package cmd

import (
	"log"

	"instore/internal/adapters/out/orderservice"
	"instore/internal/adapters/out/postgres"
	"instore/internal/core/application/usecases/commands"
	"instore/internal/core/application/usecases/queries"
	"instore/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	orderClient ports.OrderClient
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	client, err := orderservice.NewClient(configs.OrderServiceURL)
	if err != nil {
		log.Fatalf("invalid order service URL: %v", err)
	}

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		orderClient: client,
	}
}

func (c *CompositionRoot) sessionUoWFactory() commands.SessionUoWFactory {
	return FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateBeginOrderCommandHandler() commands.BeginOrderCommandHandler {
	return commands.NewBeginOrderCommandHandler(c.sessionUoWFactory(), c.orderClient)
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	return commands.NewAddItemCommandHandler(c.sessionUoWFactory(), c.orderClient)
}

func (c *CompositionRoot) CreateUpdateItemCommandHandler() commands.UpdateItemCommandHandler {
	return commands.NewUpdateItemCommandHandler(c.sessionUoWFactory(), c.orderClient)
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	return commands.NewRemoveItemCommandHandler(c.sessionUoWFactory(), c.orderClient)
}

func (c *CompositionRoot) CreateAddToWishlistCommandHandler() commands.AddToWishlistCommandHandler {
	return commands.NewAddToWishlistCommandHandler(c.sessionUoWFactory(), c.orderClient)
}

func (c *CompositionRoot) CreateMoveItemCommandHandler() commands.MoveItemCommandHandler {
	return commands.NewMoveItemCommandHandler(c.sessionUoWFactory(), c.orderClient)
}

func (c *CompositionRoot) CreateCloseOrderCommandHandler() commands.CloseOrderCommandHandler {
	return commands.NewCloseOrderCommandHandler(c.sessionUoWFactory(), c.orderClient)
}

func (c *CompositionRoot) CreateCashierLoginCommandHandler() commands.CashierLoginCommandHandler {
	return commands.NewCashierLoginCommandHandler(c.orderClient)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.sessionUoWFactory(), c.orderClient)
}

func (c *CompositionRoot) CreateRefreshOrderCommandHandler() commands.RefreshOrderCommandHandler {
	return commands.NewRefreshOrderCommandHandler(c.sessionUoWFactory(), c.orderClient)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrackedOrdersQueryHandler() queries.GetTrackedOrdersQueryHandler {
	return queries.NewGetTrackedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchProductQueryHandler() queries.SearchProductQueryHandler {
	return queries.NewSearchProductQueryHandler(c.orderClient)
}

type FuncSessionUoWFactory func() commands.SessionUoW

func (f FuncSessionUoWFactory) Create() commands.SessionUoW {
	return f()
}
