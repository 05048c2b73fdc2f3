// Package http exposes the shopper and cashier REST surface on echo. Routes
// and payloads mirror the remote order service's wire contract, so the same
// client code can talk to either side.
package http

import (
	"net/http"
	"strings"
	"time"

	"instore/internal/core/application/usecases/commands"
	"instore/internal/core/application/usecases/queries"
	"instore/internal/core/domain/model/kernel"
	"instore/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

const timeFormat = time.RFC3339

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	BeginOrder    commands.BeginOrderCommandHandler
	AddItem       commands.AddItemCommandHandler
	UpdateItem    commands.UpdateItemCommandHandler
	RemoveItem    commands.RemoveItemCommandHandler
	AddToWishlist commands.AddToWishlistCommandHandler
	MoveItem      commands.MoveItemCommandHandler
	CloseOrder    commands.CloseOrderCommandHandler
	CashierLogin  commands.CashierLoginCommandHandler
	AdvanceOrder  commands.AdvanceOrderCommandHandler
	RefreshOrder  commands.RefreshOrderCommandHandler

	GetOrder         queries.GetOrderQueryHandler
	GetTrackedOrders queries.GetTrackedOrdersQueryHandler
	SearchProduct    queries.SearchProductQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/orders", s.CreateOrder)
	e.GET("/api/orders/:orderID", s.GetOrder)
	e.POST("/api/orders/:orderID/items", s.AddItem)
	e.PUT("/api/orders/:orderID/items/:itemID", s.UpdateItem)
	e.DELETE("/api/orders/:orderID/items/:itemID", s.RemoveItem)
	e.POST("/api/orders/:orderID/wishlist", s.AddToWishlist)
	e.POST("/api/orders/:orderID/move-item", s.MoveItem)
	e.POST("/api/orders/:orderID/close", s.CloseOrder)

	e.GET("/api/products/search", s.SearchProduct)

	e.POST("/api/cashier/login", s.CashierLogin)
	e.GET("/api/cashier/orders", s.GetCashierOrders)
	e.GET("/api/cashier/orders/:orderID", s.GetCashierOrder)
	e.POST("/api/cashier/orders/:orderID/verify", s.advanceStage(commands.StageVerify))
	e.POST("/api/cashier/orders/:orderID/mark-paid", s.advanceStage(commands.StageMarkPaid))
	e.POST("/api/cashier/orders/:orderID/ready", s.advanceStage(commands.StageMarkReady))
	e.POST("/api/cashier/orders/:orderID/deliver", s.advanceStage(commands.StageMarkDelivered))
}

// CreateOrder handles POST /api/orders - registers a draft order for a
// shopper device and starts tracking it.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body struct {
		ClientID string `json:"clientId"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	clientID, err := kernel.UUIDFromString(body.ClientID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewBeginOrderCommand(clientID)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := s.handlers.BeginOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID)
}

// GetOrder handles GET /api/orders/:orderID - returns the local snapshot.
func (s *Server) GetOrder(ctx echo.Context) error {
	return s.respondWithOrder(ctx, http.StatusOK, ctx.Param("orderID"))
}

// AddItem handles POST /api/orders/:orderID/items - puts a scanned product
// into the cart. The body carries the catalog details so the mutation can be
// applied locally before the order service confirms it.
func (s *Server) AddItem(ctx echo.Context) error {
	var body struct {
		ID       string `json:"id"`
		Code     string `json:"code"`
		Name     string `json:"name"`
		Price    int64  `json:"price"`
		Quantity int    `json:"quantity"`
		Color    string `json:"color"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	// The order service assigns the final line id; the product id stands in
	// for the optimistic local merge until the snapshot comes back.
	itemID := body.ID
	if itemID == "" {
		itemID = body.Code
	}

	orderID := ctx.Param("orderID")
	cmd, err := commands.NewAddItemCommand(orderID, itemID, body.Code,
		body.Name, body.Price, body.Quantity, body.Color)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.handlers.AddItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// UpdateItem handles PUT /api/orders/:orderID/items/:itemID - changes a
// line's quantity and color. Quantity zero removes the line.
func (s *Server) UpdateItem(ctx echo.Context) error {
	var body struct {
		Quantity int    `json:"quantity"`
		Color    string `json:"color"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	orderID := ctx.Param("orderID")
	cmd, err := commands.NewUpdateItemCommand(orderID, ctx.Param("itemID"),
		body.Quantity, body.Color)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.handlers.UpdateItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// RemoveItem handles DELETE /api/orders/:orderID/items/:itemID.
func (s *Server) RemoveItem(ctx echo.Context) error {
	orderID := ctx.Param("orderID")
	cmd, err := commands.NewRemoveItemCommand(orderID, ctx.Param("itemID"))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.handlers.RemoveItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// AddToWishlist handles POST /api/orders/:orderID/wishlist - parks a product
// on the wishlist.
func (s *Server) AddToWishlist(ctx echo.Context) error {
	var body struct {
		Code     string `json:"code"`
		Quantity int    `json:"quantity"`
		Color    string `json:"color"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	orderID := ctx.Param("orderID")
	cmd, err := commands.NewAddToWishlistCommand(orderID, body.Code,
		body.Quantity, body.Color)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.handlers.AddToWishlist.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// MoveItem handles POST /api/orders/:orderID/move-item - relocates a line
// between the cart and the wishlist.
func (s *Server) MoveItem(ctx echo.Context) error {
	var body struct {
		ItemID string `json:"itemId"`
		From   string `json:"from"`
		To     string `json:"to"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	orderID := ctx.Param("orderID")
	cmd, err := commands.NewMoveItemCommand(orderID, body.ItemID,
		order.Collection(body.From), order.Collection(body.To))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.handlers.MoveItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// CloseOrder handles POST /api/orders/:orderID/close - submits the cart for
// checkout.
func (s *Server) CloseOrder(ctx echo.Context) error {
	var body struct {
		PaymentMethod string `json:"paymentMethod"`
		Notes         string `json:"notes"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	orderID := ctx.Param("orderID")
	cmd, err := commands.NewCloseOrderCommand(orderID, body.PaymentMethod, body.Notes)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.handlers.CloseOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// SearchProduct handles GET /api/products/search?code= - catalog lookup.
func (s *Server) SearchProduct(ctx echo.Context) error {
	query, err := queries.NewSearchProductQuery(ctx.QueryParam("code"))
	if err != nil {
		return badRequest(ctx, err)
	}

	found, err := s.handlers.SearchProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, http.StatusOK, productResponse{
		ID:          found.ID,
		Code:        found.Code,
		Name:        found.Name,
		Price:       found.Price,
		Quantity:    found.StockQuantity,
		InStock:     found.InStock,
		Description: found.Description,
		Image:       found.Image,
		Colors:      found.Colors,
	})
}

// CashierLogin handles POST /api/cashier/login.
func (s *Server) CashierLogin(ctx echo.Context) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCashierLoginCommand(body.Email, body.Password)
	if err != nil {
		return badRequest(ctx, err)
	}

	session, err := s.handlers.CashierLogin.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, http.StatusOK, cashierSessionResponse{
		Token: session.Token,
		User: cashierUserResponse{
			ID:    session.User.ID,
			Email: session.User.Email,
			Name:  session.User.Name,
			Role:  session.User.Role,
		},
	})
}

// GetCashierOrders handles GET /api/cashier/orders - lists every tracked
// order for the cashier dashboard.
func (s *Server) GetCashierOrders(ctx echo.Context) error {
	query := queries.NewGetTrackedOrdersQuery()

	tracked, err := s.handlers.GetTrackedOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]trackedOrderResponse, len(tracked))
	for i, t := range tracked {
		response[i] = trackedOrderResponse{
			ID:       t.ID,
			ClientID: t.ClientID,
			Status:   t.Status,
			Subtotal: t.Subtotal,
			Tax:      t.Tax,
			Total:    t.Total,
		}
	}

	return ok(ctx, http.StatusOK, response)
}

// GetCashierOrder handles GET /api/cashier/orders/:orderID - re-pulls the
// authoritative snapshot before serving it, so the cashier always sees the
// latest state the service will admit to.
func (s *Server) GetCashierOrder(ctx echo.Context) error {
	orderID := ctx.Param("orderID")

	cmd, err := commands.NewRefreshOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.handlers.RefreshOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// advanceStage builds the handler for one cashier lifecycle endpoint.
func (s *Server) advanceStage(stage commands.Stage) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		token := bearerToken(ctx)
		orderID := ctx.Param("orderID")

		cmd, err := commands.NewAdvanceOrderCommand(token, orderID, stage)
		if err != nil {
			return badRequest(ctx, err)
		}

		if err := s.handlers.AdvanceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
			return fail(ctx, err)
		}

		return s.respondWithOrder(ctx, http.StatusOK, orderID)
	}
}

// respondWithOrder answers with the committed local snapshot of the order.
func (s *Server) respondWithOrder(ctx echo.Context, status int, orderID string) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	snapshot, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, status, toOrderResponse(snapshot))
}

func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	return strings.TrimPrefix(header, "Bearer ")
}
