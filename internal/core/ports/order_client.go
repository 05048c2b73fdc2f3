// Package ports defines the contracts between the application core and
// infrastructure: the remote order service client, session persistence,
// and the unit of work. Adapters implement these interfaces, which keeps
// the domain and use cases free of transport and storage concerns.
package ports

import (
	"context"

	"instore/internal/core/domain/model/kernel"
	"instore/internal/core/domain/model/order"
	"instore/internal/core/domain/model/product"
)

// CashierUser describes the authenticated staff member behind a cashier
// session.
type CashierUser struct {
	ID    string
	Email string
	Name  string
	Role  string
}

// CashierSession is the credential returned by CashierLogin. The token is
// sent as a bearer token on every cashier operation.
type CashierSession struct {
	Token string
	User  CashierUser
}

// OrderClient is the remote order service. The service is the system of
// record: every mutating call returns the full authoritative order snapshot,
// which callers reconcile into local session state. Implementations map
// transport and envelope failures onto the errs taxonomy (AuthError for
// rejected credentials, ObjectNotFoundError for unknown ids, RemoteCallError
// for everything else) and never partially apply a call.
type OrderClient interface {
	// CreateOrder registers a new draft order for the given shopper device.
	CreateOrder(ctx context.Context, clientID kernel.UUID) (*order.Order, error)

	// GetOrder fetches the current snapshot of an order by its code.
	GetOrder(ctx context.Context, orderID string) (*order.Order, error)

	// SearchProduct looks up a catalog entry by its scannable code.
	SearchProduct(ctx context.Context, code string) (*product.Product, error)

	// AddItem adds quantity units of a product to the cart. The service
	// assigns the line id and merges with an existing line for the same
	// product and color.
	AddItem(ctx context.Context, orderID string, code string, quantity int,
		color string) (*order.Order, error)

	// UpdateItem changes a line's quantity and color. Quantity zero removes
	// the line on the service side.
	UpdateItem(ctx context.Context, orderID string, itemID string,
		quantity int, color string) (*order.Order, error)

	// RemoveItem deletes a line from the cart.
	RemoveItem(ctx context.Context, orderID string, itemID string) (*order.Order, error)

	// AddToWishlist parks a product on the wishlist without adding it to
	// the cart.
	AddToWishlist(ctx context.Context, orderID string, code string,
		quantity int, color string) (*order.Order, error)

	// MoveItem relocates a line between the cart and the wishlist.
	MoveItem(ctx context.Context, orderID string, itemID string,
		from order.Collection, to order.Collection) (*order.Order, error)

	// CloseOrder submits the cart for checkout, moving the order out of
	// its draft state.
	CloseOrder(ctx context.Context, orderID string, paymentMethod string,
		notes string) (*order.Order, error)

	// CashierLogin exchanges staff credentials for a bearer token.
	CashierLogin(ctx context.Context, email string, password string) (*CashierSession, error)

	// GetCashierOrder fetches an order snapshot on behalf of a cashier.
	GetCashierOrder(ctx context.Context, token string, orderID string) (*order.Order, error)

	// VerifyOrder confirms the order contents at the register.
	VerifyOrder(ctx context.Context, token string, orderID string) (*order.Order, error)

	// MarkOrderPaid records that payment went through.
	MarkOrderPaid(ctx context.Context, token string, orderID string) (*order.Order, error)

	// MarkOrderReady flags the order as picked and ready for handover.
	MarkOrderReady(ctx context.Context, token string, orderID string) (*order.Order, error)

	// MarkOrderDelivered completes the order lifecycle.
	MarkOrderDelivered(ctx context.Context, token string, orderID string) (*order.Order, error)
}
