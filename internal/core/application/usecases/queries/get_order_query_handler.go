package queries

import (
	"context"
	"database/sql"
	"errors"

	"instore/internal/core/domain/model/order"
	"instore/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order snapshot from the local
// store. Uses direct SQL for optimal read performance in the CQRS pattern;
// the aggregate is never rehydrated for reads.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order snapshot queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no session
// tracks the given order code.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse
	var clientID uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			client_id,
			status,
			subtotal,
			tax,
			created_at
		FROM sessions
		WHERE order_id = ?
	`, query.OrderID()).Row()

	err := row.Scan(
		&response.ID,
		&clientID,
		&status,
		&response.Subtotal,
		&response.Tax,
		&response.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	response.ClientID = clientID.String()
	response.Status = order.Status(status).String()
	response.Total = response.Subtotal + response.Tax
	response.Items = make([]OrderItemResponse, 0)
	response.WishlistItems = make([]OrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			item_id,
			collection,
			code,
			name,
			price,
			quantity,
			color
		FROM session_items
		WHERE order_id = ?
		ORDER BY item_id
	`, query.OrderID()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var collection string

		err = rows.Scan(
			&item.ID,
			&collection,
			&item.Code,
			&item.Name,
			&item.Price,
			&item.Quantity,
			&item.Color,
		)
		if err != nil {
			return GetOrderQueryResponse{}, err
		}

		if collection == order.CollectionWishlist.String() {
			response.WishlistItems = append(response.WishlistItems, item)
		} else {
			response.Items = append(response.Items, item)
		}
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}
