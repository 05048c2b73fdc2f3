package queries

import (
	"context"

	"instore/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTrackedOrdersQueryHandler retrieves all non-delivered order snapshots
// from the local store. Delivered orders are terminal and no longer worth
// re-pulling from the order service.
type GetTrackedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackedOrdersQueryHandler creates a handler for tracked order queries.
// Requires a GORM database connection for query execution.
func NewGetTrackedOrdersQueryHandler(db *gorm.DB) GetTrackedOrdersQueryHandler {
	return GetTrackedOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by order code for consistent
// output.
func (h GetTrackedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetTrackedOrdersQuery,
) ([]GetTrackedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetTrackedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			client_id,
			status,
			subtotal,
			tax
		FROM sessions
		WHERE status != ?
		ORDER BY order_id
	`, int(order.Delivered)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetTrackedOrdersQueryResponse
		var clientID uuid.UUID
		var status int

		err = rows.Scan(
			&resp.ID,
			&clientID,
			&status,
			&resp.Subtotal,
			&resp.Tax,
		)
		if err != nil {
			return nil, err
		}

		resp.ClientID = clientID.String()
		resp.Status = order.Status(status).String()
		resp.Total = resp.Subtotal + resp.Tax
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
