package http

import (
	"errors"
	"net/http"

	"instore/internal/core/application/usecases/queries"
	"instore/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// apiResponse is the envelope every endpoint answers with, mirroring the
// order service's own wire contract so clients handle both the same way.
type apiResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// itemResponse mirrors the CartItem wire shape.
type itemResponse struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Color    string `json:"color,omitempty"`
}

// orderResponse mirrors the Order wire shape.
type orderResponse struct {
	ID            string         `json:"id"`
	Items         []itemResponse `json:"items"`
	WishlistItems []itemResponse `json:"wishlistItems"`
	Total         int64          `json:"total"`
	Subtotal      int64          `json:"subtotal"`
	Tax           int64          `json:"tax"`
	Status        string         `json:"status"`
	CreatedAt     string         `json:"createdAt"`
	ClientID      string         `json:"clientId,omitempty"`
}

type trackedOrderResponse struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId,omitempty"`
	Status   string `json:"status"`
	Subtotal int64  `json:"subtotal"`
	Tax      int64  `json:"tax"`
	Total    int64  `json:"total"`
}

type productResponse struct {
	ID          string   `json:"id"`
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Quantity    int      `json:"quantity"`
	InStock     bool     `json:"inStock"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Colors      []string `json:"colors,omitempty"`
}

type cashierUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type cashierSessionResponse struct {
	Token string              `json:"token"`
	User  cashierUserResponse `json:"user"`
}

func toItemResponses(items []queries.OrderItemResponse) []itemResponse {
	out := make([]itemResponse, len(items))
	for i, item := range items {
		out[i] = itemResponse{
			ID:       item.ID,
			Code:     item.Code,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Color:    item.Color,
		}
	}
	return out
}

func toOrderResponse(snapshot queries.GetOrderQueryResponse) orderResponse {
	return orderResponse{
		ID:            snapshot.ID,
		Items:         toItemResponses(snapshot.Items),
		WishlistItems: toItemResponses(snapshot.WishlistItems),
		Total:         snapshot.Total,
		Subtotal:      snapshot.Subtotal,
		Tax:           snapshot.Tax,
		Status:        snapshot.Status,
		CreatedAt:     snapshot.CreatedAt.UTC().Format(timeFormat),
		ClientID:      snapshot.ClientID,
	}
}

// ok writes a success envelope.
func ok(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, apiResponse{Success: true, Data: data})
}

// fail classifies err against the errs taxonomy and writes a failure
// envelope with the matching HTTP status.
func fail(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrAuthFailed):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrRemoteCall):
		status = http.StatusBadGateway
	}

	return ctx.JSON(status, apiResponse{
		Success: false,
		Error:   &apiError{Message: err.Error()},
	})
}

// badRequest writes a failure envelope for malformed or rejected input.
func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, apiResponse{
		Success: false,
		Error:   &apiError{Message: err.Error()},
	})
}
