// Package orderservice implements the ports.OrderClient contract over the
// order service's REST API. The service wraps every response in a
// success/data/error envelope; this adapter unwraps it and maps failures
// onto the errs taxonomy so the application core never sees HTTP details.
package orderservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"instore/internal/core/domain/model/kernel"
	"instore/internal/core/domain/model/order"
	"instore/internal/core/domain/model/product"
	"instore/internal/core/ports"
	"instore/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

var _ ports.OrderClient = (*Client)(nil)

// Client talks to the remote order service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the order service at baseURL.
func NewClient(baseURL string) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// NewClientWithHTTPClient creates a client using a caller-supplied
// http.Client, e.g. one with custom timeouts or transports.
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) (*Client, error) {
	client, err := NewClient(baseURL)
	if err != nil {
		return nil, err
	}
	if httpClient == nil {
		return nil, errs.NewValueIsRequiredError("httpClient")
	}

	client.httpClient = httpClient
	return client, nil
}

// CreateOrder registers a new draft order owned by the shopper device.
func (c *Client) CreateOrder(ctx context.Context, clientID kernel.UUID) (*order.Order, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}

	body := struct {
		ClientID string `json:"clientId"`
	}{ClientID: clientID.String()}

	return c.orderCall(ctx, "create order", http.MethodPost, "/api/orders", "", body)
}

// GetOrder fetches the current authoritative snapshot of an order.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*order.Order, error) {
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("orderID")
	}

	path := "/api/orders/" + url.PathEscape(orderID)
	return c.orderCall(ctx, "get order", http.MethodGet, path, "", nil)
}

// SearchProduct looks up a catalog entry by its scannable code.
func (c *Client) SearchProduct(ctx context.Context, code string) (*product.Product, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	path := "/api/products/search?code=" + url.QueryEscape(code)
	data, err := c.call(ctx, "search product", http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}

	var dto productDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, errs.NewRemoteCallError("search product", err)
	}

	return toDomainProduct(dto)
}

// AddItem adds quantity units of a product to the cart. The service assigns
// the line id and returns the whole updated order.
func (c *Client) AddItem(ctx context.Context, orderID string, code string,
	quantity int, color string) (*order.Order, error) {
	body := struct {
		Code     string `json:"code"`
		Quantity int    `json:"quantity"`
		Color    string `json:"color,omitempty"`
	}{Code: code, Quantity: quantity, Color: color}

	path := "/api/orders/" + url.PathEscape(orderID) + "/items"
	return c.orderCall(ctx, "add item", http.MethodPost, path, "", body)
}

// UpdateItem changes a line's quantity and color.
func (c *Client) UpdateItem(ctx context.Context, orderID string, itemID string,
	quantity int, color string) (*order.Order, error) {
	body := struct {
		Quantity int    `json:"quantity"`
		Color    string `json:"color,omitempty"`
	}{Quantity: quantity, Color: color}

	path := "/api/orders/" + url.PathEscape(orderID) + "/items/" + url.PathEscape(itemID)
	return c.orderCall(ctx, "update item", http.MethodPut, path, "", body)
}

// RemoveItem deletes a cart line.
func (c *Client) RemoveItem(ctx context.Context, orderID string, itemID string) (*order.Order, error) {
	path := "/api/orders/" + url.PathEscape(orderID) + "/items/" + url.PathEscape(itemID)
	return c.orderCall(ctx, "remove item", http.MethodDelete, path, "", nil)
}

// AddToWishlist parks a product on the wishlist.
func (c *Client) AddToWishlist(ctx context.Context, orderID string, code string,
	quantity int, color string) (*order.Order, error) {
	body := struct {
		Code     string `json:"code"`
		Quantity int    `json:"quantity"`
		Color    string `json:"color,omitempty"`
	}{Code: code, Quantity: quantity, Color: color}

	path := "/api/orders/" + url.PathEscape(orderID) + "/wishlist"
	return c.orderCall(ctx, "add to wishlist", http.MethodPost, path, "", body)
}

// MoveItem relocates a line between the cart and the wishlist.
func (c *Client) MoveItem(ctx context.Context, orderID string, itemID string,
	from order.Collection, to order.Collection) (*order.Order, error) {
	body := struct {
		ItemID string `json:"itemId"`
		From   string `json:"from"`
		To     string `json:"to"`
	}{ItemID: itemID, From: from.String(), To: to.String()}

	path := "/api/orders/" + url.PathEscape(orderID) + "/move-item"
	return c.orderCall(ctx, "move item", http.MethodPost, path, "", body)
}

// CloseOrder submits the order for checkout.
func (c *Client) CloseOrder(ctx context.Context, orderID string,
	paymentMethod string, notes string) (*order.Order, error) {
	body := struct {
		PaymentMethod string `json:"paymentMethod,omitempty"`
		Notes         string `json:"notes,omitempty"`
	}{PaymentMethod: paymentMethod, Notes: notes}

	path := "/api/orders/" + url.PathEscape(orderID) + "/close"
	return c.orderCall(ctx, "close order", http.MethodPost, path, "", body)
}

// CashierLogin exchanges staff credentials for a bearer token.
func (c *Client) CashierLogin(ctx context.Context, email string, password string) (*ports.CashierSession, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	data, err := c.call(ctx, "cashier login", http.MethodPost, "/api/cashier/login", "", body)
	if err != nil {
		return nil, err
	}

	var dto cashierSessionDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, errs.NewRemoteCallError("cashier login", err)
	}

	return toCashierSession(dto), nil
}

// GetCashierOrder fetches an order snapshot on behalf of a cashier.
func (c *Client) GetCashierOrder(ctx context.Context, token string, orderID string) (*order.Order, error) {
	path := "/api/cashier/orders/" + url.PathEscape(orderID)
	return c.orderCall(ctx, "get cashier order", http.MethodGet, path, token, nil)
}

// VerifyOrder confirms the order contents at the register.
func (c *Client) VerifyOrder(ctx context.Context, token string, orderID string) (*order.Order, error) {
	path := "/api/cashier/orders/" + url.PathEscape(orderID) + "/verify"
	return c.orderCall(ctx, "verify order", http.MethodPost, path, token, struct{}{})
}

// MarkOrderPaid records that payment went through.
func (c *Client) MarkOrderPaid(ctx context.Context, token string, orderID string) (*order.Order, error) {
	path := "/api/cashier/orders/" + url.PathEscape(orderID) + "/mark-paid"
	return c.orderCall(ctx, "mark order paid", http.MethodPost, path, token, struct{}{})
}

// MarkOrderReady flags the order as picked and ready for handover.
func (c *Client) MarkOrderReady(ctx context.Context, token string, orderID string) (*order.Order, error) {
	path := "/api/cashier/orders/" + url.PathEscape(orderID) + "/ready"
	return c.orderCall(ctx, "mark order ready", http.MethodPost, path, token, struct{}{})
}

// MarkOrderDelivered completes the order lifecycle.
func (c *Client) MarkOrderDelivered(ctx context.Context, token string, orderID string) (*order.Order, error) {
	path := "/api/cashier/orders/" + url.PathEscape(orderID) + "/deliver"
	return c.orderCall(ctx, "mark order delivered", http.MethodPost, path, token, struct{}{})
}

// orderCall performs a call whose payload is an order snapshot.
func (c *Client) orderCall(ctx context.Context, op string, method string,
	path string, token string, body any) (*order.Order, error) {
	data, err := c.call(ctx, op, method, path, token, body)
	if err != nil {
		return nil, err
	}

	var dto orderDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, errs.NewRemoteCallError(op, err)
	}

	return toDomainOrder(dto)
}

// call performs one HTTP round trip and unwraps the response envelope.
// Failures map onto the errs taxonomy: 401 and 403 become AuthError, 404
// becomes ObjectNotFoundError, everything else becomes RemoteCallError.
func (c *Client) call(ctx context.Context, op string, method string,
	path string, token string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errs.NewRemoteCallError(op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errs.NewRemoteCallError(op, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewRemoteCallError(op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewRemoteCallError(op, err)
	}

	var envelope envelopeDTO
	decodeErr := json.Unmarshal(raw, &envelope)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, errs.NewAuthErrorWithCause(op, envelopeCause(envelope, decodeErr, resp.StatusCode))
	case resp.StatusCode == http.StatusNotFound:
		return nil, errs.NewObjectNotFoundErrorWithCause(op, path,
			envelopeCause(envelope, decodeErr, resp.StatusCode))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, errs.NewRemoteCallError(op, envelopeCause(envelope, decodeErr, resp.StatusCode))
	}

	if decodeErr != nil {
		return nil, errs.NewRemoteCallError(op, decodeErr)
	}

	if !envelope.Success {
		return nil, errs.NewRemoteCallError(op, envelopeCause(envelope, nil, resp.StatusCode))
	}

	return envelope.Data, nil
}

// envelopeCause extracts the most specific failure reason available: the
// envelope's error message when the body decoded, the bare status otherwise.
func envelopeCause(envelope envelopeDTO, decodeErr error, statusCode int) error {
	if decodeErr == nil && envelope.Error != nil && envelope.Error.Message != "" {
		if envelope.Error.Code != "" {
			return fmt.Errorf("%s (%s)", envelope.Error.Message, envelope.Error.Code)
		}
		return errors.New(envelope.Error.Message)
	}
	return fmt.Errorf("unexpected status %d", statusCode)
}
