package orderservice

import (
	"encoding/json"
	"time"

	"instore/internal/core/domain/model/kernel"
	"instore/internal/core/domain/model/order"
	"instore/internal/core/domain/model/product"
	"instore/internal/core/ports"
)

// envelopeDTO is the response wrapper every order service endpoint uses.
// Data is decoded lazily because its shape depends on the endpoint.
type envelopeDTO struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data,omitempty"`
	Error   *envelopeErrorDTO `json:"error,omitempty"`
}

type envelopeErrorDTO struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// cartItemDTO maps a cart or wishlist line on the wire.
type cartItemDTO struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Color    string `json:"color,omitempty"`
}

// orderDTO maps the authoritative order snapshot on the wire.
type orderDTO struct {
	ID            string        `json:"id"`
	Items         []cartItemDTO `json:"items"`
	WishlistItems []cartItemDTO `json:"wishlistItems"`
	Total         int64         `json:"total"`
	Subtotal      int64         `json:"subtotal"`
	Tax           int64         `json:"tax"`
	Status        string        `json:"status"`
	CreatedAt     string        `json:"createdAt"`
	ClientID      string        `json:"clientId,omitempty"`
}

// productDTO maps a catalog entry on the wire. Quantity is the stock level,
// not a cart quantity.
type productDTO struct {
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

type cashierUserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type cashierSessionDTO struct {
	Token string         `json:"token"`
	User  cashierUserDTO `json:"user"`
}

// toDomainOrder converts a wire snapshot into the Order aggregate. The
// service is trusted for money and status; both collections are rebuilt
// line by line so invalid payloads are rejected here, at the boundary.
func toDomainOrder(dto orderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items, err := toDomainItems(dto.Items)
	if err != nil {
		return nil, err
	}

	wishlistItems, err := toDomainItems(dto.WishlistItems)
	if err != nil {
		return nil, err
	}

	var clientID *kernel.UUID
	if dto.ClientID != "" {
		id, err := kernel.UUIDFromString(dto.ClientID)
		if err != nil {
			return nil, err
		}
		clientID = &id
	}

	// The wire format carries RFC 3339 timestamps; a missing or malformed
	// value degrades to the zero time rather than failing the whole snapshot.
	createdAt, _ := time.Parse(time.RFC3339, dto.CreatedAt)

	return order.RestoreOrder(
		dto.ID,
		clientID,
		status,
		items,
		wishlistItems,
		dto.Subtotal,
		dto.Tax,
		createdAt,
	)
}

func toDomainItems(dtos []cartItemDTO) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := order.NewItem(dto.ID, dto.Code, dto.Name, dto.Price, dto.Quantity, dto.Color)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func toDomainProduct(dto productDTO) (*product.Product, error) {
	return product.NewProduct(dto.ID, dto.Code, dto.Name, dto.Price,
		dto.Quantity, dto.Description, dto.Image, dto.Colors)
}

func toCashierSession(dto cashierSessionDTO) *ports.CashierSession {
	return &ports.CashierSession{
		Token: dto.Token,
		User: ports.CashierUser{
			ID:    dto.User.ID,
			Email: dto.User.Email,
			Name:  dto.User.Name,
			Role:  dto.User.Role,
		},
	}
}
