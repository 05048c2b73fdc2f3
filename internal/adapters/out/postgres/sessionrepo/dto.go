// Package sessionrepo provides data transfer objects and mapping functions for
// session persistence. This package implements the repository pattern for the
// session aggregate, handling the conversion between domain entities and the
// local snapshot tables.
package sessionrepo

import (
	"time"

	"instore/internal/core/domain/model/kernel"
	"instore/internal/core/domain/model/order"
	"instore/internal/core/domain/model/session"

	"github.com/google/uuid"
)

// SessionDTO represents the database structure for persisting session
// aggregates. One row per tracked order, keyed by the order code the
// service assigned, with the shopper device indexed for lookups.
type SessionDTO struct {
	OrderID    string    `gorm:"type:varchar(64);primaryKey"`
	ClientID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     int       `gorm:"type:int;not null;index"`
	Subtotal   int64     `gorm:"type:bigint;not null"`
	Tax        int64     `gorm:"type:bigint;not null"`
	AppliedSeq uint64    `gorm:"type:bigint;not null"`
	NextSeq    uint64    `gorm:"type:bigint;not null"`
	CreatedAt  time.Time `gorm:"not null"`
	Items      []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for session entities.
// Overrides GORM's default naming convention to use "sessions".
func (SessionDTO) TableName() string {
	return "sessions"
}

// ItemDTO represents a single line of either collection. The collection
// column tells the cart and the wishlist apart; an item id appears at most
// once per order.
type ItemDTO struct {
	OrderID    string `gorm:"type:varchar(64);primaryKey"`
	ItemID     string `gorm:"type:varchar(64);primaryKey"`
	Collection string `gorm:"type:varchar(16);not null;index"`
	Code       string `gorm:"type:varchar(64);not null"`
	Name       string `gorm:"type:varchar(255);not null"`
	Price      int64  `gorm:"type:bigint;not null"`
	Quantity   int    `gorm:"type:int;not null"`
	Color      string `gorm:"type:varchar(64)"`
}

// TableName specifies the database table name for line items.
// Overrides GORM's default naming convention to use "session_items".
func (ItemDTO) TableName() string {
	return "session_items"
}

// fromDomain converts a session aggregate to its database representation.
// Both collections flatten into one item table distinguished by collection.
func fromDomain(sess *session.Session) SessionDTO {
	ord := sess.Order()
	items := make([]ItemDTO, 0, len(ord.Items())+len(ord.WishlistItems()))
	for _, item := range ord.Items() {
		items = append(items, itemFromDomain(ord.ID(), order.CollectionCart, item))
	}
	for _, item := range ord.WishlistItems() {
		items = append(items, itemFromDomain(ord.ID(), order.CollectionWishlist, item))
	}

	return SessionDTO{
		OrderID:    ord.ID(),
		ClientID:   sess.ClientID().Bytes(),
		Status:     int(ord.Status()),
		Subtotal:   ord.Subtotal(),
		Tax:        ord.Tax(),
		AppliedSeq: sess.AppliedSeq(),
		NextSeq:    sess.IssuedSeq(),
		CreatedAt:  ord.CreatedAt(),
		Items:      items,
	}
}

func itemFromDomain(orderID string, collection order.Collection, item *order.Item) ItemDTO {
	return ItemDTO{
		OrderID:    orderID,
		ItemID:     item.ID(),
		Collection: collection.String(),
		Code:       item.Code(),
		Name:       item.Name(),
		Price:      item.Price(),
		Quantity:   item.Quantity(),
		Color:      item.Color(),
	}
}

// toDomain converts a database DTO to a session aggregate.
// Reconstructs the order with both collections using RestoreOrder, then the
// session counters using RestoreSession.
func toDomain(dto SessionDTO) (*session.Session, error) {
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	wishlistItems := make([]*order.Item, 0)
	for _, itemDto := range dto.Items {
		item, itemErr := order.NewItem(itemDto.ItemID, itemDto.Code, itemDto.Name,
			itemDto.Price, itemDto.Quantity, itemDto.Color)
		if itemErr != nil {
			return nil, itemErr
		}

		if itemDto.Collection == order.CollectionWishlist.String() {
			wishlistItems = append(wishlistItems, item)
		} else {
			items = append(items, item)
		}
	}

	ord, err := order.RestoreOrder(dto.OrderID, &clientID, order.Status(dto.Status),
		items, wishlistItems, dto.Subtotal, dto.Tax, dto.CreatedAt)
	if err != nil {
		return nil, err
	}

	return session.RestoreSession(clientID, ord, dto.AppliedSeq, dto.NextSeq)
}
