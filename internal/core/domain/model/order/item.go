package order

import (
	"errors"

	"instore/internal/pkg/errs"
	"instore/internal/pkg/guard"
)

const (
	// MinQuantity is the smallest quantity a line item may carry. A line
	// driven below it is a removal, never a persisted zero-quantity line.
	MinQuantity = 1
	// MaxQuantity is the largest quantity accepted on any client-initiated
	// change; larger requests are clamped, not rejected.
	MaxQuantity = 9999
)

// Domain errors for line-item construction.
var (
	// ErrItemIDIsRequired is returned when creating an item without a line id.
	ErrItemIDIsRequired = errs.NewValueIsRequiredError("item id")
	// ErrItemCodeIsRequired is returned when creating an item without a SKU code.
	ErrItemCodeIsRequired = errs.NewValueIsRequiredError("item code")
	// ErrItemNameIsRequired is returned when creating an item without a display name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item represents a single line item on an order: a product reference with
// the quantity and unit price the shopper committed to, plus an optional
// variant (color).
//
// Identity semantics:
//   - id is the line-item identity, assigned by the remote order service.
//     It is unique within a single collection (cart or wishlist) at any
//     instant.
//   - code is the catalog SKU used for product lookup. Two line items may
//     share a code with different colors; their ids differ.
//
// Prices are integer minor currency units. Quantity is always within
// [MinQuantity, MaxQuantity]; client-initiated changes are clamped to that
// range rather than rejected.
type Item struct {
	// id is the line-item identity, unique within its collection
	id string
	// code is the catalog SKU
	code string
	// name is the product display name captured at add time
	name string
	// price is the unit price in minor currency units
	price int64
	// quantity is the committed amount, within [MinQuantity, MaxQuantity]
	quantity int
	// color is the optional product variant; empty means no variant
	color string
	// guard ensures the item was properly constructed
	guard guard.ConstructorGuard
}

// NewItem creates a new line item with validation.
//
// Parameters:
//   - id: line-item identity assigned by the order service (required)
//   - code: catalog SKU (required)
//   - name: product display name (required)
//   - price: unit price in minor units (must be >= 0)
//   - quantity: committed amount (must be >= MinQuantity; clamped to MaxQuantity)
//   - color: optional variant, empty for none
//
// Returns the item, or an aggregated validation error if any parameter is
// invalid.
func NewItem(id, code, name string, price int64, quantity int, color string) (*Item, error) {
	item := &Item{
		color: color,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setCode(code),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
// This prevents bypassing validation by directly instantiating the struct.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares two items by their line-item identity.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id == other.id
}

// ID returns the line-item identity.
func (i *Item) ID() string {
	return i.id
}

// Code returns the catalog SKU.
func (i *Item) Code() string {
	return i.code
}

// Name returns the product display name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the unit price in minor currency units.
func (i *Item) Price() int64 {
	return i.price
}

// Quantity returns the committed amount.
func (i *Item) Quantity() int {
	return i.quantity
}

// Color returns the optional product variant, empty if none.
func (i *Item) Color() string {
	return i.color
}

// LineTotal returns price multiplied by quantity in minor currency units.
func (i *Item) LineTotal() int64 {
	return i.price * int64(i.quantity)
}

// SetQuantity replaces the quantity with qty clamped to
// [MinQuantity, MaxQuantity]. Interpreting a zero request as a removal is
// the aggregate's job; the item itself never holds a quantity below
// MinQuantity.
func (i *Item) SetQuantity(qty int) {
	i.quantity = clampQuantity(qty)
}

// AddQuantity merges qty into the current quantity, clamping the sum to
// MaxQuantity. Used when an add request targets an id already in the cart.
func (i *Item) AddQuantity(qty int) {
	i.quantity = clampQuantity(i.quantity + qty)
}

// Clone returns a copy of the item. Moving a line between collections
// operates on clones so a held reference cannot alias two collections.
func (i *Item) Clone() *Item {
	clone := *i
	return &clone
}

func (i *Item) setID(id string) error {
	if id == "" {
		return ErrItemIDIsRequired
	}
	i.id = id
	return nil
}

func (i *Item) setCode(code string) error {
	if code == "" {
		return ErrItemCodeIsRequired
	}
	i.code = code
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < MinQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	i.quantity = clampQuantity(quantity)
	return nil
}

// clampQuantity forces qty into the inclusive [MinQuantity, MaxQuantity] range.
func clampQuantity(qty int) int {
	if qty < MinQuantity {
		return MinQuantity
	}
	if qty > MaxQuantity {
		return MaxQuantity
	}
	return qty
}
