package order

import (
	"errors"
	"fmt"
	"time"

	"instore/internal/core/domain/model/kernel"
	"instore/internal/pkg/errs"
	"instore/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewDraftOrder or RestoreOrder. This ensures all orders
	// are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewDraftOrder or RestoreOrder")

	// ErrCartIsEmpty is returned when closing an order with no cart items.
	ErrCartIsEmpty = errs.NewValueIsInvalidError("cart is empty")

	// ErrOrderIDIsNotAssigned is returned when closing an order before the
	// remote order service assigned it an id.
	ErrOrderIDIsNotAssigned = errs.NewValueIsRequiredError("order id")

	// ErrDuplicateItemID is returned when restoring an order whose
	// collections carry the same line id twice.
	ErrDuplicateItemID = errs.NewValueIsInvalidError("duplicate item id")
)

// Order is the aggregate root of a shopping session. It holds two item
// collections, the active cart and the parked wishlist, plus the lifecycle
// status and the money derived from the cart.
//
// Order follows these invariants:
//   - A line id appears in exactly one of the two collections, never both,
//     never duplicated within a collection.
//   - Subtotal is the sum of price × quantity over cart items only; wishlist
//     items never contribute to totals.
//   - Total = subtotal + tax; tax stays 0 until the remote service applies it.
//   - Status only advances through the lifecycle; the aggregate never invents
//     cashier-only transitions, it only reflects them via RestoreOrder and
//     AdoptStatus.
//
// Every mutation that names a missing line id is a no-op, never an error:
// the UI may race duplicate clicks and the engine favors idempotence over
// throwing.
type Order struct {
	// id is the order code assigned by the remote order service;
	// empty until the service creates the order
	id string

	// clientID identifies the shopper device that owns the draft (nil if unknown)
	clientID *kernel.UUID

	// status is the current lifecycle state
	status Status

	// items is the active cart
	items []*Item

	// wishlistItems is the parked set excluded from totals
	wishlistItems []*Item

	// subtotal is the sum of line totals over items, in minor currency units
	subtotal int64

	// tax is the server-applied tax, 0 until the service reports one
	tax int64

	// createdAt is when the shopping session began
	createdAt time.Time

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewDraftOrder creates the default state of a shopping session: an empty
// draft with no id, no items, and zero totals. The shopper's device owns
// this state exclusively until the order is closed.
func NewDraftOrder() *Order {
	return &Order{
		status:        Draft,
		items:         make([]*Item, 0),
		wishlistItems: make([]*Item, 0),
		createdAt:     time.Now(),
		guard:         guard.NewConstructorGuard(),
	}
}

// RestoreOrder reconstructs an Order from an authoritative source: the
// remote order service's wire representation or the local snapshot store.
// Unlike NewDraftOrder it accepts any valid lifecycle status and
// server-computed money, since the service is the system of record for
// price, stock, and tax.
//
// Parameters:
//   - id: order code (may be empty for a draft not yet registered)
//   - clientID: owning shopper device, nil if unknown
//   - status: lifecycle state as reported by the source
//   - items, wishlistItems: the two collections; nil is treated as empty
//   - subtotal, tax: money in minor currency units
//   - createdAt: session start time
//
// Returns an error if the status is invalid, any item fails validation, or
// a line id appears in more than one place.
func RestoreOrder(
	id string,
	clientID *kernel.UUID,
	status Status,
	items []*Item,
	wishlistItems []*Item,
	subtotal int64,
	tax int64,
	createdAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if items == nil {
		items = make([]*Item, 0)
	}
	if wishlistItems == nil {
		wishlistItems = make([]*Item, 0)
	}
	if err := validateDistinctIDs(items, wishlistItems); err != nil {
		return nil, err
	}

	order := &Order{
		id:            id,
		clientID:      clientID,
		status:        status,
		items:         items,
		wishlistItems: wishlistItems,
		subtotal:      subtotal,
		tax:           tax,
		createdAt:     createdAt,
		guard:         guard.NewConstructorGuard(),
	}
	return order, nil
}

// Validate ensures the Order was properly constructed and its collections
// still hold the single-collection invariant.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	if err := o.guard.Validate(ErrOrderIsNotConstructed); err != nil {
		return err
	}
	return validateDistinctIDs(o.items, o.wishlistItems)
}

// IsEqual compares two orders by their order code.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order code, empty until the service assigns one.
func (o *Order) ID() string {
	return o.id
}

// ClientID returns the owning shopper device id, nil if unknown.
func (o *Order) ClientID() *kernel.UUID {
	return o.clientID
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the active cart collection.
func (o *Order) Items() []*Item {
	return o.items
}

// WishlistItems returns the parked wishlist collection.
func (o *Order) WishlistItems() []*Item {
	return o.wishlistItems
}

// Subtotal returns the sum of price × quantity over cart items,
// in minor currency units.
func (o *Order) Subtotal() int64 {
	return o.subtotal
}

// Tax returns the server-applied tax in minor currency units.
func (o *Order) Tax() int64 {
	return o.tax
}

// Total returns subtotal + tax in minor currency units.
func (o *Order) Total() int64 {
	return o.subtotal + o.tax
}

// CreatedAt returns when the shopping session began.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AddItem adds a line to the cart. If a line with the same id already
// exists in the cart the quantities are merged, clamped to MaxQuantity;
// otherwise the line is appended. If the id is currently parked in the
// wishlist the call is a no-op, preserving the single-collection invariant.
// The subtotal is recomputed.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if indexOfItem(o.wishlistItems, item.ID()) >= 0 {
		return nil
	}

	if idx := indexOfItem(o.items, item.ID()); idx >= 0 {
		o.items[idx].AddQuantity(item.Quantity())
	} else {
		o.items = append(o.items, item)
	}

	o.recalculate()
	return nil
}

// RemoveItem deletes the cart line with the given id unconditionally and
// recomputes the subtotal. No-op if the id is absent.
func (o *Order) RemoveItem(itemID string) {
	if idx := indexOfItem(o.items, itemID); idx >= 0 {
		o.items = append(o.items[:idx], o.items[idx+1:]...)
		o.recalculate()
	}
}

// SetQuantity replaces the quantity of the cart line with the given id.
// Positive requests are clamped to [MinQuantity, MaxQuantity]. A request of
// zero or less is an implicit removal; a zero-quantity ghost line is never
// persisted. No-op if the id is absent. The subtotal is recomputed.
func (o *Order) SetQuantity(itemID string, qty int) {
	if qty < MinQuantity {
		o.RemoveItem(itemID)
		return
	}

	if idx := indexOfItem(o.items, itemID); idx >= 0 {
		o.items[idx].SetQuantity(qty)
		o.recalculate()
	}
}

// MoveToWishlist atomically moves a cart line to the wishlist, preserving
// its quantity and color, and recomputes the subtotal. No-op if the id is
// not in the cart.
func (o *Order) MoveToWishlist(itemID string) {
	idx := indexOfItem(o.items, itemID)
	if idx < 0 {
		return
	}

	item := o.items[idx].Clone()
	o.items = append(o.items[:idx], o.items[idx+1:]...)
	o.wishlistItems = append(o.wishlistItems, item)
	o.recalculate()
}

// MoveToCart is the symmetric inverse of MoveToWishlist: it moves a
// wishlist line back into the cart, preserving quantity and color. No-op if
// the id is not in the wishlist.
func (o *Order) MoveToCart(itemID string) {
	idx := indexOfItem(o.wishlistItems, itemID)
	if idx < 0 {
		return
	}

	item := o.wishlistItems[idx].Clone()
	o.wishlistItems = append(o.wishlistItems[:idx], o.wishlistItems[idx+1:]...)
	o.items = append(o.items, item)
	o.recalculate()
}

// Clear resets the order to a fresh empty draft, discarding both
// collections, the order code, and all totals. Used after a successful
// close handoff or on cancellation.
func (o *Order) Clear() {
	fresh := NewDraftOrder()
	*o = *fresh
}

// Close finalizes the cart and advances the status from Draft to Pending,
// handing the order to the checkout workflow.
//
// Preconditions (both are rejected before any network call):
//   - the service must have assigned an order id
//   - the cart must hold at least one item
//
// Returns:
//   - nil on success, with status now Pending
//   - ErrOrderIDIsNotAssigned, ErrCartIsEmpty, or a status transition error
func (o *Order) Close() error {
	if o.id == "" {
		return ErrOrderIDIsNotAssigned
	}
	if len(o.items) == 0 {
		return ErrCartIsEmpty
	}

	newStatus, err := o.status.Close()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ReplaceItems swaps the whole cart collection for the server's copy, not
// a merge. Any wishlist line sharing an id with a server cart line is
// dropped to keep the single-collection invariant. The subtotal is
// recomputed from the new lines.
//
// This is the reconciliation primitive for the add-to-cart flow, where the
// remote call carries a single product but the response is the
// authoritative full item list.
func (o *Order) ReplaceItems(items []*Item) error {
	if items == nil {
		items = make([]*Item, 0)
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	if err := validateDistinctIDs(items, nil); err != nil {
		return err
	}

	o.items = items
	kept := o.wishlistItems[:0]
	for _, parked := range o.wishlistItems {
		if indexOfItem(items, parked.ID()) < 0 {
			kept = append(kept, parked)
		}
	}
	o.wishlistItems = kept
	o.recalculate()
	return nil
}

// AdoptStatus replaces the local status with the one the remote service
// reported. The server's value always wins over any locally assumed status,
// even when it is ahead of what the last local action expected.
func (o *Order) AdoptStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// AdoptCharges replaces the server-owned money fields. The subtotal stays
// locally derived from the cart lines; only tax is adopted, keeping
// total = subtotal + tax by construction.
func (o *Order) AdoptCharges(tax int64) {
	o.tax = tax
}

// recalculate recomputes the subtotal from the cart lines. Wishlist items
// never contribute.
func (o *Order) recalculate() {
	var sum int64
	for _, item := range o.items {
		sum += item.LineTotal()
	}
	o.subtotal = sum
}

// indexOfItem returns the position of the line with the given id, -1 if absent.
func indexOfItem(items []*Item, itemID string) int {
	for i, item := range items {
		if item.ID() == itemID {
			return i
		}
	}
	return -1
}

// validateDistinctIDs checks that no line id appears twice across the two
// collections.
func validateDistinctIDs(items, wishlistItems []*Item) error {
	seen := make(map[string]struct{}, len(items)+len(wishlistItems))
	for _, item := range items {
		if _, ok := seen[item.ID()]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateItemID, item.ID())
		}
		seen[item.ID()] = struct{}{}
	}
	for _, item := range wishlistItems {
		if _, ok := seen[item.ID()]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateItemID, item.ID())
		}
		seen[item.ID()] = struct{}{}
	}
	return nil
}
