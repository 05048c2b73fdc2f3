package order

import (
	"fmt"

	"instore/internal/pkg/errs"
)

// Collection identifies which of the order's two item collections a line
// item lives in. The wire names match the remote order service's move-item
// contract.
type Collection string

const (
	// CollectionCart is the active, purchasable set of line items.
	CollectionCart Collection = "items"
	// CollectionWishlist is the parked set excluded from totals.
	CollectionWishlist Collection = "wishlistItems"
)

// Validate checks that the collection is one of the two known names.
func (c Collection) Validate() error {
	if c != CollectionCart && c != CollectionWishlist {
		return errs.NewValueIsInvalidErrorWithCause(
			"collection is invalid",
			fmt.Errorf("%q is not a valid collection", string(c)),
		)
	}
	return nil
}

// String returns the wire name of the collection.
func (c Collection) String() string {
	return string(c)
}
