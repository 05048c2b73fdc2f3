package order_test

import (
	"testing"
	"time"

	"instore/internal/core/domain/model/kernel"
	"instore/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, id, code string, price int64, qty int, color string) *order.Item {
	t.Helper()
	item, err := order.NewItem(id, code, "Product "+code, price, qty, color)
	require.NoError(t, err)
	return item
}

func restoredDraft(t *testing.T, id string) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, nil, order.Draft, nil, nil, 0, 0, time.Now())
	require.NoError(t, err)
	return o
}

func TestNewDraftOrder(t *testing.T) {
	o := order.NewDraftOrder()

	require.NoError(t, o.Validate())
	assert.Empty(t, o.ID())
	assert.Equal(t, order.Draft, o.Status())
	assert.Empty(t, o.Items())
	assert.Empty(t, o.WishlistItems())
	assert.Equal(t, int64(0), o.Subtotal())
	assert.Equal(t, int64(0), o.Tax())
	assert.Equal(t, int64(0), o.Total())
	assert.Nil(t, o.ClientID())
	assert.WithinDuration(t, time.Now(), o.CreatedAt(), time.Second)
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with collections and money", func(t *testing.T) {
		clientID := kernel.NewUUID()
		createdAt := time.Now().Add(-time.Hour)
		items := []*order.Item{mustItem(t, "1", "SKU1", 100, 2, "")}
		wishlist := []*order.Item{mustItem(t, "2", "SKU2", 50, 1, "red")}

		o, err := order.RestoreOrder("ORD-1", &clientID, order.Pending, items, wishlist, 200, 42, createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "ORD-1", o.ID())
		assert.Equal(t, order.Pending, o.Status())
		assert.Len(t, o.Items(), 1)
		assert.Len(t, o.WishlistItems(), 1)
		assert.Equal(t, int64(200), o.Subtotal())
		assert.Equal(t, int64(42), o.Tax())
		assert.Equal(t, int64(242), o.Total())
		assert.True(t, o.ClientID().IsEqual(clientID))
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder("ORD-1", nil, order.Unknown, nil, nil, 0, 0, time.Now())
		require.Error(t, err)
	})

	t.Run("should reject duplicate id within the cart", func(t *testing.T) {
		items := []*order.Item{
			mustItem(t, "1", "SKU1", 100, 1, ""),
			mustItem(t, "1", "SKU2", 50, 1, ""),
		}

		_, err := order.RestoreOrder("ORD-1", nil, order.Draft, items, nil, 150, 0, time.Now())

		require.ErrorIs(t, err, order.ErrDuplicateItemID)
	})

	t.Run("should reject an id present in both collections", func(t *testing.T) {
		items := []*order.Item{mustItem(t, "1", "SKU1", 100, 1, "")}
		wishlist := []*order.Item{mustItem(t, "1", "SKU1", 100, 1, "")}

		_, err := order.RestoreOrder("ORD-1", nil, order.Draft, items, wishlist, 100, 0, time.Now())

		require.ErrorIs(t, err, order.ErrDuplicateItemID)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject zero value order", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should reject nil order", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("should append a new line and recompute subtotal", func(t *testing.T) {
		o := order.NewDraftOrder()

		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 2, "")))

		require.Len(t, o.Items(), 1)
		assert.Equal(t, int64(200), o.Subtotal())
	})

	t.Run("should merge quantities for an existing id", func(t *testing.T) {
		o := order.NewDraftOrder()
		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 2, "")))

		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 3, "")))

		require.Len(t, o.Items(), 1)
		assert.Equal(t, 5, o.Items()[0].Quantity())
		assert.Equal(t, int64(500), o.Subtotal())
	})

	t.Run("adding twice equals adding once with doubled quantity", func(t *testing.T) {
		twice := order.NewDraftOrder()
		require.NoError(t, twice.AddItem(mustItem(t, "1", "SKU1", 100, 2, "")))
		require.NoError(t, twice.AddItem(mustItem(t, "1", "SKU1", 100, 2, "")))

		once := order.NewDraftOrder()
		require.NoError(t, once.AddItem(mustItem(t, "1", "SKU1", 100, 4, "")))

		assert.Equal(t, once.Subtotal(), twice.Subtotal())
		assert.Equal(t, once.Items()[0].Quantity(), twice.Items()[0].Quantity())
	})

	t.Run("should clamp merged quantity to the maximum", func(t *testing.T) {
		o := order.NewDraftOrder()
		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 9000, "")))

		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 5000, "")))

		assert.Equal(t, order.MaxQuantity, o.Items()[0].Quantity())
	})

	t.Run("should keep two lines of the same code with different colors", func(t *testing.T) {
		o := order.NewDraftOrder()

		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 1, "blue")))
		require.NoError(t, o.AddItem(mustItem(t, "2", "SKU1", 100, 1, "red")))

		assert.Len(t, o.Items(), 2)
		assert.Equal(t, int64(200), o.Subtotal())
	})

	t.Run("should be a no-op when the id is parked in the wishlist", func(t *testing.T) {
		o := order.NewDraftOrder()
		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 2, "")))
		o.MoveToWishlist("1")

		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 3, "")))

		assert.Empty(t, o.Items())
		require.Len(t, o.WishlistItems(), 1)
		assert.Equal(t, 2, o.WishlistItems()[0].Quantity())
	})

	t.Run("should reject an unconstructed item", func(t *testing.T) {
		o := order.NewDraftOrder()

		require.Error(t, o.AddItem(&order.Item{}))
	})
}

func TestOrder_RemoveItem(t *testing.T) {
	t.Run("should delete the line and recompute subtotal", func(t *testing.T) {
		o := order.NewDraftOrder()
		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 2, "")))
		require.NoError(t, o.AddItem(mustItem(t, "2", "SKU2", 50, 1, "")))

		o.RemoveItem("1")

		require.Len(t, o.Items(), 1)
		assert.Equal(t, "2", o.Items()[0].ID())
		assert.Equal(t, int64(50), o.Subtotal())
	})

	t.Run("should be a no-op for a missing id", func(t *testing.T) {
		o := order.NewDraftOrder()
		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 2, "")))

		o.RemoveItem("missing")

		assert.Len(t, o.Items(), 1)
		assert.Equal(t, int64(200), o.Subtotal())
	})
}

func TestOrder_SetQuantity(t *testing.T) {
	t.Run("should set quantity in range and recompute subtotal", func(t *testing.T) {
		o := order.NewDraftOrder()
		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 2, "")))

		o.SetQuantity("1", 5)

		assert.Equal(t, 5, o.Items()[0].Quantity())
		assert.Equal(t, int64(500), o.Subtotal())
	})

	t.Run("should clamp above the maximum", func(t *testing.T) {
		o := order.NewDraftOrder()
		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 2, "")))

		o.SetQuantity("1", 10000)

		assert.Equal(t, order.MaxQuantity, o.Items()[0].Quantity())
	})

	t.Run("should remove the line on a zero request", func(t *testing.T) {
		o := order.NewDraftOrder()
		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 2, "")))

		o.SetQuantity("1", 0)

		assert.Empty(t, o.Items())
		assert.Equal(t, int64(0), o.Subtotal())
	})

	t.Run("should remove the line on a negative request", func(t *testing.T) {
		o := order.NewDraftOrder()
		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 2, "")))

		o.SetQuantity("1", -4)

		assert.Empty(t, o.Items())
	})

	t.Run("should be a no-op for a missing id", func(t *testing.T) {
		o := order.NewDraftOrder()
		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 2, "")))

		o.SetQuantity("missing", 5)

		assert.Equal(t, 2, o.Items()[0].Quantity())
	})
}

func TestOrder_MoveBetweenCollections(t *testing.T) {
	t.Run("move to wishlist excludes the line from totals", func(t *testing.T) {
		o := order.NewDraftOrder()
		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 5, "blue")))

		o.MoveToWishlist("1")

		assert.Empty(t, o.Items())
		require.Len(t, o.WishlistItems(), 1)
		assert.Equal(t, 5, o.WishlistItems()[0].Quantity())
		assert.Equal(t, "blue", o.WishlistItems()[0].Color())
		assert.Equal(t, int64(0), o.Subtotal())
	})

	t.Run("round-trip restores the line with identical quantity and color", func(t *testing.T) {
		o := order.NewDraftOrder()
		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 5, "blue")))

		o.MoveToWishlist("1")
		o.MoveToCart("1")

		assert.Empty(t, o.WishlistItems())
		require.Len(t, o.Items(), 1)
		assert.Equal(t, 5, o.Items()[0].Quantity())
		assert.Equal(t, "blue", o.Items()[0].Color())
		assert.Equal(t, int64(500), o.Subtotal())
	})

	t.Run("moved line does not alias the original reference", func(t *testing.T) {
		o := order.NewDraftOrder()
		item := mustItem(t, "1", "SKU1", 100, 5, "blue")
		require.NoError(t, o.AddItem(item))

		o.MoveToWishlist("1")
		item.SetQuantity(1)

		require.Len(t, o.WishlistItems(), 1)
		assert.NotSame(t, item, o.WishlistItems()[0])
		assert.Equal(t, 5, o.WishlistItems()[0].Quantity())
	})

	t.Run("no id ever appears in both collections", func(t *testing.T) {
		o := order.NewDraftOrder()
		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 1, "")))
		require.NoError(t, o.AddItem(mustItem(t, "2", "SKU2", 50, 1, "")))

		o.MoveToWishlist("1")
		o.MoveToWishlist("1") // duplicate click
		o.MoveToCart("1")
		o.MoveToCart("1") // duplicate click

		require.NoError(t, o.Validate())
		assert.Len(t, o.Items(), 2)
		assert.Empty(t, o.WishlistItems())
	})

	t.Run("moves of missing ids are no-ops", func(t *testing.T) {
		o := order.NewDraftOrder()
		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 1, "")))

		o.MoveToWishlist("missing")
		o.MoveToCart("missing")

		assert.Len(t, o.Items(), 1)
		assert.Empty(t, o.WishlistItems())
	})
}

func TestOrder_Clear(t *testing.T) {
	o := restoredDraft(t, "ORD-1")
	require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 2, "")))
	o.MoveToWishlist("1")
	require.NoError(t, o.AddItem(mustItem(t, "2", "SKU2", 50, 1, "")))

	o.Clear()

	require.NoError(t, o.Validate())
	assert.Empty(t, o.ID())
	assert.Equal(t, order.Draft, o.Status())
	assert.Empty(t, o.Items())
	assert.Empty(t, o.WishlistItems())
	assert.Equal(t, int64(0), o.Total())
}

func TestOrder_Close(t *testing.T) {
	t.Run("should close with at least one cart item", func(t *testing.T) {
		o := restoredDraft(t, "ORD-1")
		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 1, "")))

		require.NoError(t, o.Close())

		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject close with an empty cart and keep Draft", func(t *testing.T) {
		o := restoredDraft(t, "ORD-1")

		err := o.Close()

		require.ErrorIs(t, err, order.ErrCartIsEmpty)
		assert.Equal(t, order.Draft, o.Status())
	})

	t.Run("wishlist items do not satisfy the close precondition", func(t *testing.T) {
		o := restoredDraft(t, "ORD-1")
		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 1, "")))
		o.MoveToWishlist("1")

		err := o.Close()

		require.ErrorIs(t, err, order.ErrCartIsEmpty)
	})

	t.Run("should reject close without an assigned order id", func(t *testing.T) {
		o := order.NewDraftOrder()
		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 1, "")))

		err := o.Close()

		require.ErrorIs(t, err, order.ErrOrderIDIsNotAssigned)
		assert.Equal(t, order.Draft, o.Status())
	})

	t.Run("should reject a second close", func(t *testing.T) {
		o := restoredDraft(t, "ORD-1")
		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 1, "")))
		require.NoError(t, o.Close())

		require.Error(t, o.Close())
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_ReplaceItems(t *testing.T) {
	t.Run("should swap the cart wholesale, not merge", func(t *testing.T) {
		o := order.NewDraftOrder()
		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 2, "")))

		server := []*order.Item{
			mustItem(t, "1", "SKU1", 90, 3, ""), // server repriced
			mustItem(t, "2", "SKU2", 50, 1, ""),
		}
		require.NoError(t, o.ReplaceItems(server))

		require.Len(t, o.Items(), 2)
		assert.Equal(t, int64(90), o.Items()[0].Price())
		assert.Equal(t, 3, o.Items()[0].Quantity())
		assert.Equal(t, int64(320), o.Subtotal())
	})

	t.Run("should drop wishlist lines shadowed by the server copy", func(t *testing.T) {
		o := order.NewDraftOrder()
		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 1, "")))
		o.MoveToWishlist("1")

		require.NoError(t, o.ReplaceItems([]*order.Item{mustItem(t, "1", "SKU1", 100, 2, "")}))

		require.NoError(t, o.Validate())
		assert.Len(t, o.Items(), 1)
		assert.Empty(t, o.WishlistItems())
	})

	t.Run("should accept an empty server copy", func(t *testing.T) {
		o := order.NewDraftOrder()
		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 2, "")))

		require.NoError(t, o.ReplaceItems(nil))

		assert.Empty(t, o.Items())
		assert.Equal(t, int64(0), o.Subtotal())
	})

	t.Run("should reject a server copy with duplicate ids", func(t *testing.T) {
		o := order.NewDraftOrder()

		err := o.ReplaceItems([]*order.Item{
			mustItem(t, "1", "SKU1", 100, 1, ""),
			mustItem(t, "1", "SKU2", 50, 1, ""),
		})

		require.ErrorIs(t, err, order.ErrDuplicateItemID)
	})
}

func TestOrder_AdoptStatusAndCharges(t *testing.T) {
	t.Run("server status always wins", func(t *testing.T) {
		o := restoredDraft(t, "ORD-1")
		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 1, "")))
		require.NoError(t, o.Close())

		// cashier already recorded payment before the local view refreshed
		require.NoError(t, o.AdoptStatus(order.Paid))

		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("should reject adopting an invalid status", func(t *testing.T) {
		o := order.NewDraftOrder()

		require.Error(t, o.AdoptStatus(order.Unknown))
	})

	t.Run("adopting tax keeps total derived", func(t *testing.T) {
		o := order.NewDraftOrder()
		require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 2, "")))

		o.AdoptCharges(21)

		assert.Equal(t, int64(200), o.Subtotal())
		assert.Equal(t, int64(21), o.Tax())
		assert.Equal(t, int64(221), o.Total())
	})
}

// TestOrder_SpecScenario walks the documented reference scenario end to end:
// a 100 × 2 cart line, a quantity update to 5, then parking the line.
func TestOrder_SpecScenario(t *testing.T) {
	o := order.NewDraftOrder()
	require.NoError(t, o.AddItem(mustItem(t, "1", "SKU1", 100, 2, "")))
	assert.Equal(t, int64(200), o.Subtotal())

	o.SetQuantity("1", 5)
	assert.Equal(t, int64(500), o.Subtotal())

	o.MoveToWishlist("1")
	assert.Empty(t, o.Items())
	require.Len(t, o.WishlistItems(), 1)
	assert.Equal(t, 5, o.WishlistItems()[0].Quantity())
	assert.Equal(t, int64(0), o.Subtotal())
}
