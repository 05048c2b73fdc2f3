package order_test

import (
	"fmt"
	"testing"

	"instore/internal/core/domain/model/order"
	"instore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Draft))
		assert.Equal(t, 2, int(order.Pending))
		assert.Equal(t, 3, int(order.Confirmed))
		assert.Equal(t, 4, int(order.Paid))
		assert.Equal(t, 5, int(order.Ready))
		assert.Equal(t, 6, int(order.Delivered))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Draft,
			order.Pending,
			order.Confirmed,
			order.Paid,
			order.Ready,
			order.Delivered,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out-of-range status", func(t *testing.T) {
		err := order.Status(42).Validate()

		require.Error(t, err)
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire names", func(t *testing.T) {
		expected := map[order.Status]string{
			order.Unknown:   "unknown",
			order.Draft:     "draft",
			order.Pending:   "pending",
			order.Confirmed: "confirmed",
			order.Paid:      "paid",
			order.Ready:     "ready",
			order.Delivered: "delivered",
		}

		for status, name := range expected {
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("should render invalid values as unknown", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Status(99).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all valid wire names", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Draft, order.Pending, order.Confirmed,
			order.Paid, order.Ready, order.Delivered,
		} {
			parsed, err := order.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown wire names", func(t *testing.T) {
		parsed, err := order.StatusFromString("shipped")

		require.Error(t, err)
		assert.Equal(t, order.Unknown, parsed)
	})

	t.Run("should reject the unknown wire name itself", func(t *testing.T) {
		_, err := order.StatusFromString("unknown")

		require.Error(t, err)
	})
}

func TestStatus_Close(t *testing.T) {
	t.Run("should close from Draft", func(t *testing.T) {
		newStatus, err := order.Draft.Close()

		require.NoError(t, err)
		assert.Equal(t, order.Pending, newStatus)
	})

	t.Run("should reject close from any later status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Pending, order.Confirmed, order.Paid, order.Ready, order.Delivered,
		} {
			_, err := status.Close()
			require.Error(t, err, "close from %s should fail", status)
		}
	})
}

func TestStatus_Verify(t *testing.T) {
	t.Run("should verify from Pending", func(t *testing.T) {
		newStatus, err := order.Pending.Verify()

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, newStatus)
	})

	t.Run("should reject verify from Draft", func(t *testing.T) {
		_, err := order.Draft.Verify()
		require.Error(t, err)
	})

	t.Run("should reject verify from Paid", func(t *testing.T) {
		_, err := order.Paid.Verify()
		require.Error(t, err)
	})
}

func TestStatus_Pay(t *testing.T) {
	t.Run("should pay from Confirmed", func(t *testing.T) {
		newStatus, err := order.Confirmed.Pay()

		require.NoError(t, err)
		assert.Equal(t, order.Paid, newStatus)
	})

	t.Run("should pay directly from Pending skipping verification", func(t *testing.T) {
		newStatus, err := order.Pending.Pay()

		require.NoError(t, err)
		assert.Equal(t, order.Paid, newStatus)
	})

	t.Run("should reject pay from Draft", func(t *testing.T) {
		_, err := order.Draft.Pay()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "draft is not a valid status to pay")
	})

	t.Run("should reject pay from Delivered", func(t *testing.T) {
		_, err := order.Delivered.Pay()
		require.Error(t, err)
	})
}

func TestStatus_Fulfill(t *testing.T) {
	t.Run("should fulfill from Paid", func(t *testing.T) {
		newStatus, err := order.Paid.Fulfill()

		require.NoError(t, err)
		assert.Equal(t, order.Ready, newStatus)
	})

	t.Run("should reject fulfill from Pending", func(t *testing.T) {
		_, err := order.Pending.Fulfill()
		require.Error(t, err)
	})
}

func TestStatus_Deliver(t *testing.T) {
	t.Run("should deliver from Ready", func(t *testing.T) {
		newStatus, err := order.Ready.Deliver()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, newStatus)
	})

	t.Run("should reject deliver from Paid", func(t *testing.T) {
		_, err := order.Paid.Deliver()
		require.Error(t, err)
	})

	t.Run("should reject deliver from Delivered", func(t *testing.T) {
		_, err := order.Delivered.Deliver()
		require.Error(t, err)
	})
}
