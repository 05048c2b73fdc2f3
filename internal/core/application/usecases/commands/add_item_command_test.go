package commands_test

import (
	"testing"

	"instore/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddItemCommand(t *testing.T) {
	cmd, err := commands.NewAddItemCommand("ORD-1", "p-1", "SKU-1", "Mug", 1250, 2, "black")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	assert.Equal(t, "ORD-1", cmd.OrderID())
	assert.Equal(t, "p-1", cmd.ItemID())
	assert.Equal(t, "SKU-1", cmd.Code())
	assert.Equal(t, "Mug", cmd.Name())
	assert.Equal(t, int64(1250), cmd.Price())
	assert.Equal(t, 2, cmd.Quantity())
	assert.Equal(t, "black", cmd.Color())
}

func TestNewAddItemCommand_Validation(t *testing.T) {
	tests := map[string]struct {
		orderID  string
		itemID   string
		code     string
		name     string
		price    int64
		quantity int
	}{
		"empty order id": {"", "p-1", "SKU-1", "Mug", 1250, 1},
		"empty item id":  {"ORD-1", "", "SKU-1", "Mug", 1250, 1},
		"empty code":     {"ORD-1", "p-1", "", "Mug", 1250, 1},
		"empty name":     {"ORD-1", "p-1", "SKU-1", "", 1250, 1},
		"negative price": {"ORD-1", "p-1", "SKU-1", "Mug", -1, 1},
		"zero quantity":  {"ORD-1", "p-1", "SKU-1", "Mug", 1250, 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := commands.NewAddItemCommand(tc.orderID, tc.itemID, tc.code,
				tc.name, tc.price, tc.quantity, "")
			require.Error(t, err)
		})
	}
}

func TestAddItemCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.AddItemCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrAddItemCommandIsNotConstructed)
}
