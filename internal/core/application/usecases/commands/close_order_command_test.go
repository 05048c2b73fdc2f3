package commands_test

import (
	"testing"

	"instore/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCloseOrderCommand(t *testing.T) {
	cmd, err := commands.NewCloseOrderCommand("ORD-1", "card", "gift wrap")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	assert.Equal(t, "ORD-1", cmd.OrderID())
	assert.Equal(t, "card", cmd.PaymentMethod())
	assert.Equal(t, "gift wrap", cmd.Notes())
}

func TestNewCloseOrderCommand_EmptyOrderID(t *testing.T) {
	_, err := commands.NewCloseOrderCommand("", "", "")
	require.ErrorIs(t, err, commands.ErrOrderIDIsRequired)
}

func TestCloseOrderCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.CloseOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCloseOrderCommandIsNotConstructed)
}
