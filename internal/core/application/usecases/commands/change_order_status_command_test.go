package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

func TestNewChangeOrderStatusCommand(t *testing.T) {
	t.Run("should create a valid command", func(t *testing.T) {
		cmd, err := commands.NewChangeOrderStatusCommand("order-1", order.Paid)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "order-1", cmd.OrderID())
		assert.Equal(t, order.Paid, cmd.Status())
	})

	t.Run("should fail with blank order id", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand("  ", order.Paid)

		require.ErrorIs(t, err, errs.ErrValidationFailed)
	})

	t.Run("should fail with an unknown status", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand("order-1", "cancelled")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValidationFailed)
		assert.Contains(t, err.Error(), "cancelled")
	})

	t.Run("zero value command should fail validation", func(t *testing.T) {
		var cmd commands.ChangeOrderStatusCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrChangeOrderStatusCommandIsNotConstructed)
	})
}
