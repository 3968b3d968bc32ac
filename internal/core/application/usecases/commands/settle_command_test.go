package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSettleCommand_Individual(t *testing.T) {
	// Act
	cmd, err := commands.NewSettleCommand("table-1", payment.Individual, "seat-1")

	// Assert
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, payment.Individual, cmd.Scope())
	assert.Equal(t, "seat-1", cmd.SeatKey())
}

func TestNewSettleCommand_Group(t *testing.T) {
	// Group scope needs no seat key.
	cmd, err := commands.NewSettleCommand("table-1", payment.Group, "")

	require.NoError(t, err)
	assert.Equal(t, payment.Group, cmd.Scope())
	assert.Empty(t, cmd.SeatKey())
}

func TestNewSettleCommand_InvalidInput(t *testing.T) {
	t.Run("empty table id", func(t *testing.T) {
		_, err := commands.NewSettleCommand("", payment.Group, "")
		require.ErrorIs(t, err, commands.ErrTableIDIsRequired)
	})

	t.Run("individual without seat key", func(t *testing.T) {
		_, err := commands.NewSettleCommand("table-1", payment.Individual, "")
		require.ErrorIs(t, err, commands.ErrSeatKeyIsRequiredForIndividual)
	})

	t.Run("unknown scope", func(t *testing.T) {
		_, err := commands.NewSettleCommand("table-1", payment.Unknown, "seat-1")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestSettleCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.SettleCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrSettleCommandIsNotConstructed)
}
