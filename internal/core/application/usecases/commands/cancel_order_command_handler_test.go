package commands_test

import (
	"context"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := newFakeTableStore(newEmptyTable(t, 4))
	seatKey := seatAndPlace(t, store, "Ana", "milanesa")

	stored, err := store.Get(ctx, "table-1")
	require.NoError(t, err)
	seat, err := stored.BoundSeatByKey(seatKey)
	require.NoError(t, err)
	orderID := seat.Orders()[0].ID()

	handler := commands.NewCancelOrderCommandHandler(store)
	cmd, err := commands.NewCancelOrderCommand("table-1", seatKey, orderID)
	require.NoError(t, err)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)

	stored, err = store.Get(ctx, "table-1")
	require.NoError(t, err)
	seat, err = stored.BoundSeatByKey(seatKey)
	require.NoError(t, err)
	assert.Empty(t, seat.Orders())
	assert.Len(t, seat.CancelledOrders(), 1)
}

func TestCancelOrderCommandHandler_Handle_AlreadyCancelled(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := newFakeTableStore(newEmptyTable(t, 4))
	seatKey := seatAndPlace(t, store, "Ana", "milanesa")

	stored, err := store.Get(ctx, "table-1")
	require.NoError(t, err)
	seat, err := stored.BoundSeatByKey(seatKey)
	require.NoError(t, err)
	orderID := seat.Orders()[0].ID()

	handler := commands.NewCancelOrderCommandHandler(store)
	cmd, err := commands.NewCancelOrderCommand("table-1", seatKey, orderID)
	require.NoError(t, err)
	require.NoError(t, handler.Handle(ctx, cmd))

	// Act: a cancelled order is gone from the active list.
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCancelOrderCommandHandler_Handle_SentOrder(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := newFakeTableStore(newEmptyTable(t, 4))
	seatKey := seatAndPlace(t, store, "Ana", "milanesa")

	send := commands.NewSendToKitchenCommandHandler(store)
	sendCmd, err := commands.NewSendToKitchenCommand("table-1")
	require.NoError(t, err)
	sent, err := send.Handle(ctx, sendCmd)
	require.NoError(t, err)

	handler := commands.NewCancelOrderCommandHandler(store)
	cmd, err := commands.NewCancelOrderCommand("table-1", seatKey, sent[0].OrderID)
	require.NoError(t, err)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}
