package queries_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kitchenFixture builds two tables: Ana's order was sent first and then
// started preparation; Beto's order was sent later and is still queued;
// Carla's order is already plated and waiting for a waiter.
func kitchenFixture(t *testing.T) *fakeTableStore {
	t.Helper()

	first, err := table.NewTable("table-1", "Mesa 1", "token-1", 4)
	require.NoError(t, err)
	key, err := first.RegisterClient("Ana")
	require.NoError(t, err)
	seat, err := first.BoundSeatByKey(key)
	require.NoError(t, err)
	_, err = seat.PlaceOrder("milanesa", "Milanesa", 1200, 1, queryNow)
	require.NoError(t, err)
	_, err = first.SendPendingToKitchen(queryNow.Add(time.Minute))
	require.NoError(t, err)
	require.NoError(t, seat.Orders()[0].StartPreparation(queryNow.Add(5*time.Minute)))

	second, err := table.NewTable("table-2", "Mesa 2", "token-2", 4)
	require.NoError(t, err)
	key, err = second.RegisterClient("Beto")
	require.NoError(t, err)
	seat, err = second.BoundSeatByKey(key)
	require.NoError(t, err)
	_, err = seat.PlaceOrder("flan", "Flan casero", 400, 1, queryNow)
	require.NoError(t, err)
	_, err = second.SendPendingToKitchen(queryNow.Add(2 * time.Minute))
	require.NoError(t, err)

	third, err := table.NewTable("table-3", "Mesa 3", "token-3", 4)
	require.NoError(t, err)
	key, err = third.RegisterClient("Carla")
	require.NoError(t, err)
	seat, err = third.BoundSeatByKey(key)
	require.NoError(t, err)
	_, err = seat.PlaceOrder("empanada", "Empanada", 300, 2, queryNow)
	require.NoError(t, err)
	_, err = third.SendPendingToKitchen(queryNow.Add(time.Minute))
	require.NoError(t, err)
	o := seat.Orders()[0]
	require.NoError(t, o.StartPreparation(queryNow.Add(2*time.Minute)))
	require.NoError(t, o.MarkReady(queryNow.Add(8*time.Minute)))

	return newFakeTableStore(first, second, third)
}

func TestGetKitchenQueueQueryHandler_Handle(t *testing.T) {
	// Arrange
	handler := queries.NewGetKitchenQueueQueryHandler(kitchenFixture(t))

	// Act
	entries, err := handler.Handle(context.Background(), queries.NewGetKitchenQueueQuery())

	// Assert
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Beto's order changed state at +2m, Ana's at +5m: oldest change first.
	assert.Equal(t, "Flan casero", entries[0].DishName)
	assert.Equal(t, "SentToKitchen", entries[0].Status)
	assert.Equal(t, "Milanesa", entries[1].DishName)
	assert.Equal(t, "InPreparation", entries[1].Status)
	assert.Equal(t, "👨‍🍳 In preparation", entries[1].StatusLabel)
}

func TestGetReadyToServeQueryHandler_Handle(t *testing.T) {
	// Arrange
	handler := queries.NewGetReadyToServeQueryHandler(kitchenFixture(t))

	// Act
	entries, err := handler.Handle(context.Background(), queries.NewGetReadyToServeQuery())

	// Assert
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Empanada", entries[0].DishName)
	assert.Equal(t, "Carla", entries[0].ClientName)
	assert.Equal(t, "table-3", entries[0].TableID)
}

func TestGetKitchenQueueQueryHandler_Handle_EmptyKitchen(t *testing.T) {
	idle, err := table.NewTable("table-1", "Mesa 1", "token-1", 4)
	require.NoError(t, err)
	handler := queries.NewGetKitchenQueueQueryHandler(newFakeTableStore(idle))

	entries, err := handler.Handle(context.Background(), queries.NewGetKitchenQueueQuery())

	require.NoError(t, err)
	assert.Empty(t, entries)
}
