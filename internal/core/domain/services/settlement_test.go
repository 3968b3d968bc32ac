package services_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settleNow = time.Date(2025, 3, 14, 22, 30, 0, 0, time.UTC)

// seatWithDelivered registers a client and walks one order through the full
// kitchen flow so it is chargeable.
func seatWithDelivered(t *testing.T, tbl *table.Table, client, dishID, dishName string, price, quantity int) string {
	t.Helper()

	key, err := tbl.RegisterClient(client)
	require.NoError(t, err)
	seat, err := tbl.BoundSeatByKey(key)
	require.NoError(t, err)

	o, err := seat.PlaceOrder(dishID, dishName, price, quantity, settleNow.Add(-time.Hour))
	require.NoError(t, err)
	require.NoError(t, o.Send(settleNow.Add(-50*time.Minute)))
	require.NoError(t, o.StartPreparation(settleNow.Add(-40*time.Minute)))
	require.NoError(t, o.MarkReady(settleNow.Add(-30*time.Minute)))
	require.NoError(t, o.Deliver(settleNow.Add(-20*time.Minute)))
	return key
}

func TestSettleIndividual(t *testing.T) {
	t.Run("should charge one seat and mark its orders paid", func(t *testing.T) {
		tbl, err := table.NewTable("table-1", "Mesa 1", "token-1", 4)
		require.NoError(t, err)

		anaKey := seatWithDelivered(t, tbl, "Ana", "milanesa", "Milanesa", 1200, 1)
		seat, err := tbl.BoundSeatByKey(anaKey)
		require.NoError(t, err)
		second, err := seat.PlaceOrder("flan", "Flan casero", 800, 1, settleNow.Add(-time.Hour))
		require.NoError(t, err)
		require.NoError(t, second.Send(settleNow.Add(-50*time.Minute)))
		require.NoError(t, second.StartPreparation(settleNow.Add(-40*time.Minute)))
		require.NoError(t, second.MarkReady(settleNow.Add(-30*time.Minute)))
		require.NoError(t, second.Deliver(settleNow.Add(-20*time.Minute)))

		settler := services.NewSettler()
		record, err := settler.Settle(tbl, payment.Individual, anaKey, "rec-1", settleNow)

		require.NoError(t, err)
		assert.Equal(t, 2000, record.Total())
		assert.Equal(t, payment.Individual, record.Scope())
		require.Len(t, record.Lines(), 2)
		assert.Equal(t, "Ana", record.Lines()[0].ClientName)

		for _, o := range seat.Orders() {
			assert.Equal(t, order.Paid, o.Status())
		}
	})

	t.Run("should reject settlement with undelivered orders and name the dishes", func(t *testing.T) {
		tbl, err := table.NewTable("table-1", "Mesa 1", "token-1", 4)
		require.NoError(t, err)

		anaKey := seatWithDelivered(t, tbl, "Ana", "milanesa", "Milanesa", 1200, 1)
		seat, err := tbl.BoundSeatByKey(anaKey)
		require.NoError(t, err)
		pending, err := seat.PlaceOrder("flan", "Flan casero", 800, 1, settleNow.Add(-time.Hour))
		require.NoError(t, err)
		require.NoError(t, pending.Send(settleNow.Add(-50*time.Minute)))

		settler := services.NewSettler()
		_, err = settler.Settle(tbl, payment.Individual, anaKey, "rec-1", settleNow)

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Contains(t, err.Error(), "Flan casero")

		// Nothing was charged.
		for _, o := range seat.Orders() {
			assert.NotEqual(t, order.Paid, o.Status())
		}
	})

	t.Run("should reject seat with nothing to charge", func(t *testing.T) {
		tbl, err := table.NewTable("table-1", "Mesa 1", "token-1", 4)
		require.NoError(t, err)
		key, err := tbl.RegisterClient("Ana")
		require.NoError(t, err)

		settler := services.NewSettler()
		_, err = settler.Settle(tbl, payment.Individual, key, "rec-1", settleNow)
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})

	t.Run("should reject unknown seat", func(t *testing.T) {
		tbl, err := table.NewTable("table-1", "Mesa 1", "token-1", 4)
		require.NoError(t, err)

		settler := services.NewSettler()
		_, err = settler.Settle(tbl, payment.Individual, "seat-1", "rec-1", settleNow)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestSettleGroup(t *testing.T) {
	t.Run("should charge every occupied seat", func(t *testing.T) {
		tbl, err := table.NewTable("table-1", "Mesa 1", "token-1", 4)
		require.NoError(t, err)

		seatWithDelivered(t, tbl, "Ana", "milanesa", "Milanesa", 1200, 1)
		seatWithDelivered(t, tbl, "Beto", "flan", "Flan casero", 800, 2)

		settler := services.NewSettler()
		record, err := settler.Settle(tbl, payment.Group, "", "rec-1", settleNow)

		require.NoError(t, err)
		assert.Equal(t, 2800, record.Total())
		assert.Equal(t, payment.Group, record.Scope())
		require.Len(t, record.Lines(), 2)
	})

	t.Run("should require more than one occupied seat", func(t *testing.T) {
		tbl, err := table.NewTable("table-1", "Mesa 1", "token-1", 4)
		require.NoError(t, err)
		seatWithDelivered(t, tbl, "Ana", "milanesa", "Milanesa", 1200, 1)

		settler := services.NewSettler()
		_, err = settler.Settle(tbl, payment.Group, "", "rec-1", settleNow)
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})

	t.Run("should archive cancelled orders without charging them", func(t *testing.T) {
		tbl, err := table.NewTable("table-1", "Mesa 1", "token-1", 4)
		require.NoError(t, err)

		anaKey := seatWithDelivered(t, tbl, "Ana", "milanesa", "Milanesa", 1200, 1)
		seatWithDelivered(t, tbl, "Beto", "flan", "Flan casero", 800, 1)

		seat, err := tbl.BoundSeatByKey(anaKey)
		require.NoError(t, err)
		cancelled, err := seat.PlaceOrder("empanada", "Empanada", 300, 3, settleNow.Add(-time.Hour))
		require.NoError(t, err)
		require.NoError(t, seat.CancelOrder(cancelled.ID(), settleNow.Add(-55*time.Minute)))

		settler := services.NewSettler()
		record, err := settler.Settle(tbl, payment.Group, "", "rec-1", settleNow)

		require.NoError(t, err)
		assert.Equal(t, 2000, record.Total())
		require.Len(t, record.Archived(), 1)
		assert.Equal(t, "Empanada", record.Archived()[0].DishName)
	})
}

func TestSettleValidation(t *testing.T) {
	t.Run("should reject invalid scope", func(t *testing.T) {
		tbl, err := table.NewTable("table-1", "Mesa 1", "token-1", 4)
		require.NoError(t, err)

		settler := services.NewSettler()
		_, err = settler.Settle(tbl, payment.Unknown, "seat-1", "rec-1", settleNow)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unconstructed table", func(t *testing.T) {
		settler := services.NewSettler()
		_, err := settler.Settle(nil, payment.Individual, "seat-1", "rec-1", settleNow)
		require.ErrorIs(t, err, table.ErrTableIsNotConstructed)
	})
}
