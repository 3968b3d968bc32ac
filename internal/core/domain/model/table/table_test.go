package table_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 20, 0, 0, 0, time.UTC)

func newTestTable(t *testing.T, capacity int) *table.Table {
	t.Helper()
	tbl, err := table.NewTable("table-1", "Mesa 1", "token-1", capacity)
	require.NoError(t, err)
	return tbl
}

func TestNewTable(t *testing.T) {
	t.Run("should create free table with unbound seats", func(t *testing.T) {
		tbl := newTestTable(t, 4)

		require.NoError(t, tbl.Validate())
		assert.Equal(t, "table-1", tbl.ID())
		assert.Equal(t, "Mesa 1", tbl.Name())
		assert.Equal(t, "token-1", tbl.AccessToken())
		assert.Equal(t, 4, tbl.Capacity())
		assert.Equal(t, table.Free, tbl.Status())
		assert.Len(t, tbl.Seats(), 4)
		assert.Empty(t, tbl.OccupiedSeats())
	})

	t.Run("should fail with zero capacity", func(t *testing.T) {
		_, err := table.NewTable("table-1", "Mesa 1", "token-1", 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with empty id", func(t *testing.T) {
		_, err := table.NewTable("", "Mesa 1", "token-1", 4)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with empty access token", func(t *testing.T) {
		_, err := table.NewTable("table-1", "Mesa 1", "", 4)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRegisterClient(t *testing.T) {
	t.Run("should bind first unbound seat and occupy table", func(t *testing.T) {
		tbl := newTestTable(t, 2)

		key, err := tbl.RegisterClient("Ana")
		require.NoError(t, err)
		assert.Equal(t, "seat-1", key)
		assert.Equal(t, table.Occupied, tbl.Status())

		key, err = tbl.RegisterClient("Beto")
		require.NoError(t, err)
		assert.Equal(t, "seat-2", key)
	})

	t.Run("should be idempotent for returning clients", func(t *testing.T) {
		tbl := newTestTable(t, 2)

		first, err := tbl.RegisterClient("Ana")
		require.NoError(t, err)

		again, err := tbl.RegisterClient("Ana")
		require.NoError(t, err)
		assert.Equal(t, first, again)
		assert.Len(t, tbl.OccupiedSeats(), 1)
	})

	t.Run("should match returning clients case insensitively", func(t *testing.T) {
		tbl := newTestTable(t, 2)

		first, err := tbl.RegisterClient("Ana")
		require.NoError(t, err)

		again, err := tbl.RegisterClient("ana")
		require.NoError(t, err)
		assert.Equal(t, first, again)

		seat, err := tbl.BoundSeatByKey(first)
		require.NoError(t, err)
		assert.Equal(t, "Ana", seat.ClientName())
	})

	t.Run("should reject new client on full table", func(t *testing.T) {
		tbl := newTestTable(t, 1)

		_, err := tbl.RegisterClient("Ana")
		require.NoError(t, err)

		_, err = tbl.RegisterClient("Beto")
		require.ErrorIs(t, err, errs.ErrCapacityExceeded)

		seat, seatErr := tbl.BoundSeatByKey("seat-1")
		require.NoError(t, seatErr)
		assert.Equal(t, "Ana", seat.ClientName())
	})

	t.Run("should reject empty client name", func(t *testing.T) {
		tbl := newTestTable(t, 1)
		_, err := tbl.RegisterClient("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSeatByKey(t *testing.T) {
	tbl := newTestTable(t, 2)

	t.Run("should resolve valid keys", func(t *testing.T) {
		seat, err := tbl.SeatByKey("seat-2")
		require.NoError(t, err)
		assert.Equal(t, 2, seat.Position())
	})

	t.Run("should reject malformed and out of range keys", func(t *testing.T) {
		for _, key := range []string{"", "2", "seat-", "seat-0", "seat-3", "chair-1"} {
			_, err := tbl.SeatByKey(key)
			require.ErrorIs(t, err, errs.ErrObjectNotFound, key)
		}
	})

	t.Run("should require bound seat for BoundSeatByKey", func(t *testing.T) {
		_, err := tbl.BoundSeatByKey("seat-1")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestPlaceAndCancelOrder(t *testing.T) {
	t.Run("should place pending order with unique ids", func(t *testing.T) {
		tbl := newTestTable(t, 2)
		key, err := tbl.RegisterClient("Ana")
		require.NoError(t, err)

		seat, err := tbl.BoundSeatByKey(key)
		require.NoError(t, err)

		first, err := seat.PlaceOrder("milanesa", "Milanesa", 1200, 1, testNow)
		require.NoError(t, err)
		second, err := seat.PlaceOrder("flan", "Flan casero", 800, 1, testNow)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID(), second.ID())
		assert.Equal(t, order.Pending, first.Status())
		assert.Len(t, seat.Orders(), 2)
	})

	t.Run("should reject order on unbound seat", func(t *testing.T) {
		tbl := newTestTable(t, 2)
		seat, err := tbl.SeatByKey("seat-1")
		require.NoError(t, err)

		_, err = seat.PlaceOrder("milanesa", "Milanesa", 1200, 1, testNow)
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})

	t.Run("should archive cancelled order and report NotFound on second cancel", func(t *testing.T) {
		tbl := newTestTable(t, 2)
		key, err := tbl.RegisterClient("Beto")
		require.NoError(t, err)
		seat, err := tbl.BoundSeatByKey(key)
		require.NoError(t, err)

		placed, err := seat.PlaceOrder("milanesa", "Milanesa", 1200, 1, testNow)
		require.NoError(t, err)

		require.NoError(t, seat.CancelOrder(placed.ID(), testNow.Add(time.Minute)))
		assert.Empty(t, seat.Orders())
		require.Len(t, seat.CancelledOrders(), 1)

		err = seat.CancelOrder(placed.ID(), testNow.Add(2*time.Minute))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should not cancel orders already sent to kitchen", func(t *testing.T) {
		tbl := newTestTable(t, 2)
		key, err := tbl.RegisterClient("Ana")
		require.NoError(t, err)
		seat, err := tbl.BoundSeatByKey(key)
		require.NoError(t, err)

		placed, err := seat.PlaceOrder("milanesa", "Milanesa", 1200, 1, testNow)
		require.NoError(t, err)
		_, err = tbl.SendPendingToKitchen(testNow.Add(time.Minute))
		require.NoError(t, err)

		err = seat.CancelOrder(placed.ID(), testNow.Add(2*time.Minute))
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Len(t, seat.Orders(), 1)
	})
}

func TestSendPendingToKitchen(t *testing.T) {
	t.Run("should send every pending order across seats", func(t *testing.T) {
		tbl := newTestTable(t, 2)
		anaKey, err := tbl.RegisterClient("Ana")
		require.NoError(t, err)
		betoKey, err := tbl.RegisterClient("Beto")
		require.NoError(t, err)

		ana, _ := tbl.BoundSeatByKey(anaKey)
		beto, _ := tbl.BoundSeatByKey(betoKey)
		_, err = ana.PlaceOrder("milanesa", "Milanesa", 1200, 1, testNow)
		require.NoError(t, err)
		_, err = beto.PlaceOrder("flan", "Flan casero", 800, 2, testNow)
		require.NoError(t, err)

		sent, err := tbl.SendPendingToKitchen(testNow.Add(time.Minute))
		require.NoError(t, err)
		require.Len(t, sent, 2)
		assert.Equal(t, "Ana", sent[0].ClientName)
		assert.Equal(t, "Milanesa", sent[0].DishName)

		for _, seat := range tbl.OccupiedSeats() {
			for _, o := range seat.Orders() {
				assert.Equal(t, order.SentToKitchen, o.Status())
			}
		}
	})

	t.Run("should fail when nothing is pending", func(t *testing.T) {
		tbl := newTestTable(t, 2)
		_, err := tbl.RegisterClient("Ana")
		require.NoError(t, err)

		_, err = tbl.SendPendingToKitchen(testNow)
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})

	t.Run("should not resend orders already in kitchen", func(t *testing.T) {
		tbl := newTestTable(t, 2)
		key, err := tbl.RegisterClient("Ana")
		require.NoError(t, err)
		seat, _ := tbl.BoundSeatByKey(key)
		_, err = seat.PlaceOrder("milanesa", "Milanesa", 1200, 1, testNow)
		require.NoError(t, err)

		_, err = tbl.SendPendingToKitchen(testNow.Add(time.Minute))
		require.NoError(t, err)

		_, err = tbl.SendPendingToKitchen(testNow.Add(2 * time.Minute))
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})
}

func TestWaiterRequests(t *testing.T) {
	t.Run("should raise and resolve requests", func(t *testing.T) {
		tbl := newTestTable(t, 2)
		_, err := tbl.RegisterClient("Ana")
		require.NoError(t, err)

		require.NoError(t, tbl.RaiseRequest("Ana", "mas pan", testNow))
		require.NoError(t, tbl.RaiseRequest("ana", "la cuenta", testNow.Add(time.Minute)))

		requests := tbl.Requests()
		require.Len(t, requests, 2)
		assert.Equal(t, "Ana", requests[1].ClientName())
		assert.False(t, requests[0].Resolved())

		require.NoError(t, tbl.ResolveRequest("Ana", "mas pan"))
		requests = tbl.Requests()
		assert.True(t, requests[0].Resolved())
		assert.False(t, requests[1].Resolved())
	})

	t.Run("should reject requests from strangers", func(t *testing.T) {
		tbl := newTestTable(t, 2)
		err := tbl.RaiseRequest("Ana", "mas pan", testNow)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should keep duplicate requests separate", func(t *testing.T) {
		tbl := newTestTable(t, 2)
		_, err := tbl.RegisterClient("Ana")
		require.NoError(t, err)

		require.NoError(t, tbl.RaiseRequest("Ana", "mas pan", testNow))
		require.NoError(t, tbl.RaiseRequest("Ana", "mas pan", testNow.Add(time.Minute)))

		require.NoError(t, tbl.ResolveRequest("Ana", "mas pan"))
		requests := tbl.Requests()
		assert.True(t, requests[0].Resolved())
		assert.False(t, requests[1].Resolved())
	})

	t.Run("should report NotFound when nothing matches", func(t *testing.T) {
		tbl := newTestTable(t, 2)
		_, err := tbl.RegisterClient("Ana")
		require.NoError(t, err)

		err = tbl.ResolveRequest("Ana", "mas pan")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestRelease(t *testing.T) {
	t.Run("should reset table when last seat releases", func(t *testing.T) {
		tbl := newTestTable(t, 2)
		anaKey, _ := tbl.RegisterClient("Ana")
		betoKey, _ := tbl.RegisterClient("Beto")
		require.NoError(t, tbl.RaiseRequest("Ana", "mas pan", testNow))
		require.NoError(t, tbl.AppendNotification("listo", table.NotificationKitchen, testNow))

		require.NoError(t, tbl.ReleaseSeat(anaKey))
		assert.Equal(t, table.Occupied, tbl.Status())
		assert.Len(t, tbl.Requests(), 1)

		require.NoError(t, tbl.ReleaseSeat(betoKey))
		assert.Equal(t, table.Free, tbl.Status())
		assert.Empty(t, tbl.Requests())
		assert.Empty(t, tbl.Notifications())
		assert.Empty(t, tbl.OccupiedSeats())
	})

	t.Run("should reset everything on ReleaseAll", func(t *testing.T) {
		tbl := newTestTable(t, 2)
		key, _ := tbl.RegisterClient("Ana")
		seat, _ := tbl.BoundSeatByKey(key)
		_, err := seat.PlaceOrder("milanesa", "Milanesa", 1200, 1, testNow)
		require.NoError(t, err)

		tbl.ReleaseAll()
		assert.Equal(t, table.Free, tbl.Status())
		for _, s := range tbl.Seats() {
			assert.False(t, s.IsBound())
			assert.Empty(t, s.Orders())
		}
	})
}

func TestRestoreTable(t *testing.T) {
	t.Run("should recompute status from seat bindings", func(t *testing.T) {
		bound, err := table.RestoreSeat(1, "Ana", nil, nil, 1)
		require.NoError(t, err)
		empty, err := table.RestoreSeat(2, "", nil, nil, 1)
		require.NoError(t, err)

		tbl, err := table.RestoreTable("table-1", "Mesa 1", "token-1", 2,
			[]*table.Seat{bound, empty}, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, table.Occupied, tbl.Status())
	})

	t.Run("should reject seat count not matching capacity", func(t *testing.T) {
		seat, err := table.RestoreSeat(1, "", nil, nil, 1)
		require.NoError(t, err)

		_, err = table.RestoreTable("table-1", "Mesa 1", "token-1", 2,
			[]*table.Seat{seat}, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTableClone(t *testing.T) {
	t.Run("should isolate clone mutations", func(t *testing.T) {
		tbl := newTestTable(t, 2)
		_, err := tbl.RegisterClient("Ana")
		require.NoError(t, err)

		clone := tbl.Clone()
		_, err = clone.RegisterClient("Beto")
		require.NoError(t, err)

		seat, err := clone.BoundSeatByKey("seat-1")
		require.NoError(t, err)
		_, err = seat.PlaceOrder("milanesa", "Milanesa", 1200, 1, testNow)
		require.NoError(t, err)

		assert.Len(t, tbl.OccupiedSeats(), 1)
		original, err := tbl.BoundSeatByKey("seat-1")
		require.NoError(t, err)
		assert.Empty(t, original.Orders())
	})
}

func TestFindOrder(t *testing.T) {
	tbl := newTestTable(t, 2)
	key, err := tbl.RegisterClient("Ana")
	require.NoError(t, err)
	seat, err := tbl.BoundSeatByKey(key)
	require.NoError(t, err)
	placed, err := seat.PlaceOrder("milanesa", "Milanesa", 1200, 1, testNow)
	require.NoError(t, err)

	t.Run("should locate order anywhere on the table", func(t *testing.T) {
		found, owner, findErr := tbl.FindOrder(placed.ID())
		require.NoError(t, findErr)
		assert.Equal(t, placed.ID(), found.ID())
		assert.Equal(t, "Ana", owner.ClientName())
	})

	t.Run("should report NotFound for unknown ids", func(t *testing.T) {
		_, _, findErr := tbl.FindOrder("missing")
		require.ErrorIs(t, findErr, errs.ErrObjectNotFound)
	})
}
