package jsonstore_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"restaurant/internal/adapters/out/jsonstore"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*jsonstore.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tables.json")
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := jsonstore.NewStore(path, logger)
	require.NoError(t, err)
	return store, path
}

func seedOneTable(t *testing.T, store *jsonstore.Store, capacity int) {
	t.Helper()
	tbl, err := table.NewTable("table-1", "Mesa 1", "token-1", capacity)
	require.NoError(t, err)
	require.NoError(t, store.Seed(context.Background(), []*table.Table{tbl}))
}

func TestStoreRoundTrip(t *testing.T) {
	store, path := newTestStore(t)
	seedOneTable(t, store, 4)

	now := time.Date(2025, 3, 14, 20, 0, 0, 0, time.UTC)
	err := store.WithTable(context.Background(), "table-1", func(tbl *table.Table) error {
		key, registerErr := tbl.RegisterClient("Ana")
		if registerErr != nil {
			return registerErr
		}
		seat, seatErr := tbl.BoundSeatByKey(key)
		if seatErr != nil {
			return seatErr
		}
		o, placeErr := seat.PlaceOrder("milanesa", "Milanesa", 1200, 1, now)
		if placeErr != nil {
			return placeErr
		}
		if noteErr := o.AddNote("sin sal", now); noteErr != nil {
			return noteErr
		}
		_, sendErr := tbl.SendPendingToKitchen(now.Add(time.Minute))
		return sendErr
	})
	require.NoError(t, err)

	// Reopen from the same file and verify the full state survived.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	reopened, err := jsonstore.NewStore(path, logger)
	require.NoError(t, err)

	tbl, err := reopened.Get(context.Background(), "table-1")
	require.NoError(t, err)
	assert.Equal(t, table.Occupied, tbl.Status())
	assert.Equal(t, "token-1", tbl.AccessToken())

	seat, err := tbl.BoundSeatByKey("seat-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", seat.ClientName())
	require.Len(t, seat.Orders(), 1)

	o := seat.Orders()[0]
	assert.Equal(t, order.SentToKitchen, o.Status())
	assert.Equal(t, 1200, o.UnitPrice())
	require.Len(t, o.Notes(), 1)
	assert.Equal(t, "sin sal", o.Notes()[0].Text())
	assert.Len(t, o.History(), 2)
}

func TestStoreSeed(t *testing.T) {
	t.Run("should not overwrite existing tables", func(t *testing.T) {
		store, _ := newTestStore(t)
		seedOneTable(t, store, 4)

		err := store.WithTable(context.Background(), "table-1", func(tbl *table.Table) error {
			_, registerErr := tbl.RegisterClient("Ana")
			return registerErr
		})
		require.NoError(t, err)

		replacement, err := table.NewTable("table-1", "Mesa 1", "other-token", 4)
		require.NoError(t, err)
		require.NoError(t, store.Seed(context.Background(), []*table.Table{replacement}))

		tbl, err := store.Get(context.Background(), "table-1")
		require.NoError(t, err)
		assert.Equal(t, "token-1", tbl.AccessToken())
		assert.Len(t, tbl.OccupiedSeats(), 1)
	})
}

func TestStoreGet(t *testing.T) {
	store, _ := newTestStore(t)
	seedOneTable(t, store, 4)

	t.Run("should return isolated snapshots", func(t *testing.T) {
		snapshot, err := store.Get(context.Background(), "table-1")
		require.NoError(t, err)

		_, err = snapshot.RegisterClient("Ana")
		require.NoError(t, err)

		fresh, err := store.Get(context.Background(), "table-1")
		require.NoError(t, err)
		assert.Empty(t, fresh.OccupiedSeats())
	})

	t.Run("should report NotFound for unknown ids", func(t *testing.T) {
		_, err := store.Get(context.Background(), "table-99")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestStoreFindByAccessToken(t *testing.T) {
	store, _ := newTestStore(t)
	seedOneTable(t, store, 4)

	tbl, err := store.FindByAccessToken(context.Background(), "token-1")
	require.NoError(t, err)
	assert.Equal(t, "table-1", tbl.ID())

	_, err = store.FindByAccessToken(context.Background(), "wrong")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestStoreWithTable(t *testing.T) {
	t.Run("should keep previous state when fn fails", func(t *testing.T) {
		store, _ := newTestStore(t)
		seedOneTable(t, store, 4)

		boom := errors.New("boom")
		err := store.WithTable(context.Background(), "table-1", func(tbl *table.Table) error {
			_, registerErr := tbl.RegisterClient("Ana")
			if registerErr != nil {
				return registerErr
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		tbl, err := store.Get(context.Background(), "table-1")
		require.NoError(t, err)
		assert.Empty(t, tbl.OccupiedSeats())
	})

	t.Run("should report NotFound for unknown table", func(t *testing.T) {
		store, _ := newTestStore(t)
		err := store.WithTable(context.Background(), "table-1", func(*table.Table) error { return nil })
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should not lose concurrent updates", func(t *testing.T) {
		store, _ := newTestStore(t)
		seedOneTable(t, store, 1)

		require.NoError(t, store.WithTable(context.Background(), "table-1", func(tbl *table.Table) error {
			_, registerErr := tbl.RegisterClient("Ana")
			return registerErr
		}))

		const workers = 16
		now := time.Date(2025, 3, 14, 20, 0, 0, 0, time.UTC)
		var wg sync.WaitGroup
		errCh := make(chan error, workers)

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				errCh <- store.WithTable(context.Background(), "table-1", func(tbl *table.Table) error {
					seat, seatErr := tbl.BoundSeatByKey("seat-1")
					if seatErr != nil {
						return seatErr
					}
					_, placeErr := seat.PlaceOrder(
						fmt.Sprintf("dish-%d", n), fmt.Sprintf("Dish %d", n), 100, 1, now)
					return placeErr
				})
			}(i)
		}
		wg.Wait()
		close(errCh)
		for err := range errCh {
			require.NoError(t, err)
		}

		tbl, err := store.Get(context.Background(), "table-1")
		require.NoError(t, err)
		seat, err := tbl.BoundSeatByKey("seat-1")
		require.NoError(t, err)
		assert.Len(t, seat.Orders(), workers)
	})
}

func TestStoreLegacyMigration(t *testing.T) {
	t.Run("should migrate single note field and missing history", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tables.json")
		legacy := `{
  "tables": {
    "table-1": {
      "id": "table-1",
      "name": "Mesa 1",
      "access_token": "token-1",
      "capacity": 1,
      "status": "Occupied",
      "seats": [
        {
          "position": 1,
          "client": "Ana",
          "next_seq": 2,
          "orders": [
            {
              "id": "1741982400-1-1",
              "dish_id": "milanesa",
              "name": "Milanesa",
              "unit_price": 1200,
              "quantity": 1,
              "created_at": "2025-03-14T20:00:00Z",
              "status": "SentToKitchen",
              "note": "sin sal"
            }
          ]
        }
      ]
    }
  }
}`
		require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		store, err := jsonstore.NewStore(path, logger)
		require.NoError(t, err)

		tbl, err := store.Get(context.Background(), "table-1")
		require.NoError(t, err)
		seat, err := tbl.BoundSeatByKey("seat-1")
		require.NoError(t, err)
		require.Len(t, seat.Orders(), 1)

		o := seat.Orders()[0]
		require.Len(t, o.Notes(), 1)
		assert.Equal(t, "sin sal", o.Notes()[0].Text())
		require.Len(t, o.History(), 1)
		assert.Equal(t, order.SentToKitchen, o.History()[0].Status)
	})

	t.Run("should reject corrupt store files", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tables.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		_, err := jsonstore.NewStore(path, logger)
		require.ErrorIs(t, err, errs.ErrPersistenceFailure)
	})
}
