package ports

import (
	"context"

	"restaurant/internal/core/domain/model/table"
)

// TableStore defines the persistence contract for table aggregates.
// All tables live in one canonical store that is flushed atomically after
// every successful mutation, so readers never observe a half-written state.
type TableStore interface {
	// Get retrieves a snapshot of the table with the given id.
	// The snapshot is a deep clone; mutating it does not affect the store.
	Get(ctx context.Context, id string) (*table.Table, error)

	// FindByAccessToken retrieves a snapshot of the table whose access
	// token matches. Used to resolve client-facing links to a table.
	FindByAccessToken(ctx context.Context, token string) (*table.Table, error)

	// All retrieves snapshots of every table, ordered by id.
	All(ctx context.Context) ([]*table.Table, error)

	// WithTable runs fn against a clone of the table with the given id and,
	// if fn succeeds, persists the clone and makes it the current state.
	// If fn or persistence fails the previous state is kept untouched.
	// Mutations of the same table are serialized; different tables proceed
	// concurrently.
	WithTable(ctx context.Context, id string, fn func(t *table.Table) error) error
}
