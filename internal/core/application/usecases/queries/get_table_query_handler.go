package queries

import (
	"context"

	"restaurant/internal/core/ports"
)

// GetTableQueryHandler serves the full table read model from store
// snapshots.
type GetTableQueryHandler struct {
	store ports.TableStore
}

// NewGetTableQueryHandler creates a handler for table retrieval.
func NewGetTableQueryHandler(store ports.TableStore) GetTableQueryHandler {
	return GetTableQueryHandler{store: store}
}

// Handle executes the query.
func (h GetTableQueryHandler) Handle(ctx context.Context, query GetTableQuery) (TableResponse, error) {
	if err := query.Validate(); err != nil {
		return TableResponse{}, err
	}

	t, err := h.store.Get(ctx, query.TableID())
	if err != nil {
		return TableResponse{}, err
	}
	return newTableResponse(t), nil
}
