package queries

import (
	"context"

	"restaurant/internal/core/ports"
)

// GetTableByTokenQueryHandler resolves access tokens to tables.
type GetTableByTokenQueryHandler struct {
	store ports.TableStore
}

// NewGetTableByTokenQueryHandler creates a handler for token resolution.
func NewGetTableByTokenQueryHandler(store ports.TableStore) GetTableByTokenQueryHandler {
	return GetTableByTokenQueryHandler{store: store}
}

// Handle executes the query. An unknown token reports NotFound without
// revealing which tokens exist.
func (h GetTableByTokenQueryHandler) Handle(ctx context.Context, query GetTableByTokenQuery) (TableResponse, error) {
	if err := query.Validate(); err != nil {
		return TableResponse{}, err
	}

	t, err := h.store.FindByAccessToken(ctx, query.AccessToken())
	if err != nil {
		return TableResponse{}, err
	}
	return newTableResponse(t), nil
}
