package queries

import (
	"context"
	"sort"

	"restaurant/internal/core/ports"
)

// GetPendingRequestsQueryHandler serves the unresolved waiter requests.
type GetPendingRequestsQueryHandler struct {
	store ports.TableStore
}

// NewGetPendingRequestsQueryHandler creates a handler for pending requests.
func NewGetPendingRequestsQueryHandler(store ports.TableStore) GetPendingRequestsQueryHandler {
	return GetPendingRequestsQueryHandler{store: store}
}

// Handle executes the query, oldest request first.
func (h GetPendingRequestsQueryHandler) Handle(ctx context.Context, query GetPendingRequestsQuery) ([]PendingRequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables, err := h.store.All(ctx)
	if err != nil {
		return nil, err
	}

	var pending []PendingRequestResponse
	for _, t := range tables {
		for _, r := range t.Requests() {
			if r.Resolved() {
				continue
			}
			pending = append(pending, PendingRequestResponse{
				TableID:    t.ID(),
				TableName:  t.Name(),
				ClientName: r.ClientName(),
				Message:    r.Message(),
				CreatedAt:  r.CreatedAt(),
			})
		}
	}

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	return pending, nil
}
