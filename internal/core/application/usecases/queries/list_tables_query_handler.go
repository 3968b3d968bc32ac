package queries

import (
	"context"

	"restaurant/internal/core/ports"
)

// ListTablesQueryHandler serves the floor view summary.
type ListTablesQueryHandler struct {
	store ports.TableStore
}

// NewListTablesQueryHandler creates a handler for the table list.
func NewListTablesQueryHandler(store ports.TableStore) ListTablesQueryHandler {
	return ListTablesQueryHandler{store: store}
}

// Handle executes the query. Tables come back ordered by id.
func (h ListTablesQueryHandler) Handle(ctx context.Context, query ListTablesQuery) ([]ListTablesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables, err := h.store.All(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]ListTablesQueryResponse, 0, len(tables))
	for _, t := range tables {
		summary := ListTablesQueryResponse{
			ID:       t.ID(),
			Name:     t.Name(),
			Capacity: t.Capacity(),
			Status:   t.Status().String(),
		}
		for _, s := range t.OccupiedSeats() {
			summary.OccupiedSeats++
			summary.ActiveOrders += len(s.Orders())
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
