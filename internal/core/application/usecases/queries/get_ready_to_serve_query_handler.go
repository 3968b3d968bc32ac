package queries

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// GetReadyToServeQueryHandler serves the waiters' pickup list.
type GetReadyToServeQueryHandler struct {
	store ports.TableStore
}

// NewGetReadyToServeQueryHandler creates a handler for the pickup list.
func NewGetReadyToServeQueryHandler(store ports.TableStore) GetReadyToServeQueryHandler {
	return GetReadyToServeQueryHandler{store: store}
}

// Handle executes the query, oldest ready order first.
func (h GetReadyToServeQueryHandler) Handle(ctx context.Context, query GetReadyToServeQuery) ([]KitchenOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return collectKitchenOrders(ctx, h.store, func(s order.Status) bool {
		return s == order.ReadyToServe
	})
}
