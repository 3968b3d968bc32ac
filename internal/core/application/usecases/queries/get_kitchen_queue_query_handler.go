package queries

import (
	"context"
	"sort"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
)

// GetKitchenQueueQueryHandler serves the kitchen work queue.
type GetKitchenQueueQueryHandler struct {
	store ports.TableStore
}

// NewGetKitchenQueueQueryHandler creates a handler for the kitchen queue.
func NewGetKitchenQueueQueryHandler(store ports.TableStore) GetKitchenQueueQueryHandler {
	return GetKitchenQueueQueryHandler{store: store}
}

// Handle executes the query. Orders come back oldest state change first, so
// the top of the queue is always the order waiting longest.
func (h GetKitchenQueueQueryHandler) Handle(ctx context.Context, query GetKitchenQueueQuery) ([]KitchenOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries, err := collectKitchenOrders(ctx, h.store, func(s order.Status) bool {
		return s == order.SentToKitchen || s == order.InPreparation
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// collectKitchenOrders gathers orders matching the status filter across all
// tables, sorted by the time of their last state change.
func collectKitchenOrders(
	ctx context.Context,
	store ports.TableStore,
	match func(order.Status) bool,
) ([]KitchenOrderResponse, error) {
	tables, err := store.All(ctx)
	if err != nil {
		return nil, err
	}

	var entries []KitchenOrderResponse
	for _, t := range tables {
		for _, seat := range t.OccupiedSeats() {
			for _, o := range seat.Orders() {
				if !match(o.Status()) {
					continue
				}
				entries = append(entries, newKitchenOrderResponse(t, seat, o))
			}
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LastChangeAt.Before(entries[j].LastChangeAt)
	})
	return entries, nil
}

func newKitchenOrderResponse(t *table.Table, seat *table.Seat, o *order.Order) KitchenOrderResponse {
	entry := KitchenOrderResponse{
		TableID:      t.ID(),
		TableName:    t.Name(),
		SeatKey:      seat.Key(),
		ClientName:   seat.ClientName(),
		OrderID:      o.ID(),
		DishName:     o.Name(),
		Quantity:     o.Quantity(),
		Status:       o.Status().String(),
		StatusLabel:  o.Status().Label(),
		DelayMinutes: o.DelayMinutes(),
	}
	for _, n := range o.Notes() {
		entry.Notes = append(entry.Notes, n.Text())
	}

	history := o.History()
	entry.LastChangeAt = history[len(history)-1].At
	return entry
}
