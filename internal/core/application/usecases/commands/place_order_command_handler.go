package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
)

// PlaceOrderCommandHandler adds orders to seated clients.
// The dish is resolved against the menu catalog before the table is
// touched, so an unknown dish never costs a store write.
type PlaceOrderCommandHandler struct {
	store   ports.TableStore
	catalog ports.MenuCatalog
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(store ports.TableStore, catalog ports.MenuCatalog) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{store: store, catalog: catalog}
}

// Handle processes the placement and returns the new order's id.
// The order starts Pending and stays cancellable until the seat's pending
// orders are sent to the kitchen.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	dish, err := h.catalog.Resolve(cmd.DishID())
	if err != nil {
		return "", err
	}

	var orderID string
	err = h.store.WithTable(ctx, cmd.TableID(), func(t *table.Table) error {
		seat, seatErr := t.BoundSeatByKey(cmd.SeatKey())
		if seatErr != nil {
			return seatErr
		}

		placed, placeErr := seat.PlaceOrder(dish.ID, dish.Name, dish.UnitPrice, cmd.Quantity(), time.Now().UTC())
		if placeErr != nil {
			return placeErr
		}
		orderID = placed.ID()
		return nil
	})
	if err != nil {
		return "", err
	}

	return orderID, nil
}
