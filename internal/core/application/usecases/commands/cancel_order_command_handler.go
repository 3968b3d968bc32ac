package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
)

// CancelOrderCommandHandler cancels Pending orders. A cancelled order moves
// into the seat's cancelled archive; a second cancel of the same id reports
// NotFound.
type CancelOrderCommandHandler struct {
	store ports.TableStore
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(store ports.TableStore) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{store: store}
}

// Handle processes the cancellation.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.store.WithTable(ctx, cmd.TableID(), func(t *table.Table) error {
		seat, err := t.BoundSeatByKey(cmd.SeatKey())
		if err != nil {
			return err
		}
		return seat.CancelOrder(cmd.OrderID(), time.Now().UTC())
	})
}
