package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
)

// MarkDeliveredCommandHandler records waiter deliveries.
type MarkDeliveredCommandHandler struct {
	store ports.TableStore
}

// NewMarkDeliveredCommandHandler creates a handler for deliveries.
func NewMarkDeliveredCommandHandler(store ports.TableStore) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{store: store}
}

// Handle processes the delivery confirmation.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.store.WithTable(ctx, cmd.TableID(), func(t *table.Table) error {
		o, _, err := t.FindOrder(cmd.OrderID())
		if err != nil {
			return err
		}
		return o.Deliver(time.Now().UTC())
	})
}
