package commands

import (
	"context"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
)

// AdvanceKitchenStateCommandHandler moves orders through the kitchen. When
// an order becomes ReadyToServe a kitchen notification is appended to the
// table so the client sees it on their next refresh.
type AdvanceKitchenStateCommandHandler struct {
	store ports.TableStore
}

// NewAdvanceKitchenStateCommandHandler creates a handler for kitchen
// transitions.
func NewAdvanceKitchenStateCommandHandler(store ports.TableStore) AdvanceKitchenStateCommandHandler {
	return AdvanceKitchenStateCommandHandler{store: store}
}

// Handle processes the kitchen transition. Skipping a step (for example
// marking a SentToKitchen order ready) fails with InvalidTransition.
func (h AdvanceKitchenStateCommandHandler) Handle(ctx context.Context, cmd AdvanceKitchenStateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	return h.store.WithTable(ctx, cmd.TableID(), func(t *table.Table) error {
		o, _, err := t.FindOrder(cmd.OrderID())
		if err != nil {
			return err
		}

		switch cmd.Target() {
		case order.InPreparation:
			return o.StartPreparation(now)
		case order.ReadyToServe:
			if err = o.MarkReady(now); err != nil {
				return err
			}
			return t.AppendNotification(
				fmt.Sprintf("%s is ready to serve", o.Name()),
				table.NotificationKitchen, now)
		default:
			return ErrTargetStatusIsInvalid
		}
	})
}
