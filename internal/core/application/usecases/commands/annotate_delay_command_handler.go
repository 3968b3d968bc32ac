package commands

import (
	"context"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
)

// AnnotateDelayCommandHandler flags kitchen delays on orders and notifies
// the table.
type AnnotateDelayCommandHandler struct {
	store ports.TableStore
}

// NewAnnotateDelayCommandHandler creates a handler for delay annotations.
func NewAnnotateDelayCommandHandler(store ports.TableStore) AnnotateDelayCommandHandler {
	return AnnotateDelayCommandHandler{store: store}
}

// Handle processes the delay annotation. Delays can only be flagged while
// the order is actually in the kitchen.
func (h AnnotateDelayCommandHandler) Handle(ctx context.Context, cmd AnnotateDelayCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.store.WithTable(ctx, cmd.TableID(), func(t *table.Table) error {
		o, _, err := t.FindOrder(cmd.OrderID())
		if err != nil {
			return err
		}

		if err = o.AnnotateDelay(cmd.Minutes()); err != nil {
			return err
		}
		return t.AppendNotification(
			fmt.Sprintf("%s is delayed about %d minutes", o.Name(), cmd.Minutes()),
			table.NotificationDelay, time.Now().UTC())
	})
}
