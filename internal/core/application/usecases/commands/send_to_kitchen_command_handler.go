package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
)

// SendToKitchenCommandHandler confirms a table's pending orders to the
// kitchen. The batch is all-or-nothing: when no pending orders exist the
// send fails with PreconditionFailed and nothing changes.
type SendToKitchenCommandHandler struct {
	store ports.TableStore
}

// NewSendToKitchenCommandHandler creates a handler for the batch send.
func NewSendToKitchenCommandHandler(store ports.TableStore) SendToKitchenCommandHandler {
	return SendToKitchenCommandHandler{store: store}
}

// Handle processes the batch send and returns summaries of every order
// confirmed to the kitchen.
func (h SendToKitchenCommandHandler) Handle(ctx context.Context, cmd SendToKitchenCommand) ([]table.SentOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var sent []table.SentOrder
	err := h.store.WithTable(ctx, cmd.TableID(), func(t *table.Table) error {
		confirmed, sendErr := t.SendPendingToKitchen(time.Now().UTC())
		if sendErr != nil {
			return sendErr
		}
		sent = confirmed
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sent, nil
}
