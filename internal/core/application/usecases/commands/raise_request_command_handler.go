package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
)

// RaiseRequestCommandHandler records waiter requests from seated clients.
type RaiseRequestCommandHandler struct {
	store ports.TableStore
}

// NewRaiseRequestCommandHandler creates a handler for waiter requests.
func NewRaiseRequestCommandHandler(store ports.TableStore) RaiseRequestCommandHandler {
	return RaiseRequestCommandHandler{store: store}
}

// Handle processes the request. Only seated clients can page the waiter.
func (h RaiseRequestCommandHandler) Handle(ctx context.Context, cmd RaiseRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.store.WithTable(ctx, cmd.TableID(), func(t *table.Table) error {
		return t.RaiseRequest(cmd.ClientName(), cmd.Message(), time.Now().UTC())
	})
}
