package commands

import (
	"context"

	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
)

// ResolveRequestCommandHandler flags waiter requests as handled.
type ResolveRequestCommandHandler struct {
	store ports.TableStore
}

// NewResolveRequestCommandHandler creates a handler for request resolution.
func NewResolveRequestCommandHandler(store ports.TableStore) ResolveRequestCommandHandler {
	return ResolveRequestCommandHandler{store: store}
}

// Handle processes the resolution.
func (h ResolveRequestCommandHandler) Handle(ctx context.Context, cmd ResolveRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.store.WithTable(ctx, cmd.TableID(), func(t *table.Table) error {
		return t.ResolveRequest(cmd.ClientName(), cmd.Message())
	})
}
