package commands

import (
	"context"

	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
)

// RegisterClientCommandHandler seats clients at tables.
// A full table rejects new names with CapacityExceeded and never displaces
// anyone already seated.
type RegisterClientCommandHandler struct {
	store ports.TableStore
}

// NewRegisterClientCommandHandler creates a handler for client registration.
func NewRegisterClientCommandHandler(store ports.TableStore) RegisterClientCommandHandler {
	return RegisterClientCommandHandler{store: store}
}

// Handle processes the registration and returns the seat key the client is
// bound to. Returning clients get their existing seat key back.
func (h RegisterClientCommandHandler) Handle(ctx context.Context, cmd RegisterClientCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	var seatKey string
	err := h.store.WithTable(ctx, cmd.TableID(), func(t *table.Table) error {
		key, registerErr := t.RegisterClient(cmd.ClientName())
		if registerErr != nil {
			return registerErr
		}
		seatKey = key
		return nil
	})
	if err != nil {
		return "", err
	}

	return seatKey, nil
}
