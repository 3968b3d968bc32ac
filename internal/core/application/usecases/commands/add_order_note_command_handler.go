package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
)

// AddOrderNoteCommandHandler attaches notes to a client's orders.
type AddOrderNoteCommandHandler struct {
	store ports.TableStore
}

// NewAddOrderNoteCommandHandler creates a handler for note addition.
func NewAddOrderNoteCommandHandler(store ports.TableStore) AddOrderNoteCommandHandler {
	return AddOrderNoteCommandHandler{store: store}
}

// Handle processes the note addition.
func (h AddOrderNoteCommandHandler) Handle(ctx context.Context, cmd AddOrderNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.store.WithTable(ctx, cmd.TableID(), func(t *table.Table) error {
		seat, err := t.BoundSeatByKey(cmd.SeatKey())
		if err != nil {
			return err
		}

		o, err := seat.OrderByID(cmd.OrderID())
		if err != nil {
			return err
		}
		return o.AddNote(cmd.Text(), time.Now().UTC())
	})
}
