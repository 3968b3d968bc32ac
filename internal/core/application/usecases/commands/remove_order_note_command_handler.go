package commands

import (
	"context"

	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
)

// RemoveOrderNoteCommandHandler deletes notes from a client's orders.
type RemoveOrderNoteCommandHandler struct {
	store ports.TableStore
}

// NewRemoveOrderNoteCommandHandler creates a handler for note removal.
func NewRemoveOrderNoteCommandHandler(store ports.TableStore) RemoveOrderNoteCommandHandler {
	return RemoveOrderNoteCommandHandler{store: store}
}

// Handle processes the note removal.
func (h RemoveOrderNoteCommandHandler) Handle(ctx context.Context, cmd RemoveOrderNoteCommand) error {
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
		return o.RemoveNote(cmd.NoteIndex())
	})
}
