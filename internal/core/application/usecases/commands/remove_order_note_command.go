package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var (
	ErrRemoveOrderNoteCommandIsNotConstructed = errors.New(
		"RemoveOrderNoteCommand must be created via NewRemoveOrderNoteCommand constructor",
	)
	ErrNoteIndexIsInvalid = errors.New("note index must not be negative")
)

// RemoveOrderNoteCommand represents a request to delete one note from an
// order by its zero-based position.
type RemoveOrderNoteCommand struct { //nolint:recvcheck //using for validation
	tableID   string
	seatKey   string
	orderID   string
	noteIndex int

	guard guard.ConstructorGuard
}

// NewRemoveOrderNoteCommand creates a command to remove a note.
func NewRemoveOrderNoteCommand(tableID, seatKey, orderID string, noteIndex int) (RemoveOrderNoteCommand, error) {
	cmd := RemoveOrderNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setSeatKey(seatKey),
		cmd.setOrderID(orderID),
		cmd.setNoteIndex(noteIndex),
	); err != nil {
		return RemoveOrderNoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderNoteCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderNoteCommandIsNotConstructed)
}

// TableID returns the target table identifier.
func (c RemoveOrderNoteCommand) TableID() string {
	return c.tableID
}

// SeatKey returns the client's seat key.
func (c RemoveOrderNoteCommand) SeatKey() string {
	return c.seatKey
}

// OrderID returns the id of the annotated order.
func (c RemoveOrderNoteCommand) OrderID() string {
	return c.orderID
}

// NoteIndex returns the zero-based position of the note to remove.
func (c RemoveOrderNoteCommand) NoteIndex() int {
	return c.noteIndex
}

func (c *RemoveOrderNoteCommand) setTableID(tableID string) error {
	if tableID == "" {
		return ErrTableIDIsRequired
	}

	c.tableID = tableID
	return nil
}

func (c *RemoveOrderNoteCommand) setSeatKey(seatKey string) error {
	if seatKey == "" {
		return ErrSeatKeyIsRequired
	}

	c.seatKey = seatKey
	return nil
}

func (c *RemoveOrderNoteCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveOrderNoteCommand) setNoteIndex(noteIndex int) error {
	if noteIndex < 0 {
		return ErrNoteIndexIsInvalid
	}

	c.noteIndex = noteIndex
	return nil
}
