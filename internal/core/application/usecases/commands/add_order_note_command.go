package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var (
	ErrAddOrderNoteCommandIsNotConstructed = errors.New(
		"AddOrderNoteCommand must be created via NewAddOrderNoteCommand constructor",
	)
	ErrNoteTextIsRequired = errors.New("note text is required")
)

// AddOrderNoteCommand represents a request to attach a free-text note to an
// order ("sin sal"). Notes can still be added after the order is sent to
// the kitchen.
type AddOrderNoteCommand struct { //nolint:recvcheck //using for validation
	tableID string
	seatKey string
	orderID string
	text    string

	guard guard.ConstructorGuard
}

// NewAddOrderNoteCommand creates a command to annotate an order.
func NewAddOrderNoteCommand(tableID, seatKey, orderID, text string) (AddOrderNoteCommand, error) {
	cmd := AddOrderNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setSeatKey(seatKey),
		cmd.setOrderID(orderID),
		cmd.setText(text),
	); err != nil {
		return AddOrderNoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderNoteCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderNoteCommandIsNotConstructed)
}

// TableID returns the target table identifier.
func (c AddOrderNoteCommand) TableID() string {
	return c.tableID
}

// SeatKey returns the annotating client's seat key.
func (c AddOrderNoteCommand) SeatKey() string {
	return c.seatKey
}

// OrderID returns the id of the order to annotate.
func (c AddOrderNoteCommand) OrderID() string {
	return c.orderID
}

// Text returns the note text.
func (c AddOrderNoteCommand) Text() string {
	return c.text
}

func (c *AddOrderNoteCommand) setTableID(tableID string) error {
	if tableID == "" {
		return ErrTableIDIsRequired
	}

	c.tableID = tableID
	return nil
}

func (c *AddOrderNoteCommand) setSeatKey(seatKey string) error {
	if seatKey == "" {
		return ErrSeatKeyIsRequired
	}

	c.seatKey = seatKey
	return nil
}

func (c *AddOrderNoteCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderNoteCommand) setText(text string) error {
	if text == "" {
		return ErrNoteTextIsRequired
	}

	c.text = text
	return nil
}
