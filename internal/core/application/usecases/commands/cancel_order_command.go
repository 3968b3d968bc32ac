package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
)

// CancelOrderCommand represents a request to cancel a Pending order.
// Orders already sent to the kitchen cannot be cancelled.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	tableID string
	seatKey string
	orderID string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(tableID, seatKey, orderID string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setSeatKey(seatKey),
		cmd.setOrderID(orderID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// TableID returns the target table identifier.
func (c CancelOrderCommand) TableID() string {
	return c.tableID
}

// SeatKey returns the cancelling client's seat key.
func (c CancelOrderCommand) SeatKey() string {
	return c.seatKey
}

// OrderID returns the id of the order to cancel.
func (c CancelOrderCommand) OrderID() string {
	return c.orderID
}

func (c *CancelOrderCommand) setTableID(tableID string) error {
	if tableID == "" {
		return ErrTableIDIsRequired
	}

	c.tableID = tableID
	return nil
}

func (c *CancelOrderCommand) setSeatKey(seatKey string) error {
	if seatKey == "" {
		return ErrSeatKeyIsRequired
	}

	c.seatKey = seatKey
	return nil
}

func (c *CancelOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}
