package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents a waiter's confirmation that a
// ReadyToServe order reached the table.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	tableID string
	orderID string

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to mark an order delivered.
func NewMarkDeliveredCommand(tableID, orderID string) (MarkDeliveredCommand, error) {
	cmd := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setOrderID(orderID),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// TableID returns the target table identifier.
func (c MarkDeliveredCommand) TableID() string {
	return c.tableID
}

// OrderID returns the id of the delivered order.
func (c MarkDeliveredCommand) OrderID() string {
	return c.orderID
}

func (c *MarkDeliveredCommand) setTableID(tableID string) error {
	if tableID == "" {
		return ErrTableIDIsRequired
	}

	c.tableID = tableID
	return nil
}

func (c *MarkDeliveredCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}
