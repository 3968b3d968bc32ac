package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrSendToKitchenCommandIsNotConstructed = errors.New(
	"SendToKitchenCommand must be created via NewSendToKitchenCommand constructor",
)

// SendToKitchenCommand represents a request to confirm every Pending order
// on a table to the kitchen in one batch. After the send the orders can no
// longer be cancelled.
type SendToKitchenCommand struct { //nolint:recvcheck //using for validation
	tableID string

	guard guard.ConstructorGuard
}

// NewSendToKitchenCommand creates a command to send a table's pending
// orders to the kitchen.
func NewSendToKitchenCommand(tableID string) (SendToKitchenCommand, error) {
	cmd := SendToKitchenCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTableID(tableID); err != nil {
		return SendToKitchenCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendToKitchenCommand) Validate() error {
	return c.guard.Validate(ErrSendToKitchenCommandIsNotConstructed)
}

// TableID returns the target table identifier.
func (c SendToKitchenCommand) TableID() string {
	return c.tableID
}

func (c *SendToKitchenCommand) setTableID(tableID string) error {
	if tableID == "" {
		return ErrTableIDIsRequired
	}

	c.tableID = tableID
	return nil
}
