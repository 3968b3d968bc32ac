package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var (
	ErrAnnotateDelayCommandIsNotConstructed = errors.New(
		"AnnotateDelayCommand must be created via NewAnnotateDelayCommand constructor",
	)
	ErrDelayMinutesIsInvalid = errors.New("delay minutes must be greater than 0")
)

// AnnotateDelayCommand represents a kitchen estimate that an order will
// take longer than usual. The annotation is informational and never changes
// the order's status.
type AnnotateDelayCommand struct { //nolint:recvcheck //using for validation
	tableID string
	orderID string
	minutes int

	guard guard.ConstructorGuard
}

// NewAnnotateDelayCommand creates a command to flag an order delay.
func NewAnnotateDelayCommand(tableID, orderID string, minutes int) (AnnotateDelayCommand, error) {
	cmd := AnnotateDelayCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setOrderID(orderID),
		cmd.setMinutes(minutes),
	); err != nil {
		return AnnotateDelayCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AnnotateDelayCommand) Validate() error {
	return c.guard.Validate(ErrAnnotateDelayCommandIsNotConstructed)
}

// TableID returns the target table identifier.
func (c AnnotateDelayCommand) TableID() string {
	return c.tableID
}

// OrderID returns the id of the delayed order.
func (c AnnotateDelayCommand) OrderID() string {
	return c.orderID
}

// Minutes returns the estimated delay in minutes.
func (c AnnotateDelayCommand) Minutes() int {
	return c.minutes
}

func (c *AnnotateDelayCommand) setTableID(tableID string) error {
	if tableID == "" {
		return ErrTableIDIsRequired
	}

	c.tableID = tableID
	return nil
}

func (c *AnnotateDelayCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *AnnotateDelayCommand) setMinutes(minutes int) error {
	if minutes <= 0 {
		return ErrDelayMinutesIsInvalid
	}

	c.minutes = minutes
	return nil
}
