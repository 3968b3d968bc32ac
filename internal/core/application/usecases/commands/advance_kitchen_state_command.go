package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var (
	ErrAdvanceKitchenStateCommandIsNotConstructed = errors.New(
		"AdvanceKitchenStateCommand must be created via NewAdvanceKitchenStateCommand constructor",
	)
	ErrTargetStatusIsInvalid = errors.New("target status must be InPreparation or ReadyToServe")
)

// AdvanceKitchenStateCommand represents a kitchen staff request to move an
// order one step through the kitchen: SentToKitchen to InPreparation, or
// InPreparation to ReadyToServe. Delivery is a separate waiter action.
type AdvanceKitchenStateCommand struct { //nolint:recvcheck //using for validation
	tableID string
	orderID string
	target  order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceKitchenStateCommand creates a command to advance an order's
// kitchen state. Only InPreparation and ReadyToServe are valid targets.
func NewAdvanceKitchenStateCommand(tableID, orderID string, target order.Status) (AdvanceKitchenStateCommand, error) {
	cmd := AdvanceKitchenStateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceKitchenStateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceKitchenStateCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceKitchenStateCommandIsNotConstructed)
}

// TableID returns the target table identifier.
func (c AdvanceKitchenStateCommand) TableID() string {
	return c.tableID
}

// OrderID returns the id of the order to advance.
func (c AdvanceKitchenStateCommand) OrderID() string {
	return c.orderID
}

// Target returns the status the order should move to.
func (c AdvanceKitchenStateCommand) Target() order.Status {
	return c.target
}

func (c *AdvanceKitchenStateCommand) setTableID(tableID string) error {
	if tableID == "" {
		return ErrTableIDIsRequired
	}

	c.tableID = tableID
	return nil
}

func (c *AdvanceKitchenStateCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceKitchenStateCommand) setTarget(target order.Status) error {
	if target != order.InPreparation && target != order.ReadyToServe {
		return ErrTargetStatusIsInvalid
	}

	c.target = target
	return nil
}
