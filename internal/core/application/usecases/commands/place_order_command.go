package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrSeatKeyIsRequired = errors.New("seat key is required")
	ErrDishIDIsRequired  = errors.New("dish id is required")
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// PlaceOrderCommand represents a request to add a dish to a seated client's
// order list. The dish name and price are resolved against the menu catalog
// and snapshotted onto the order at placement time.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand("table-1", "seat-1", "milanesa", 2)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(store, catalog)
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed, pending until sent to kitchen", orderID)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	tableID  string
	seatKey  string
	dishID   string
	quantity int

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// Validates that the table id, seat key, and dish id are not empty and the
// quantity is positive.
func NewPlaceOrderCommand(tableID, seatKey, dishID string, quantity int) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setSeatKey(seatKey),
		cmd.setDishID(dishID),
		cmd.setQuantity(quantity),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// TableID returns the target table identifier.
func (c PlaceOrderCommand) TableID() string {
	return c.tableID
}

// SeatKey returns the ordering client's seat key.
func (c PlaceOrderCommand) SeatKey() string {
	return c.seatKey
}

// DishID returns the menu id of the dish being ordered.
func (c PlaceOrderCommand) DishID() string {
	return c.dishID
}

// Quantity returns how many units are being ordered.
func (c PlaceOrderCommand) Quantity() int {
	return c.quantity
}

func (c *PlaceOrderCommand) setTableID(tableID string) error {
	if tableID == "" {
		return ErrTableIDIsRequired
	}

	c.tableID = tableID
	return nil
}

func (c *PlaceOrderCommand) setSeatKey(seatKey string) error {
	if seatKey == "" {
		return ErrSeatKeyIsRequired
	}

	c.seatKey = seatKey
	return nil
}

func (c *PlaceOrderCommand) setDishID(dishID string) error {
	if dishID == "" {
		return ErrDishIDIsRequired
	}

	c.dishID = dishID
	return nil
}

func (c *PlaceOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
