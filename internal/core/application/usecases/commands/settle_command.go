package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/pkg/guard"
)

var (
	ErrSettleCommandIsNotConstructed = errors.New(
		"SettleCommand must be created via NewSettleCommand constructor",
	)
	ErrSeatKeyIsRequiredForIndividual = errors.New("seat key is required for individual settlement")
)

// SettleCommand represents a request to settle a table's bill, either for
// one seat (Individual) or for every occupied seat at once (Group).
//
// Example:
//
//	cmd, err := NewSettleCommand("table-1", payment.Individual, "seat-1")
//	if err != nil {
//	    return fmt.Errorf("invalid settlement: %w", err)
//	}
//
//	handler := NewSettleCommandHandler(store, journal, services.NewSettler())
//	record, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("settlement failed: %w", err)
//	}
//	fmt.Printf("charged %d, record %s journaled", record.Total(), record.ID())
type SettleCommand struct { //nolint:recvcheck //using for validation
	tableID string
	scope   payment.Scope
	seatKey string

	guard guard.ConstructorGuard
}

// NewSettleCommand creates a command to settle a bill. The seat key is
// required for Individual scope and ignored for Group.
func NewSettleCommand(tableID string, scope payment.Scope, seatKey string) (SettleCommand, error) {
	cmd := SettleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setScope(scope, seatKey),
	); err != nil {
		return SettleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SettleCommand) Validate() error {
	return c.guard.Validate(ErrSettleCommandIsNotConstructed)
}

// TableID returns the target table identifier.
func (c SettleCommand) TableID() string {
	return c.tableID
}

// Scope returns whether one seat or the whole table settles.
func (c SettleCommand) Scope() payment.Scope {
	return c.scope
}

// SeatKey returns the settling client's seat key, "" for Group scope.
func (c SettleCommand) SeatKey() string {
	return c.seatKey
}

func (c *SettleCommand) setTableID(tableID string) error {
	if tableID == "" {
		return ErrTableIDIsRequired
	}

	c.tableID = tableID
	return nil
}

func (c *SettleCommand) setScope(scope payment.Scope, seatKey string) error {
	if err := scope.Validate(); err != nil {
		return err
	}
	if scope == payment.Individual && seatKey == "" {
		return ErrSeatKeyIsRequiredForIndividual
	}

	c.scope = scope
	c.seatKey = seatKey
	return nil
}
