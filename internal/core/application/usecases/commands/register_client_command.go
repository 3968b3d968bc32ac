// Package commands contains write operations that mutate table state.
// Implements the Command pattern for the CQRS architecture: each command is
// a validated, immutable request object with a dedicated handler that runs
// the mutation through the table store.
package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var (
	ErrRegisterClientCommandIsNotConstructed = errors.New(
		"RegisterClientCommand must be created via NewRegisterClientCommand constructor",
	)
	ErrTableIDIsRequired    = errors.New("table id is required")
	ErrClientNameIsRequired = errors.New("client name is required")
)

// RegisterClientCommand represents a request to seat a client at a table.
// Re-entry with a name already seated at the table is idempotent and
// returns the same seat.
//
// Example:
//
//	cmd, err := NewRegisterClientCommand("table-1", "Ana")
//	if err != nil {
//	    return fmt.Errorf("invalid registration: %w", err)
//	}
//
//	handler := NewRegisterClientCommandHandler(store)
//	seatKey, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to seat client: %w", err)
//	}
//	fmt.Printf("Ana is seated at %s", seatKey)
type RegisterClientCommand struct { //nolint:recvcheck //using for validation
	tableID    string
	clientName string

	guard guard.ConstructorGuard
}

// NewRegisterClientCommand creates a command to seat a client.
// Validates that the table id and client name are not empty.
func NewRegisterClientCommand(tableID, clientName string) (RegisterClientCommand, error) {
	cmd := RegisterClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setClientName(clientName),
	); err != nil {
		return RegisterClientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterClientCommand) Validate() error {
	return c.guard.Validate(ErrRegisterClientCommandIsNotConstructed)
}

// TableID returns the target table identifier.
func (c RegisterClientCommand) TableID() string {
	return c.tableID
}

// ClientName returns the name the client registered under.
func (c RegisterClientCommand) ClientName() string {
	return c.clientName
}

func (c *RegisterClientCommand) setTableID(tableID string) error {
	if tableID == "" {
		return ErrTableIDIsRequired
	}

	c.tableID = tableID
	return nil
}

func (c *RegisterClientCommand) setClientName(clientName string) error {
	if clientName == "" {
		return ErrClientNameIsRequired
	}

	c.clientName = clientName
	return nil
}
