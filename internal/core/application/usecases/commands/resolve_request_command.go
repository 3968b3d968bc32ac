package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrResolveRequestCommandIsNotConstructed = errors.New(
	"ResolveRequestCommand must be created via NewResolveRequestCommand constructor",
)

// ResolveRequestCommand represents a waiter marking a request handled.
// Requests are matched by exact client and message; resolved requests stay
// on the table, flagged, until the table resets.
type ResolveRequestCommand struct { //nolint:recvcheck //using for validation
	tableID    string
	clientName string
	message    string

	guard guard.ConstructorGuard
}

// NewResolveRequestCommand creates a command to resolve a waiter request.
func NewResolveRequestCommand(tableID, clientName, message string) (ResolveRequestCommand, error) {
	cmd := ResolveRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setClientName(clientName),
		cmd.setMessage(message),
	); err != nil {
		return ResolveRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveRequestCommand) Validate() error {
	return c.guard.Validate(ErrResolveRequestCommandIsNotConstructed)
}

// TableID returns the target table identifier.
func (c ResolveRequestCommand) TableID() string {
	return c.tableID
}

// ClientName returns the name of the client who raised the request.
func (c ResolveRequestCommand) ClientName() string {
	return c.clientName
}

// Message returns the request text to match.
func (c ResolveRequestCommand) Message() string {
	return c.message
}

func (c *ResolveRequestCommand) setTableID(tableID string) error {
	if tableID == "" {
		return ErrTableIDIsRequired
	}

	c.tableID = tableID
	return nil
}

func (c *ResolveRequestCommand) setClientName(clientName string) error {
	if clientName == "" {
		return ErrClientNameIsRequired
	}

	c.clientName = clientName
	return nil
}

func (c *ResolveRequestCommand) setMessage(message string) error {
	if message == "" {
		return ErrRequestMessageIsRequired
	}

	c.message = message
	return nil
}
