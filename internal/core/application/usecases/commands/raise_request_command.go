package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var (
	ErrRaiseRequestCommandIsNotConstructed = errors.New(
		"RaiseRequestCommand must be created via NewRaiseRequestCommand constructor",
	)
	ErrRequestMessageIsRequired = errors.New("request message is required")
)

// RaiseRequestCommand represents a seated client paging the waiter with a
// free-text message.
type RaiseRequestCommand struct { //nolint:recvcheck //using for validation
	tableID    string
	clientName string
	message    string

	guard guard.ConstructorGuard
}

// NewRaiseRequestCommand creates a command to raise a waiter request.
func NewRaiseRequestCommand(tableID, clientName, message string) (RaiseRequestCommand, error) {
	cmd := RaiseRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setClientName(clientName),
		cmd.setMessage(message),
	); err != nil {
		return RaiseRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RaiseRequestCommand) Validate() error {
	return c.guard.Validate(ErrRaiseRequestCommandIsNotConstructed)
}

// TableID returns the target table identifier.
func (c RaiseRequestCommand) TableID() string {
	return c.tableID
}

// ClientName returns the requesting client's name.
func (c RaiseRequestCommand) ClientName() string {
	return c.clientName
}

// Message returns the request text.
func (c RaiseRequestCommand) Message() string {
	return c.message
}

func (c *RaiseRequestCommand) setTableID(tableID string) error {
	if tableID == "" {
		return ErrTableIDIsRequired
	}

	c.tableID = tableID
	return nil
}

func (c *RaiseRequestCommand) setClientName(clientName string) error {
	if clientName == "" {
		return ErrClientNameIsRequired
	}

	c.clientName = clientName
	return nil
}

func (c *RaiseRequestCommand) setMessage(message string) error {
	if message == "" {
		return ErrRequestMessageIsRequired
	}

	c.message = message
	return nil
}
