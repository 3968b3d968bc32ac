package commands

import (
	"errors"
	"time"

	"restaurant/internal/pkg/guard"
)

var (
	ErrFlagDelayedOrdersCommandIsNotConstructed = errors.New(
		"FlagDelayedOrdersCommand must be created via NewFlagDelayedOrdersCommand constructor",
	)
	ErrThresholdIsInvalid = errors.New("threshold must be greater than 0")
)

// FlagDelayedOrdersCommand represents the periodic sweep that flags orders
// stuck in the kitchen longer than the threshold. Run by the delay watch
// job rather than a user.
type FlagDelayedOrdersCommand struct { //nolint:recvcheck //using for validation
	threshold time.Duration

	guard guard.ConstructorGuard
}

// NewFlagDelayedOrdersCommand creates a command for the delay sweep.
func NewFlagDelayedOrdersCommand(threshold time.Duration) (FlagDelayedOrdersCommand, error) {
	cmd := FlagDelayedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setThreshold(threshold); err != nil {
		return FlagDelayedOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FlagDelayedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrFlagDelayedOrdersCommandIsNotConstructed)
}

// Threshold returns how long an order may sit in one kitchen state before
// it is flagged as delayed.
func (c FlagDelayedOrdersCommand) Threshold() time.Duration {
	return c.threshold
}

func (c *FlagDelayedOrdersCommand) setThreshold(threshold time.Duration) error {
	if threshold <= 0 {
		return ErrThresholdIsInvalid
	}

	c.threshold = threshold
	return nil
}
