package commands

import (
	"context"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
)

// FlagDelayedOrdersCommandHandler scans every table for orders that have
// sat in one kitchen state longer than the threshold and flags them with a
// delay annotation plus a table notification. Orders already carrying a
// delay annotation are left alone so the sweep never spams a table.
type FlagDelayedOrdersCommandHandler struct {
	store ports.TableStore
}

// NewFlagDelayedOrdersCommandHandler creates a handler for the delay sweep.
func NewFlagDelayedOrdersCommandHandler(store ports.TableStore) FlagDelayedOrdersCommandHandler {
	return FlagDelayedOrdersCommandHandler{store: store}
}

// Handle runs one sweep and returns how many orders were flagged.
// Tables with nothing to flag are not touched, so an idle restaurant costs
// no store writes.
func (h FlagDelayedOrdersCommandHandler) Handle(ctx context.Context, cmd FlagDelayedOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	tables, err := h.store.All(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	flagged := 0
	for _, snapshot := range tables {
		if !h.hasStuckOrders(snapshot, cmd.Threshold(), now) {
			continue
		}

		err = h.store.WithTable(ctx, snapshot.ID(), func(t *table.Table) error {
			count, flagErr := h.flagStuckOrders(t, cmd.Threshold(), now)
			if flagErr != nil {
				return flagErr
			}
			flagged += count
			return nil
		})
		if err != nil {
			return flagged, err
		}
	}

	return flagged, nil
}

// hasStuckOrders checks a read-only snapshot so the sweep only takes the
// table's write path when there is something to flag.
func (h FlagDelayedOrdersCommandHandler) hasStuckOrders(t *table.Table, threshold time.Duration, now time.Time) bool {
	for _, seat := range t.OccupiedSeats() {
		for _, o := range seat.Orders() {
			if h.isStuck(o, threshold, now) {
				return true
			}
		}
	}
	return false
}

func (h FlagDelayedOrdersCommandHandler) flagStuckOrders(t *table.Table, threshold time.Duration, now time.Time) (int, error) {
	minutes := int(threshold.Minutes())
	if minutes < 1 {
		minutes = 1
	}

	flagged := 0
	for _, seat := range t.OccupiedSeats() {
		for _, o := range seat.Orders() {
			if !h.isStuck(o, threshold, now) {
				continue
			}

			if err := o.AnnotateDelay(minutes); err != nil {
				return flagged, err
			}
			if err := t.AppendNotification(
				fmt.Sprintf("%s is taking longer than expected", o.Name()),
				table.NotificationDelay, now); err != nil {
				return flagged, err
			}
			flagged++
		}
	}
	return flagged, nil
}

// isStuck reports whether an order has been in its current kitchen state
// longer than the threshold and is not flagged yet.
func (h FlagDelayedOrdersCommandHandler) isStuck(o *order.Order, threshold time.Duration, now time.Time) bool {
	if !o.Status().InKitchen() || o.DelayMinutes() > 0 {
		return false
	}

	history := o.History()
	lastChange := history[len(history)-1].At
	return now.Sub(lastChange) >= threshold
}
