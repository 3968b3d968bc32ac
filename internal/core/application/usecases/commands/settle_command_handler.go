package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// SettleCommandHandler settles bills. The settlement record is journaled
// before any seat is released: if the journal write fails the table is left
// untouched, and if the store flush fails afterwards the journaled record
// plus the unchanged table make the settlement safely retriable.
type SettleCommandHandler struct {
	store   ports.TableStore
	journal ports.PaymentJournal
	settler services.Settler
}

// NewSettleCommandHandler creates a handler for settlements.
func NewSettleCommandHandler(
	store ports.TableStore,
	journal ports.PaymentJournal,
	settler services.Settler,
) SettleCommandHandler {
	return SettleCommandHandler{store: store, journal: journal, settler: settler}
}

// Handle processes the settlement and returns the journaled record.
// Individual settlement releases the paying seat; when that was the last
// occupied seat the whole table resets. Group settlement resets the table.
func (h SettleCommandHandler) Handle(ctx context.Context, cmd SettleCommand) (*payment.Record, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var record *payment.Record
	err := h.store.WithTable(ctx, cmd.TableID(), func(t *table.Table) error {
		r, settleErr := h.settler.Settle(t, cmd.Scope(), cmd.SeatKey(), uuid.NewString(), time.Now().UTC())
		if settleErr != nil {
			return settleErr
		}

		if journalErr := h.journal.Append(ctx, r); journalErr != nil {
			return journalErr
		}

		if cmd.Scope() == payment.Individual {
			if releaseErr := t.ReleaseSeat(cmd.SeatKey()); releaseErr != nil {
				return releaseErr
			}
		} else {
			t.ReleaseAll()
		}

		record = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}
