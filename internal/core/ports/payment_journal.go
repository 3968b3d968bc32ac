package ports

import (
	"context"

	"restaurant/internal/core/domain/model/payment"
)

// PaymentJournal is the append-only archive of settlement records.
// A record is journaled before the settled seats are released, so a crash
// between the two steps can never lose a charge.
type PaymentJournal interface {
	// Append durably stores a settlement record.
	Append(ctx context.Context, record *payment.Record) error
}
