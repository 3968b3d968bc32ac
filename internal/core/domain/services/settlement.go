package services

import (
	"time"

	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"
)

// Settler is a domain service that computes what a settlement owes and
// produces the payment record for it.
//
// Business rules:
//   - At least one chargeable (non-cancelled) order must exist in scope.
//   - Every chargeable order in scope must already be delivered; otherwise
//     the settlement fails with PreconditionFailed listing the offending
//     dishes, and nothing is charged.
//   - Group scope is only available while more than one seat is occupied.
//   - Cancelled orders are excluded from the total but archived in the
//     record.
//
// Settle marks the in-scope orders Paid but does not release the seats:
// the caller journals the record first and releases afterwards, so a crash
// between the two leaves a recorded payment and a retriable table, never a
// double charge.
type Settler struct{}

// NewSettler creates a new Settler instance.
func NewSettler() Settler {
	return Settler{}
}

// Settle validates the settlement preconditions for the given scope,
// computes the total, marks the in-scope orders Paid, and returns the
// payment record to journal. seatKey is only consulted for Individual
// scope.
func (s Settler) Settle(
	t *table.Table,
	scope payment.Scope,
	seatKey string,
	recordID string,
	now time.Time,
) (*payment.Record, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	seats, err := s.seatsInScope(t, scope, seatKey)
	if err != nil {
		return nil, err
	}

	if err = s.checkAllDelivered(seats); err != nil {
		return nil, err
	}

	var (
		lines    []payment.LineItem
		archived []payment.ArchivedOrder
	)
	for _, seat := range seats {
		for _, o := range seat.Orders() {
			lines = append(lines, payment.LineItem{
				ClientName: seat.ClientName(),
				DishID:     o.DishID(),
				DishName:   o.Name(),
				Quantity:   o.Quantity(),
				UnitPrice:  o.UnitPrice(),
			})
		}
		for _, o := range seat.CancelledOrders() {
			archived = append(archived, payment.ArchivedOrder{
				ClientName: seat.ClientName(),
				DishName:   o.Name(),
				Quantity:   o.Quantity(),
			})
		}
	}

	if len(lines) == 0 {
		return nil, errs.NewPreconditionFailedError("no orders to charge")
	}

	record, err := payment.NewRecord(recordID, t.ID(), t.Name(), scope, now, lines, archived)
	if err != nil {
		return nil, err
	}

	for _, seat := range seats {
		for _, o := range seat.Orders() {
			if payErr := o.Pay(now); payErr != nil {
				return nil, payErr
			}
		}
	}

	return record, nil
}

// seatsInScope resolves which seats a settlement covers.
func (s Settler) seatsInScope(t *table.Table, scope payment.Scope, seatKey string) ([]*table.Seat, error) {
	switch scope {
	case payment.Individual:
		seat, err := t.BoundSeatByKey(seatKey)
		if err != nil {
			return nil, err
		}
		return []*table.Seat{seat}, nil
	case payment.Group:
		occupied := t.OccupiedSeats()
		if len(occupied) < 2 {
			return nil, errs.NewPreconditionFailedError(
				"group settlement requires more than one seated client")
		}
		return occupied, nil
	default:
		return nil, errs.NewValueIsInvalidError("payment scope")
	}
}

// checkAllDelivered rejects the settlement while any chargeable order in
// scope has not reached the table, naming the offending dishes.
func (s Settler) checkAllDelivered(seats []*table.Seat) error {
	var undelivered []string
	for _, seat := range seats {
		for _, o := range seat.Orders() {
			if !o.IsDelivered() {
				undelivered = append(undelivered, o.Name())
			}
		}
	}
	if len(undelivered) > 0 {
		return errs.NewPreconditionFailedError("undelivered orders", undelivered...)
	}
	return nil
}
