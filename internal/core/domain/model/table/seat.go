package table

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// Seat is one client slot within a table. It holds the bound client name,
// that client's orders, and a monotonically increasing sequence counter used
// to build order ids that stay unique even when the clock is coarse.
//
// Cancelled orders are moved out of the active list into a cancelled archive:
// they no longer resolve by id (a second cancel reports NotFound) but remain
// available for the settlement journal.
type Seat struct {
	position   int
	clientName string
	orders     []*order.Order
	cancelled  []*order.Order
	nextSeq    int
}

// newSeat creates an unbound seat at the given 1-based position.
func newSeat(position int) *Seat {
	return &Seat{position: position, nextSeq: 1}
}

// RestoreSeat reconstructs a seat from persistence.
func RestoreSeat(position int, clientName string, orders, cancelled []*order.Order, nextSeq int) (*Seat, error) {
	if position < 1 {
		return nil, errs.NewValueIsOutOfRangeError("seat position", position, 1, "capacity")
	}
	if nextSeq < 1 {
		nextSeq = 1
	}
	return &Seat{
		position:   position,
		clientName: clientName,
		orders:     slices.Clone(orders),
		cancelled:  slices.Clone(cancelled),
		nextSeq:    nextSeq,
	}, nil
}

// clone returns a deep copy of the seat and its orders.
func (s *Seat) clone() *Seat {
	cloned := &Seat{
		position:   s.position,
		clientName: s.clientName,
		nextSeq:    s.nextSeq,
	}
	for _, o := range s.orders {
		cloned.orders = append(cloned.orders, o.Clone())
	}
	for _, o := range s.cancelled {
		cloned.cancelled = append(cloned.cancelled, o.Clone())
	}
	return cloned
}

// Position returns the 1-based seat index.
func (s *Seat) Position() int { return s.position }

// Key returns the opaque seat key callers use to address this seat.
func (s *Seat) Key() string {
	return fmt.Sprintf("seat-%d", s.position)
}

// ClientName returns the bound client name, "" when unbound.
func (s *Seat) ClientName() string { return s.clientName }

// IsBound reports whether a client occupies the seat.
func (s *Seat) IsBound() bool { return s.clientName != "" }

// IsClient reports whether the seat is bound to the given client name,
// compared case-insensitively.
func (s *Seat) IsClient(name string) bool {
	return s.clientName != "" && strings.EqualFold(s.clientName, name)
}

// Orders returns the seat's active orders in placement order.
// The slice is a copy; the orders are the live entities.
func (s *Seat) Orders() []*order.Order {
	return slices.Clone(s.orders)
}

// CancelledOrders returns the seat's cancelled orders.
func (s *Seat) CancelledOrders() []*order.Order {
	return slices.Clone(s.cancelled)
}

// NextSequence returns the next order sequence value without consuming it.
func (s *Seat) NextSequence() int { return s.nextSeq }

// PlaceOrder creates a Pending order on the seat with the dish snapshot
// taken at placement time. The order id combines the creation timestamp,
// the seat position, and the per-seat sequence counter, so two orders placed
// within the same clock tick still get distinct ids.
func (s *Seat) PlaceOrder(dishID, name string, unitPrice, quantity int, at time.Time) (*order.Order, error) {
	if !s.IsBound() {
		return nil, errs.NewPreconditionFailedError(fmt.Sprintf("seat %s has no client", s.Key()))
	}

	id := fmt.Sprintf("%d-%d-%d", at.Unix(), s.position, s.nextSeq)
	placed, err := order.NewOrder(id, dishID, name, unitPrice, quantity, at)
	if err != nil {
		return nil, err
	}

	s.nextSeq++
	s.orders = append(s.orders, placed)
	return placed, nil
}

// OrderByID returns the active order with the given id.
func (s *Seat) OrderByID(orderID string) (*order.Order, error) {
	for _, o := range s.orders {
		if o.ID() == orderID {
			return o, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderId", orderID)
}

// CancelOrder cancels the Pending order with the given id and moves it into
// the cancelled archive. Orders already sent to the kitchen are rejected
// with an InvalidTransition error; unknown ids (including already-cancelled
// ones) report NotFound.
func (s *Seat) CancelOrder(orderID string, at time.Time) error {
	for i, o := range s.orders {
		if o.ID() != orderID {
			continue
		}
		if err := o.Cancel(at); err != nil {
			return err
		}
		s.orders = slices.Delete(s.orders, i, i+1)
		s.cancelled = append(s.cancelled, o)
		return nil
	}
	return errs.NewObjectNotFoundError("orderId", orderID)
}

// bind assigns a client to the seat.
func (s *Seat) bind(name string) {
	s.clientName = name
}

// release clears the seat: client name, orders, cancelled archive.
// The sequence counter resets with the seat.
func (s *Seat) release() {
	s.clientName = ""
	s.orders = nil
	s.cancelled = nil
	s.nextSeq = 1
}
