package table

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// ErrTableIsNotConstructed is returned when a Table instance was not created
// through the NewTable or RestoreTable factory methods.
var ErrTableIsNotConstructed = errors.New("Table must be created via NewTable or RestoreTable")

// SentOrder summarizes one order confirmed to the kitchen by a batch send.
type SentOrder struct {
	OrderID    string
	ClientName string
	DishName   string
	Quantity   int
}

// Table is the aggregate root for one physical seating unit. It owns its
// seats (fixed count equal to capacity), the clients bound to them, their
// orders, and the table-level waiter requests and notifications.
//
// Table follows these invariants:
//   - Capacity is immutable after creation and at least 1.
//   - Status is Occupied iff at least one seat is bound.
//   - A client name is unique within the table (case-insensitive).
//   - All mutation goes through aggregate methods; the store hands out deep
//     copies so no caller can mutate the authoritative record directly.
type Table struct {
	id            string
	name          string
	accessToken   string
	capacity      int
	status        Status
	seats         []*Seat
	requests      []WaiterRequest
	notifications []Notification

	isConstructed bool
}

// NewTable creates a Free table with unbound seats 1..capacity.
// The access token is the opaque value encoded in the table's QR code.
func NewTable(id, name, accessToken string, capacity int) (*Table, error) {
	t := &Table{
		status:        Free,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setAccessToken(accessToken),
		t.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	for i := 1; i <= capacity; i++ {
		t.seats = append(t.seats, newSeat(i))
	}
	return t, nil
}

// RestoreTable reconstructs a table from persistence. The seat count must
// match the capacity; the status is recomputed from the seat bindings so a
// store record can never present an Occupied/Free contradiction.
func RestoreTable(
	id, name, accessToken string,
	capacity int,
	seats []*Seat,
	requests []WaiterRequest,
	notifications []Notification,
) (*Table, error) {
	t := &Table{isConstructed: true}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setAccessToken(accessToken),
		t.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	if len(seats) != capacity {
		return nil, errs.NewValueIsInvalidErrorWithCause("seats",
			fmt.Errorf("%d seats for capacity %d", len(seats), capacity))
	}

	t.seats = slices.Clone(seats)
	t.requests = slices.Clone(requests)
	t.notifications = slices.Clone(notifications)
	t.recomputeStatus()
	return t, nil
}

// Validate ensures the Table instance was properly constructed.
func (t *Table) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTableIsNotConstructed
	}
	return nil
}

// Clone returns a deep copy of the table. The store mutates clones and only
// swaps them in after the mutation and the durable write both succeed.
func (t *Table) Clone() *Table {
	cloned := &Table{
		id:            t.id,
		name:          t.name,
		accessToken:   t.accessToken,
		capacity:      t.capacity,
		status:        t.status,
		requests:      slices.Clone(t.requests),
		notifications: slices.Clone(t.notifications),
		isConstructed: t.isConstructed,
	}
	for _, s := range t.seats {
		cloned.seats = append(cloned.seats, s.clone())
	}
	return cloned
}

// ID returns the table identifier.
func (t *Table) ID() string { return t.id }

// Name returns the display name ("Mesa 1").
func (t *Table) Name() string { return t.name }

// AccessToken returns the opaque token encoded in the table's QR code.
func (t *Table) AccessToken() string { return t.accessToken }

// Capacity returns the fixed number of seats.
func (t *Table) Capacity() int { return t.capacity }

// Status returns Free or Occupied.
func (t *Table) Status() Status { return t.status }

// Seats returns the seats in position order. The slice is a copy; the seats
// are the live entities.
func (t *Table) Seats() []*Seat {
	return slices.Clone(t.seats)
}

// Requests returns the waiter requests in raise order.
func (t *Table) Requests() []WaiterRequest {
	return slices.Clone(t.requests)
}

// Notifications returns the table notifications in emit order.
func (t *Table) Notifications() []Notification {
	return slices.Clone(t.notifications)
}

// OccupiedSeats returns the bound seats in position order.
func (t *Table) OccupiedSeats() []*Seat {
	var bound []*Seat
	for _, s := range t.seats {
		if s.IsBound() {
			bound = append(bound, s)
		}
	}
	return bound
}

// RegisterClient binds a client to the table. Re-entry is idempotent: if a
// seat already holds the same name (case-insensitive, so "ana" and "Ana"
// are the same diner) that seat's key is returned and nothing changes.
// Otherwise the first unbound seat in index order is taken; when every seat
// is bound the registration fails with CapacityExceeded and never overwrites
// an existing seat.
func (t *Table) RegisterClient(name string) (string, error) {
	if name == "" {
		return "", errs.NewValueIsRequiredError("client name")
	}

	for _, s := range t.seats {
		if s.IsClient(name) {
			return s.Key(), nil
		}
	}

	for _, s := range t.seats {
		if !s.IsBound() {
			s.bind(name)
			t.status = Occupied
			return s.Key(), nil
		}
	}

	return "", errs.NewCapacityExceededError(t.id, t.capacity)
}

// SeatByKey resolves a seat key ("seat-3") to the seat.
func (t *Table) SeatByKey(seatKey string) (*Seat, error) {
	raw, ok := strings.CutPrefix(seatKey, "seat-")
	if !ok {
		return nil, errs.NewObjectNotFoundError("seatKey", seatKey)
	}
	position, err := strconv.Atoi(raw)
	if err != nil || position < 1 || position > t.capacity {
		return nil, errs.NewObjectNotFoundError("seatKey", seatKey)
	}
	return t.seats[position-1], nil
}

// BoundSeatByKey resolves a seat key and requires a client to be seated.
func (t *Table) BoundSeatByKey(seatKey string) (*Seat, error) {
	seat, err := t.SeatByKey(seatKey)
	if err != nil {
		return nil, err
	}
	if !seat.IsBound() {
		return nil, errs.NewObjectNotFoundErrorWithCause("seatKey", seatKey,
			errors.New("seat has no client"))
	}
	return seat, nil
}

// FindOrder locates an active order anywhere on the table.
func (t *Table) FindOrder(orderID string) (*order.Order, *Seat, error) {
	for _, s := range t.seats {
		if o, err := s.OrderByID(orderID); err == nil {
			return o, s, nil
		}
	}
	return nil, nil, errs.NewObjectNotFoundError("orderId", orderID)
}

// SendPendingToKitchen confirms every Pending order on the table to the
// kitchen in one batch and returns summaries of what was sent. When no seat
// holds a Pending order the batch fails with PreconditionFailed and nothing
// changes.
func (t *Table) SendPendingToKitchen(at time.Time) ([]SentOrder, error) {
	var sent []SentOrder
	for _, s := range t.seats {
		if !s.IsBound() {
			continue
		}
		for _, o := range s.orders {
			if o.Status() != order.Pending {
				continue
			}
			if err := o.Send(at); err != nil {
				return nil, err
			}
			sent = append(sent, SentOrder{
				OrderID:    o.ID(),
				ClientName: s.ClientName(),
				DishName:   o.Name(),
				Quantity:   o.Quantity(),
			})
		}
	}

	if len(sent) == 0 {
		return nil, errs.NewPreconditionFailedError("no pending orders")
	}
	return sent, nil
}

// RaiseRequest appends an unresolved waiter request from a seated client.
// Duplicate texts are allowed; requests are never merged.
func (t *Table) RaiseRequest(clientName, message string, at time.Time) error {
	seated := false
	for _, s := range t.seats {
		if s.IsClient(clientName) {
			seated = true
			clientName = s.ClientName()
			break
		}
	}
	if !seated {
		return errs.NewObjectNotFoundError("clientName", clientName)
	}

	req, err := NewWaiterRequest(clientName, message, at)
	if err != nil {
		return err
	}
	t.requests = append(t.requests, req)
	return nil
}

// ResolveRequest flags the first unresolved request matching the exact
// client and text. Requests are never removed, only flagged.
func (t *Table) ResolveRequest(clientName, message string) error {
	for i := range t.requests {
		r := &t.requests[i]
		if !r.resolved && r.clientName == clientName && r.message == message {
			r.resolved = true
			return nil
		}
	}
	return errs.NewObjectNotFoundError("waiterRequest", message)
}

// AppendNotification records an informational message on the table.
func (t *Table) AppendNotification(message, kind string, at time.Time) error {
	n, err := NewNotification(message, kind, at)
	if err != nil {
		return err
	}
	t.notifications = append(t.notifications, n)
	return nil
}

// ReleaseSeat clears one seat after an individual settlement. When the last
// bound seat is released the table resets fully: requests and notifications
// are cleared and the status flips back to Free.
func (t *Table) ReleaseSeat(seatKey string) error {
	seat, err := t.SeatByKey(seatKey)
	if err != nil {
		return err
	}
	seat.release()

	if len(t.OccupiedSeats()) == 0 {
		t.ReleaseAll()
	}
	return nil
}

// ReleaseAll resets the table: every seat is cleared, requests and
// notifications dropped, status back to Free. This is the single path by
// which a table returns to Free.
func (t *Table) ReleaseAll() {
	for _, s := range t.seats {
		s.release()
	}
	t.requests = nil
	t.notifications = nil
	t.status = Free
}

func (t *Table) recomputeStatus() {
	if len(t.OccupiedSeats()) > 0 {
		t.status = Occupied
	} else {
		t.status = Free
	}
}

func (t *Table) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("table id")
	}
	t.id = id
	return nil
}

func (t *Table) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("table name")
	}
	t.name = name
	return nil
}

func (t *Table) setAccessToken(accessToken string) error {
	if accessToken == "" {
		return errs.NewValueIsRequiredError("access token")
	}
	t.accessToken = accessToken
	return nil
}

func (t *Table) setCapacity(capacity int) error {
	if capacity < 1 {
		return errs.NewValueIsOutOfRangeError("capacity", capacity, 1, "unbounded")
	}
	t.capacity = capacity
	return nil
}
