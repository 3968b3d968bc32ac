package order

import (
	"errors"
	"slices"
	"time"

	"restaurant/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// StatusChange is one entry of an order's immutable history log: the status
// entered and when. The log records every transition the order went through
// and is used for delay inspection; it is never overwritten.
type StatusChange struct {
	Status Status
	At     time.Time
}

// Order represents one line item (dish + quantity) placed by a seated client.
// It is an entity owned by the Table aggregate and progresses through the
// kitchen state machine defined on Status.
//
// Order follows these invariants:
//   - The dish name and unit price are snapshotted at creation time; later
//     menu changes never alter a placed order.
//   - Quantity is at least 1.
//   - Once sent to the kitchen the order is immutable except for status
//     transitions, notes, and the delay annotation.
//   - Every transition appends to the history log.
type Order struct {
	id           string
	dishID       string
	name         string
	unitPrice    int
	quantity     int
	createdAt    time.Time
	status       Status
	history      []StatusChange
	notes        []Note
	delayMinutes int

	isConstructed bool
}

// NewOrder creates a new Pending order with the dish snapshot taken from the
// menu catalog at placement time.
func NewOrder(id, dishID, name string, unitPrice, quantity int, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDish(dishID, name, unitPrice),
		o.setQuantity(quantity),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.history = []StatusChange{{Status: Pending, At: createdAt}}
	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its full state.
// The same field validations as NewOrder apply, plus the status must be a
// defined state and the history non-empty.
func RestoreOrder(
	id, dishID, name string,
	unitPrice, quantity int,
	createdAt time.Time,
	status Status,
	history []StatusChange,
	notes []Note,
	delayMinutes int,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setDish(dishID, name, unitPrice),
		o.setQuantity(quantity),
		o.setCreatedAt(createdAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if len(history) == 0 {
		return nil, errs.NewValueIsRequiredError("order history")
	}

	o.status = status
	o.history = slices.Clone(history)
	o.notes = slices.Clone(notes)
	o.delayMinutes = delayMinutes
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// Clone returns a deep copy of the order. The table store mutates copies so
// a failed mutation never leaks into the authoritative state.
func (o *Order) Clone() *Order {
	clone := *o
	clone.history = slices.Clone(o.history)
	clone.notes = slices.Clone(o.notes)
	return &clone
}

// ID returns the order's unique identifier
// (creation timestamp plus per-seat sequence).
func (o *Order) ID() string { return o.id }

// DishID returns the menu id of the ordered dish.
func (o *Order) DishID() string { return o.dishID }

// Name returns the dish name snapshotted at creation.
func (o *Order) Name() string { return o.name }

// UnitPrice returns the dish price snapshotted at creation.
func (o *Order) UnitPrice() int { return o.unitPrice }

// Quantity returns how many units were ordered.
func (o *Order) Quantity() int { return o.quantity }

// CreatedAt returns the order creation time.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Status returns the current kitchen status.
func (o *Order) Status() Status { return o.status }

// History returns a copy of the status history log in transition order.
func (o *Order) History() []StatusChange {
	return slices.Clone(o.history)
}

// Notes returns a copy of the order's notes in append order.
func (o *Order) Notes() []Note {
	return slices.Clone(o.notes)
}

// DelayMinutes returns the kitchen's informational delay annotation,
// 0 when none was flagged.
func (o *Order) DelayMinutes() int { return o.delayMinutes }

// Subtotal returns unit price times quantity.
func (o *Order) Subtotal() int {
	return o.unitPrice * o.quantity
}

// IsSentToKitchen reports whether the order has reached the kitchen
// (it can no longer be changed or cancelled by the customer).
func (o *Order) IsSentToKitchen() bool {
	return o.status != Pending && o.status != Cancelled
}

// IsDelivered reports whether the order reached the table.
func (o *Order) IsDelivered() bool {
	return o.status == Delivered || o.status == Paid
}

// IsCancelled reports whether the customer cancelled the order before it
// was sent.
func (o *Order) IsCancelled() bool {
	return o.status == Cancelled
}

// Send moves the order to SentToKitchen as part of a batch confirmation.
func (o *Order) Send(at time.Time) error {
	return o.transition(o.status.Send, at)
}

// StartPreparation records that the kitchen started cooking the order.
func (o *Order) StartPreparation(at time.Time) error {
	return o.transition(o.status.StartPreparation, at)
}

// MarkReady records that the kitchen finished the order.
func (o *Order) MarkReady(at time.Time) error {
	return o.transition(o.status.MarkReady, at)
}

// Deliver records that a waiter brought the order to the table.
func (o *Order) Deliver(at time.Time) error {
	return o.transition(o.status.Deliver, at)
}

// Cancel removes the order from play before it reaches the kitchen.
func (o *Order) Cancel(at time.Time) error {
	return o.transition(o.status.Cancel, at)
}

// Pay marks the order as covered by a successful settlement.
func (o *Order) Pay(at time.Time) error {
	return o.transition(o.status.Pay, at)
}

// AddNote appends a note to the order. Allowed in any non-cancelled state;
// notes are the one thing a client can still attach after sending.
func (o *Order) AddNote(text string, at time.Time) error {
	if o.status == Cancelled {
		return errs.NewInvalidTransitionErrorWithCause(o.id, o.status.String(), o.status.String(),
			errors.New("cannot annotate a cancelled order"))
	}

	note, err := NewNote(text, at)
	if err != nil {
		return err
	}

	o.notes = append(o.notes, note)
	return nil
}

// RemoveNote deletes the note at the given zero-based position.
func (o *Order) RemoveNote(index int) error {
	if index < 0 || index >= len(o.notes) {
		return errs.NewValueIsOutOfRangeError("note index", index, 0, len(o.notes)-1)
	}
	o.notes = slices.Delete(o.notes, index, index+1)
	return nil
}

// AnnotateDelay records the kitchen's delay estimate in minutes. This is an
// informational side channel: it never changes the order's status, but it is
// only meaningful while the order is actually in the kitchen.
func (o *Order) AnnotateDelay(minutes int) error {
	if minutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("delay minutes",
			errs.NewValueIsOutOfRangeError("delay minutes", minutes, 1, 240))
	}
	if !o.status.InKitchen() {
		return errs.NewInvalidTransitionErrorWithCause(o.id, o.status.String(), o.status.String(),
			errors.New("delay can only be flagged while the order is in the kitchen"))
	}
	o.delayMinutes = minutes
	return nil
}

// transition applies a status transition, stamping the order id into any
// InvalidTransitionError and appending to the history log on success.
func (o *Order) transition(fn func() (Status, error), at time.Time) error {
	newStatus, err := fn()
	if err != nil {
		var transitionErr *errs.InvalidTransitionError
		if errors.As(err, &transitionErr) {
			transitionErr.OrderID = o.id
		}
		return err
	}

	o.status = newStatus
	o.history = append(o.history, StatusChange{Status: newStatus, At: at})
	return nil
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

func (o *Order) setDish(dishID, name string, unitPrice int) error {
	if dishID == "" {
		return errs.NewValueIsRequiredError("dish id")
	}
	if name == "" {
		return errs.NewValueIsRequiredError("dish name")
	}
	if unitPrice < 0 {
		return errs.NewValueIsOutOfRangeError("unit price", unitPrice, 0, "unbounded")
	}
	o.dishID = dishID
	o.name = name
	o.unitPrice = unitPrice
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("creation time")
	}
	o.createdAt = createdAt
	return nil
}
