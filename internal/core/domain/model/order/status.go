package order

import (
	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order as it moves from a
// seated client through the kitchen to the waiter and, finally, settlement.
//
// State transitions:
//
//	Pending ──> SentToKitchen ──> InPreparation ──> ReadyToServe ──> Delivered ──> Paid
//	   │
//	   └──> Cancelled
//
// Cancellation is only possible before the order reaches the kitchen; an
// order that has been sent can never be cancelled by the customer. States
// cannot be skipped: an order must pass through InPreparation before it can
// be marked ReadyToServe, and through ReadyToServe before Delivered.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order exists on the client's seat
	// but has not been sent to the kitchen and may still be cancelled.
	Pending

	// SentToKitchen indicates the order has been confirmed and queued in
	// the kitchen. From this point on the order is immutable except for
	// kitchen transitions, notes, and delay annotations.
	SentToKitchen

	// InPreparation indicates the kitchen has started cooking the order.
	InPreparation

	// ReadyToServe indicates the kitchen finished the order and it awaits
	// delivery by a waiter.
	ReadyToServe

	// Delivered indicates the waiter brought the order to the table.
	// Terminal for the kitchen flow; only settlement moves it further.
	Delivered

	// Cancelled is the alternative terminal state, reachable only from
	// Pending.
	Cancelled

	// Paid indicates the order was covered by a successful settlement.
	Paid
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		Pending:       "Pending",
		SentToKitchen: "SentToKitchen",
		InPreparation: "InPreparation",
		ReadyToServe:  "ReadyToServe",
		Delivered:     "Delivered",
		Cancelled:     "Cancelled",
		Paid:          "Paid",
	}
}

// getValidStatusStrings excludes Unknown to support validation.
func getValidStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:       "Pending",
		SentToKitchen: "SentToKitchen",
		InPreparation: "InPreparation",
		ReadyToServe:  "ReadyToServe",
		Delivered:     "Delivered",
		Cancelled:     "Cancelled",
		Paid:          "Paid",
	}
}

func getStatusLabels() map[Status]string {
	return map[Status]string{
		Pending:       "⏳ Pending",
		SentToKitchen: "🟡 Pending in kitchen",
		InPreparation: "👨‍🍳 In preparation",
		ReadyToServe:  "✅ Ready to serve",
		Delivered:     "🍽️ Delivered",
		Cancelled:     "🔴 Cancelled",
		Paid:          "💵 Paid",
	}
}

// Validate checks if the Status value is one of the defined states.
// Unknown (0) and out-of-range values are invalid. Used when reconstructing
// orders from the store.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errs.NewValueIsOutOfRangeError("status", int(s), int(Pending), int(Paid)))
	}
	return nil
}

// String returns the canonical name of the status, or "Unknown" for any
// invalid value. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses the canonical status name used in persistence.
func StatusFromString(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == raw {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status")
}

// Label returns the display label used by presentation callers, including
// the marker glyphs the floor staff are used to.
func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}

// IsTerminal reports whether no further kitchen transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Paid
}

// InKitchen reports whether the order is currently with the kitchen:
// sent but not yet delivered, cancelled, or paid.
func (s Status) InKitchen() bool {
	return s == SentToKitchen || s == InPreparation || s == ReadyToServe
}

// Send transitions the status to SentToKitchen.
// Only a Pending order can be sent.
func (s Status) Send() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("", s.String(), SentToKitchen.String())
	}
	return SentToKitchen, nil
}

// StartPreparation transitions the status to InPreparation.
// Only a SentToKitchen order can start preparation.
func (s Status) StartPreparation() (Status, error) {
	if s != SentToKitchen {
		return 0, errs.NewInvalidTransitionError("", s.String(), InPreparation.String())
	}
	return InPreparation, nil
}

// MarkReady transitions the status to ReadyToServe.
// Only an InPreparation order can be marked ready; the kitchen cannot skip
// the preparation step.
func (s Status) MarkReady() (Status, error) {
	if s != InPreparation {
		return 0, errs.NewInvalidTransitionError("", s.String(), ReadyToServe.String())
	}
	return ReadyToServe, nil
}

// Deliver transitions the status to Delivered.
// Only a ReadyToServe order can be delivered.
func (s Status) Deliver() (Status, error) {
	if s != ReadyToServe {
		return 0, errs.NewInvalidTransitionError("", s.String(), Delivered.String())
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
// Only a Pending order can be cancelled; once sent to the kitchen the order
// is out of the customer's hands.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("", s.String(), Cancelled.String())
	}
	return Cancelled, nil
}

// Pay transitions the status to Paid.
// Only a Delivered order can be paid; settlement enforces this for every
// order in scope before any total is computed.
func (s Status) Pay() (Status, error) {
	if s != Delivered {
		return 0, errs.NewInvalidTransitionError("", s.String(), Paid.String())
	}
	return Paid, nil
}
