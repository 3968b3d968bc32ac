package table

import (
	"restaurant/internal/pkg/errs"
)

// Status represents the occupancy state of a table.
//
// A table is Occupied exactly while at least one seat is bound to a client
// name; the only way back to Free is releasing the seats (settlement or a
// full table reset).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Free means no seat is bound to a client.
	Free

	// Occupied means at least one seat is bound to a client.
	Occupied
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Free:     "Free",
		Occupied: "Occupied",
	}
}

// Validate checks if the Status value is Free or Occupied.
func (s Status) Validate() error {
	if s != Free && s != Occupied {
		return errs.NewValueIsInvalidErrorWithCause("table status",
			errs.NewValueIsOutOfRangeError("table status", int(s), int(Free), int(Occupied)))
	}
	return nil
}

// String returns the canonical name of the status.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
