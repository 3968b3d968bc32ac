// Package queries contains read operations for retrieving table, kitchen,
// and menu state. Implements the Query pattern for read operations in the
// CQRS architecture: handlers read store snapshots and map them into flat
// read models for presentation.
package queries

import (
	"time"

	"restaurant/internal/core/domain/model/table"
)

// TableResponse is the full read model of one table: seats, orders,
// requests, and notifications.
type TableResponse struct {
	ID            string
	Name          string
	Capacity      int
	Status        string
	Seats         []SeatResponse
	Requests      []RequestResponse
	Notifications []NotificationResponse
}

// SeatResponse is one seat and its client's orders. Total sums the active
// order subtotals.
type SeatResponse struct {
	Key        string
	Position   int
	ClientName string
	Orders     []OrderResponse
	Total      int
}

// OrderResponse is one order in the read model. StatusLabel carries the
// display form of the status, glyphs included.
type OrderResponse struct {
	ID           string
	DishID       string
	DishName     string
	UnitPrice    int
	Quantity     int
	Subtotal     int
	Status       string
	StatusLabel  string
	Notes        []NoteResponse
	DelayMinutes int
	CreatedAt    time.Time
}

// NoteResponse is one order note.
type NoteResponse struct {
	Text string
	At   time.Time
}

// RequestResponse is one waiter request, resolved or not.
type RequestResponse struct {
	ClientName string
	Message    string
	CreatedAt  time.Time
	Resolved   bool
}

// NotificationResponse is one table notification.
type NotificationResponse struct {
	Message   string
	Kind      string
	CreatedAt time.Time
}

// newTableResponse maps a table snapshot into the read model. Unbound seats
// are included so the floor view can show free capacity.
func newTableResponse(t *table.Table) TableResponse {
	resp := TableResponse{
		ID:       t.ID(),
		Name:     t.Name(),
		Capacity: t.Capacity(),
		Status:   t.Status().String(),
	}

	for _, s := range t.Seats() {
		seat := SeatResponse{
			Key:        s.Key(),
			Position:   s.Position(),
			ClientName: s.ClientName(),
		}
		for _, o := range s.Orders() {
			order := OrderResponse{
				ID:           o.ID(),
				DishID:       o.DishID(),
				DishName:     o.Name(),
				UnitPrice:    o.UnitPrice(),
				Quantity:     o.Quantity(),
				Subtotal:     o.Subtotal(),
				Status:       o.Status().String(),
				StatusLabel:  o.Status().Label(),
				DelayMinutes: o.DelayMinutes(),
				CreatedAt:    o.CreatedAt(),
			}
			for _, n := range o.Notes() {
				order.Notes = append(order.Notes, NoteResponse{Text: n.Text(), At: n.At()})
			}
			seat.Orders = append(seat.Orders, order)
			seat.Total += o.Subtotal()
		}
		resp.Seats = append(resp.Seats, seat)
	}

	for _, r := range t.Requests() {
		resp.Requests = append(resp.Requests, RequestResponse{
			ClientName: r.ClientName(),
			Message:    r.Message(),
			CreatedAt:  r.CreatedAt(),
			Resolved:   r.Resolved(),
		})
	}
	for _, n := range t.Notifications() {
		resp.Notifications = append(resp.Notifications, NotificationResponse{
			Message:   n.Message(),
			Kind:      n.Kind(),
			CreatedAt: n.CreatedAt(),
		})
	}
	return resp
}
