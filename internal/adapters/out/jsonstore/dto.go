// Package jsonstore persists the table aggregates in one canonical JSON
// file, flushed atomically (temp file plus rename) after every successful
// mutation, and appends settlement records as individual JSON files. It
// implements the TableStore and PaymentJournal ports.
package jsonstore

import (
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
)

// storeDTO is the on-disk shape of the whole store, keyed by table id.
type storeDTO struct {
	Tables map[string]tableDTO `json:"tables"`
}

type tableDTO struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	AccessToken   string            `json:"access_token"`
	Capacity      int               `json:"capacity"`
	Status        string            `json:"status"`
	Seats         []seatDTO         `json:"seats"`
	Requests      []requestDTO      `json:"requests,omitempty"`
	Notifications []notificationDTO `json:"notifications,omitempty"`
}

type seatDTO struct {
	Position  int        `json:"position"`
	Client    string     `json:"client,omitempty"`
	Orders    []orderDTO `json:"orders,omitempty"`
	Cancelled []orderDTO `json:"cancelled,omitempty"`
	NextSeq   int        `json:"next_seq"`
}

type orderDTO struct {
	ID        string    `json:"id"`
	DishID    string    `json:"dish_id"`
	Name      string    `json:"name"`
	UnitPrice int       `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	Status    string    `json:"status"`

	History []statusChangeDTO `json:"history,omitempty"`
	Notes   []noteDTO         `json:"notes,omitempty"`

	// LegacyNote carries the single free-text note older store files kept
	// before notes became a timestamped list. Read-only: migrated into
	// Notes on load, never written back.
	LegacyNote string `json:"note,omitempty"`

	DelayMinutes int `json:"delay_minutes,omitempty"`
}

type statusChangeDTO struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

type noteDTO struct {
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

type requestDTO struct {
	Client    string    `json:"client"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Resolved  bool      `json:"resolved"`
}

type notificationDTO struct {
	Message   string    `json:"message"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// tableFromDomain converts a table aggregate to its on-disk representation.
func tableFromDomain(t *table.Table) tableDTO {
	dto := tableDTO{
		ID:          t.ID(),
		Name:        t.Name(),
		AccessToken: t.AccessToken(),
		Capacity:    t.Capacity(),
		Status:      t.Status().String(),
	}

	for _, s := range t.Seats() {
		dto.Seats = append(dto.Seats, seatFromDomain(s))
	}
	for _, r := range t.Requests() {
		dto.Requests = append(dto.Requests, requestDTO{
			Client:    r.ClientName(),
			Message:   r.Message(),
			CreatedAt: r.CreatedAt(),
			Resolved:  r.Resolved(),
		})
	}
	for _, n := range t.Notifications() {
		dto.Notifications = append(dto.Notifications, notificationDTO{
			Message:   n.Message(),
			Kind:      n.Kind(),
			CreatedAt: n.CreatedAt(),
		})
	}
	return dto
}

func seatFromDomain(s *table.Seat) seatDTO {
	dto := seatDTO{
		Position: s.Position(),
		Client:   s.ClientName(),
		NextSeq:  s.NextSequence(),
	}
	for _, o := range s.Orders() {
		dto.Orders = append(dto.Orders, orderFromDomain(o))
	}
	for _, o := range s.CancelledOrders() {
		dto.Cancelled = append(dto.Cancelled, orderFromDomain(o))
	}
	return dto
}

func orderFromDomain(o *order.Order) orderDTO {
	dto := orderDTO{
		ID:           o.ID(),
		DishID:       o.DishID(),
		Name:         o.Name(),
		UnitPrice:    o.UnitPrice(),
		Quantity:     o.Quantity(),
		CreatedAt:    o.CreatedAt(),
		Status:       o.Status().String(),
		DelayMinutes: o.DelayMinutes(),
	}
	for _, c := range o.History() {
		dto.History = append(dto.History, statusChangeDTO{Status: c.Status.String(), At: c.At})
	}
	for _, n := range o.Notes() {
		dto.Notes = append(dto.Notes, noteDTO{Text: n.Text(), At: n.At()})
	}
	return dto
}

// tableToDomain reconstructs a table aggregate from its on-disk
// representation. The table status is recomputed from the seat bindings by
// RestoreTable, so a hand-edited status field cannot corrupt the aggregate.
func tableToDomain(dto tableDTO) (*table.Table, error) {
	var seats []*table.Seat
	for _, sd := range dto.Seats {
		seat, err := seatToDomain(sd)
		if err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}

	var requests []table.WaiterRequest
	for _, rd := range dto.Requests {
		req, err := table.RestoreWaiterRequest(rd.Client, rd.Message, rd.CreatedAt, rd.Resolved)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	var notifications []table.Notification
	for _, nd := range dto.Notifications {
		n, err := table.NewNotification(nd.Message, nd.Kind, nd.CreatedAt)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return table.RestoreTable(dto.ID, dto.Name, dto.AccessToken, dto.Capacity,
		seats, requests, notifications)
}

func seatToDomain(dto seatDTO) (*table.Seat, error) {
	var orders []*order.Order
	for _, od := range dto.Orders {
		o, err := orderToDomain(od)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	var cancelled []*order.Order
	for _, od := range dto.Cancelled {
		o, err := orderToDomain(od)
		if err != nil {
			return nil, err
		}
		cancelled = append(cancelled, o)
	}

	return table.RestoreSeat(dto.Position, dto.Client, orders, cancelled, dto.NextSeq)
}

func orderToDomain(dto orderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var history []order.StatusChange
	for _, cd := range dto.History {
		s, historyErr := order.StatusFromString(cd.Status)
		if historyErr != nil {
			return nil, historyErr
		}
		history = append(history, order.StatusChange{Status: s, At: cd.At})
	}
	if len(history) == 0 {
		// Older store files predate the history log.
		history = []order.StatusChange{{Status: status, At: dto.CreatedAt}}
	}

	var notes []order.Note
	for _, nd := range dto.Notes {
		n, noteErr := order.NewNote(nd.Text, nd.At)
		if noteErr != nil {
			return nil, noteErr
		}
		notes = append(notes, n)
	}
	if len(notes) == 0 && dto.LegacyNote != "" {
		n, noteErr := order.NewNote(dto.LegacyNote, dto.CreatedAt)
		if noteErr != nil {
			return nil, noteErr
		}
		notes = append(notes, n)
	}

	return order.RestoreOrder(dto.ID, dto.DishID, dto.Name, dto.UnitPrice, dto.Quantity,
		dto.CreatedAt, status, history, notes, dto.DelayMinutes)
}
