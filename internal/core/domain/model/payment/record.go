package payment

import (
	"errors"
	"slices"
	"time"

	"restaurant/internal/pkg/errs"
)

// ErrRecordIsNotConstructed is returned when a Record instance was not
// created through the NewRecord factory method.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord")

// LineItem is one charged line of a settlement: a client's order with the
// price snapshot taken when the order was placed.
type LineItem struct {
	ClientName string
	DishID     string
	DishName   string
	Quantity   int
	UnitPrice  int
}

// Subtotal returns unit price times quantity.
func (l LineItem) Subtotal() int {
	return l.UnitPrice * l.Quantity
}

// ArchivedOrder is an order carried into the record for audit without being
// charged (cancelled before it reached the kitchen).
type ArchivedOrder struct {
	ClientName string
	DishName   string
	Quantity   int
}

// Record is the durable artifact of one settlement: who paid, for what, and
// how much. Records are append-only history, created once and never mutated.
type Record struct {
	id        string
	tableID   string
	tableName string
	scope     Scope
	paidAt    time.Time
	lines     []LineItem
	archived  []ArchivedOrder
	total     int

	isConstructed bool
}

// NewRecord creates a settlement record. The grand total is computed from
// the line items; cancelled orders ride along in the archive but contribute
// nothing to the total.
func NewRecord(
	id, tableID, tableName string,
	scope Scope,
	paidAt time.Time,
	lines []LineItem,
	archived []ArchivedOrder,
) (*Record, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("record id")
	}
	if tableID == "" {
		return nil, errs.NewValueIsRequiredError("table id")
	}
	if tableName == "" {
		return nil, errs.NewValueIsRequiredError("table name")
	}
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("line items")
	}

	total := 0
	for _, l := range lines {
		total += l.Subtotal()
	}

	return &Record{
		id:            id,
		tableID:       tableID,
		tableName:     tableName,
		scope:         scope,
		paidAt:        paidAt,
		lines:         slices.Clone(lines),
		archived:      slices.Clone(archived),
		total:         total,
		isConstructed: true,
	}, nil
}

// Validate ensures the Record instance was properly constructed.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the record identifier.
func (r *Record) ID() string { return r.id }

// TableID returns the settled table's id.
func (r *Record) TableID() string { return r.tableID }

// TableName returns the settled table's display name.
func (r *Record) TableName() string { return r.tableName }

// Scope returns whether one seat or the whole table was settled.
func (r *Record) Scope() Scope { return r.scope }

// PaidAt returns the settlement time.
func (r *Record) PaidAt() time.Time { return r.paidAt }

// Lines returns the charged line items.
func (r *Record) Lines() []LineItem {
	return slices.Clone(r.lines)
}

// Archived returns the uncharged cancelled orders kept for audit.
func (r *Record) Archived() []ArchivedOrder {
	return slices.Clone(r.archived)
}

// Total returns the grand total charged.
func (r *Record) Total() int { return r.total }
