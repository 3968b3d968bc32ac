package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var (
	ErrGetTableQueryIsNotConstructed = errors.New(
		"GetTableQuery must be created via NewGetTableQuery constructor",
	)
	ErrTableIDIsRequired = errors.New("table id is required")
)

// GetTableQuery retrieves the full state of one table: seats, orders,
// waiter requests, and notifications.
type GetTableQuery struct {
	tableID string

	guard guard.ConstructorGuard
}

// NewGetTableQuery creates a query for one table by id.
func NewGetTableQuery(tableID string) (GetTableQuery, error) {
	if tableID == "" {
		return GetTableQuery{}, ErrTableIDIsRequired
	}
	return GetTableQuery{tableID: tableID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTableQuery) Validate() error {
	return q.guard.Validate(ErrGetTableQueryIsNotConstructed)
}

// TableID returns the requested table identifier.
func (q GetTableQuery) TableID() string {
	return q.tableID
}
