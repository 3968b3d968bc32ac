package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrListTablesQueryIsNotConstructed = errors.New(
	"ListTablesQuery must be created via NewListTablesQuery constructor",
)

// ListTablesQuery retrieves a summary of every table for the floor view.
type ListTablesQuery struct {
	guard guard.ConstructorGuard
}

// NewListTablesQuery creates a parameterless query for the table list.
func NewListTablesQuery() ListTablesQuery {
	return ListTablesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListTablesQuery) Validate() error {
	return q.guard.Validate(ErrListTablesQueryIsNotConstructed)
}

// ListTablesQueryResponse summarizes one table for the floor view.
type ListTablesQueryResponse struct {
	ID            string
	Name          string
	Capacity      int
	Status        string
	OccupiedSeats int
	ActiveOrders  int
}
