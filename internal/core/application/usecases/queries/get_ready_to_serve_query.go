package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrGetReadyToServeQueryIsNotConstructed = errors.New(
	"GetReadyToServeQuery must be created via NewGetReadyToServeQuery constructor",
)

// GetReadyToServeQuery retrieves every ReadyToServe order across all
// tables: the waiters' pickup list.
type GetReadyToServeQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReadyToServeQuery creates a parameterless query for the pickup
// list.
func NewGetReadyToServeQuery() GetReadyToServeQuery {
	return GetReadyToServeQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetReadyToServeQuery) Validate() error {
	return q.guard.Validate(ErrGetReadyToServeQueryIsNotConstructed)
}
