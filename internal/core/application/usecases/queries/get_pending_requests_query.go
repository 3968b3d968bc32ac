package queries

import (
	"errors"
	"time"

	"restaurant/internal/pkg/guard"
)

var ErrGetPendingRequestsQueryIsNotConstructed = errors.New(
	"GetPendingRequestsQuery must be created via NewGetPendingRequestsQuery constructor",
)

// GetPendingRequestsQuery retrieves every unresolved waiter request across
// all tables, oldest first.
type GetPendingRequestsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingRequestsQuery creates a parameterless query for unresolved
// waiter requests.
func NewGetPendingRequestsQuery() GetPendingRequestsQuery {
	return GetPendingRequestsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingRequestsQueryIsNotConstructed)
}

// PendingRequestResponse is one unresolved waiter request with enough
// context to walk to the right table.
type PendingRequestResponse struct {
	TableID    string
	TableName  string
	ClientName string
	Message    string
	CreatedAt  time.Time
}
