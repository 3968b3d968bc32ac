package queries

import (
	"errors"
	"time"

	"restaurant/internal/pkg/guard"
)

var ErrGetKitchenQueueQueryIsNotConstructed = errors.New(
	"GetKitchenQueueQuery must be created via NewGetKitchenQueueQuery constructor",
)

// GetKitchenQueueQuery retrieves every order currently with the kitchen
// (SentToKitchen or InPreparation) across all tables, oldest first.
type GetKitchenQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetKitchenQueueQuery creates a parameterless query for the kitchen
// work queue.
func NewGetKitchenQueueQuery() GetKitchenQueueQuery {
	return GetKitchenQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetKitchenQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenQueueQueryIsNotConstructed)
}

// KitchenOrderResponse is one order as the kitchen or the waiters see it:
// enough context to cook and to carry the plate to the right person.
type KitchenOrderResponse struct {
	TableID      string
	TableName    string
	SeatKey      string
	ClientName   string
	OrderID      string
	DishName     string
	Quantity     int
	Status       string
	StatusLabel  string
	Notes        []string
	DelayMinutes int
	LastChangeAt time.Time
}
