package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var (
	ErrGetTableByTokenQueryIsNotConstructed = errors.New(
		"GetTableByTokenQuery must be created via NewGetTableByTokenQuery constructor",
	)
	ErrAccessTokenIsRequired = errors.New("access token is required")
)

// GetTableByTokenQuery resolves an access token (the value encoded in a
// table's QR code) to the full table read model.
type GetTableByTokenQuery struct {
	accessToken string

	guard guard.ConstructorGuard
}

// NewGetTableByTokenQuery creates a query for one table by access token.
func NewGetTableByTokenQuery(accessToken string) (GetTableByTokenQuery, error) {
	if accessToken == "" {
		return GetTableByTokenQuery{}, ErrAccessTokenIsRequired
	}
	return GetTableByTokenQuery{accessToken: accessToken, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTableByTokenQuery) Validate() error {
	return q.guard.Validate(ErrGetTableByTokenQueryIsNotConstructed)
}

// AccessToken returns the token to resolve.
func (q GetTableByTokenQuery) AccessToken() string {
	return q.accessToken
}
