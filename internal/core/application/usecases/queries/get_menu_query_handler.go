package queries

import (
	"context"
	"slices"

	"restaurant/internal/core/ports"
)

// GetMenuQueryHandler serves the menu read model from the catalog.
type GetMenuQueryHandler struct {
	catalog ports.MenuCatalog
}

// NewGetMenuQueryHandler creates a handler for menu retrieval.
func NewGetMenuQueryHandler(catalog ports.MenuCatalog) GetMenuQueryHandler {
	return GetMenuQueryHandler{catalog: catalog}
}

// Handle executes the query, preserving menu order.
func (h GetMenuQueryHandler) Handle(_ context.Context, query GetMenuQuery) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dishes := h.catalog.All()
	items := make([]MenuItemResponse, 0, len(dishes))
	for _, d := range dishes {
		items = append(items, MenuItemResponse{
			ID:        d.ID,
			Name:      d.Name,
			UnitPrice: d.UnitPrice,
			Stage:     d.Stage,
			Category:  d.Category,
			Diets:     slices.Clone(d.Diets),
		})
	}
	return items, nil
}
