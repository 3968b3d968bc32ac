// Package menu provides the JSON-backed menu catalog. The menu file is
// loaded once at startup; dish prices are snapshotted onto orders at
// placement time, so live edits to the file never change what a seated
// client owes.
package menu

import (
	"encoding/json"
	"os"
	"slices"

	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

type dishDTO struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	UnitPrice int      `json:"unit_price"`
	Stage     string   `json:"stage,omitempty"`
	Category  string   `json:"category,omitempty"`
	Diets     []string `json:"diets,omitempty"`
}

// Catalog implements ports.MenuCatalog from a JSON file of dishes.
type Catalog struct {
	dishes []ports.Dish
	byID   map[string]ports.Dish
}

// NewCatalog loads the menu from path. Duplicate dish ids and non-positive
// prices are rejected up front so every later Resolve is trustworthy.
func NewCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.NewPersistenceFailureError(path, err)
	}

	var dtos []dishDTO
	if err = json.Unmarshal(raw, &dtos); err != nil {
		return nil, errs.NewPersistenceFailureError(path, err)
	}

	c := &Catalog{byID: make(map[string]ports.Dish, len(dtos))}
	for _, d := range dtos {
		if d.ID == "" {
			return nil, errs.NewValueIsRequiredError("dish id")
		}
		if d.Name == "" {
			return nil, errs.NewValueIsRequiredError("dish name")
		}
		if d.UnitPrice < 0 {
			return nil, errs.NewValueIsOutOfRangeError("unit price", d.UnitPrice, 0, "unbounded")
		}
		if _, ok := c.byID[d.ID]; ok {
			return nil, errs.NewValueIsInvalidError("dish id " + d.ID)
		}

		dish := ports.Dish{
			ID:        d.ID,
			Name:      d.Name,
			UnitPrice: d.UnitPrice,
			Stage:     d.Stage,
			Category:  d.Category,
			Diets:     slices.Clone(d.Diets),
		}
		c.dishes = append(c.dishes, dish)
		c.byID[d.ID] = dish
	}
	return c, nil
}

// Resolve returns the dish with the given id.
func (c *Catalog) Resolve(id string) (ports.Dish, error) {
	dish, ok := c.byID[id]
	if !ok {
		return ports.Dish{}, errs.NewObjectNotFoundError("dishId", id)
	}
	return dish, nil
}

// All returns every dish in menu order.
func (c *Catalog) All() []ports.Dish {
	return slices.Clone(c.dishes)
}
