package ports

// Dish is one menu entry. UnitPrice is in minor currency units; orders
// snapshot it at placement time so later menu edits never change what a
// seated client owes.
type Dish struct {
	ID        string
	Name      string
	UnitPrice int
	Stage     string
	Category  string
	Diets     []string
}

// MenuCatalog resolves dish identifiers against the restaurant menu.
type MenuCatalog interface {
	// Resolve returns the dish with the given id.
	Resolve(id string) (Dish, error)

	// All returns every dish on the menu, in menu order.
	All() []Dish
}
