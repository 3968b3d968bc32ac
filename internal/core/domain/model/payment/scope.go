package payment

import (
	"restaurant/internal/pkg/errs"
)

// Scope says whether a settlement covers one seat or the whole table.
// Group settlement is only offered when more than one seat is occupied.
type Scope int

const (
	// Unknown represents an invalid or undefined scope.
	Unknown Scope = iota

	// Individual settles the invoking client's seat only.
	Individual

	// Group settles every occupied seat at once.
	Group
)

func getScopeStrings() map[Scope]string {
	return map[Scope]string{
		Unknown:    "Unknown",
		Individual: "Individual",
		Group:      "Group",
	}
}

// Validate checks if the Scope value is Individual or Group.
func (s Scope) Validate() error {
	if s != Individual && s != Group {
		return errs.NewValueIsInvalidErrorWithCause("payment scope",
			errs.NewValueIsOutOfRangeError("payment scope", int(s), int(Individual), int(Group)))
	}
	return nil
}

// String returns the canonical name of the scope.
// Implements fmt.Stringer.
func (s Scope) String() string {
	if str, ok := getScopeStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ScopeFromString parses a scope name ("individual", "group"),
// case-insensitively on the first letter forms used by callers.
func ScopeFromString(raw string) (Scope, error) {
	switch raw {
	case "individual", "Individual":
		return Individual, nil
	case "group", "Group":
		return Group, nil
	default:
		return Unknown, errs.NewValueIsInvalidError("payment scope")
	}
}
