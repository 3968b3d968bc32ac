// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the restaurant engine.
// It implements workflows that don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - Settler: computes settlement totals across the seats in scope and
//     produces the immutable payment record
package services
