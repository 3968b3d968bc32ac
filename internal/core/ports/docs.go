// Package ports defines the boundary interfaces of the application core:
// the table store, the menu catalog, and the payment journal. Adapters in
// internal/adapters implement them; command and query handlers depend only
// on these contracts.
package ports
