// Package table implements the Table aggregate: one physical seating unit
// with a fixed set of seats, the clients bound to them, their orders, and
// the table-level waiter requests and notifications.
//
// The aggregate is the unit of mutual exclusion for the whole engine. Every
// mutation, from seat binding through settlement release, happens on one
// Table under the store's per-table scope, so concurrent customer, kitchen,
// and waiter actions on the same table can never interleave their
// read-modify-write cycles.
package table
