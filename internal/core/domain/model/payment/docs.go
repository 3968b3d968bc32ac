// Package payment holds the settlement artifacts: the Scope of a settlement
// (one seat or the whole table) and the immutable Record journaled for each
// successful payment. Records are written before the seats are released so
// a crash in between leaves a recoverable, never a double-charged, state.
package payment
