// Package errs provides standardized error types for the restaurant engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: table, seat, order, or dish id unresolved
//   - ValueIsInvalidError / ValueIsRequiredError: input validation failures
//   - InvalidTransitionError: illegal kitchen state change
//   - CapacityExceededError: seat registration on a full table
//   - PreconditionFailedError: operation prerequisites not met
//   - PersistenceFailureError: durable write did not complete
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// All of these are recoverable, typed failures: they are returned to the
// caller, never panicked, and the table state is left unchanged when any
// of them is produced.
package errs
