package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrCapacityExceeded   = errors.New("capacity exceeded")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrPersistenceFailure = errors.New("persistence failure")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

// ObjectNotFoundError indicates a lookup by identifier found nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates a value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value fell outside its allowed range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping a cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidTransitionError indicates an order state change that the lifecycle
// state machine forbids.
type InvalidTransitionError struct {
	OrderID string
	From    string
	To      string
	Cause   error
}

// NewInvalidTransitionError creates an InvalidTransitionError without a cause.
func NewInvalidTransitionError(orderID, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{OrderID: orderID, From: from, To: to}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping a cause.
func NewInvalidTransitionErrorWithCause(orderID, from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{OrderID: orderID, From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: order %s cannot go from %s to %s (cause: %s)",
			ErrInvalidTransition, e.OrderID, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: order %s cannot go from %s to %s",
		ErrInvalidTransition, e.OrderID, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// CapacityExceededError indicates a seat registration on a table with no
// unbound seats left.
type CapacityExceededError struct {
	TableID  string
	Capacity int
}

// NewCapacityExceededError creates a CapacityExceededError.
func NewCapacityExceededError(tableID string, capacity int) *CapacityExceededError {
	return &CapacityExceededError{TableID: tableID, Capacity: capacity}
}

func (e *CapacityExceededError) Error() string {
	return sanitize(fmt.Sprintf("%s: table %s seats %d", ErrCapacityExceeded, e.TableID, e.Capacity))
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// PreconditionFailedError indicates an operation rejected because the table
// state does not satisfy its prerequisites (e.g. settlement with undelivered
// orders). Details carries the offending items for the caller to render.
type PreconditionFailedError struct {
	Reason  string
	Details []string
	Cause   error
}

// NewPreconditionFailedError creates a PreconditionFailedError.
func NewPreconditionFailedError(reason string, details ...string) *PreconditionFailedError {
	return &PreconditionFailedError{Reason: reason, Details: details}
}

// NewPreconditionFailedErrorWithCause creates a PreconditionFailedError wrapping a cause.
func NewPreconditionFailedErrorWithCause(reason string, cause error, details ...string) *PreconditionFailedError {
	return &PreconditionFailedError{Reason: reason, Details: details, Cause: cause}
}

func (e *PreconditionFailedError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrPreconditionFailed, e.Reason)
	if len(e.Details) > 0 {
		msg += ": " + strings.Join(e.Details, ", ")
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return sanitize(msg)
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

// PersistenceFailureError indicates a durable write did not complete.
// The in-memory state is rolled back when this is returned; the on-disk
// store retains its last good version.
type PersistenceFailureError struct {
	Path  string
	Cause error
}

// NewPersistenceFailureError creates a PersistenceFailureError wrapping a cause.
func NewPersistenceFailureError(path string, cause error) *PersistenceFailureError {
	return &PersistenceFailureError{Path: path, Cause: cause}
}

func (e *PersistenceFailureError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrPersistenceFailure, e.Path, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrPersistenceFailure, e.Path))
}

func (e *PersistenceFailureError) Unwrap() error {
	return ErrPersistenceFailure
}
