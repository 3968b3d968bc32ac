package table

import (
	"time"

	"restaurant/internal/pkg/errs"
)

// WaiterRequest is a free-text message from a seated client to the staff
// ("Necesito más pan"). Requests have a lifecycle independent from orders:
// they are created by a customer action, become terminal when a waiter
// marks them resolved, and are never deleted, only flagged, so they stay
// visible in audit views until the table is reset.
type WaiterRequest struct {
	clientName string
	message    string
	createdAt  time.Time
	resolved   bool
}

// NewWaiterRequest creates an unresolved request. Empty messages are
// rejected so a client cannot page the staff with nothing to say.
func NewWaiterRequest(clientName, message string, createdAt time.Time) (WaiterRequest, error) {
	if clientName == "" {
		return WaiterRequest{}, errs.NewValueIsRequiredError("client name")
	}
	if message == "" {
		return WaiterRequest{}, errs.NewValueIsRequiredError("request message")
	}
	return WaiterRequest{clientName: clientName, message: message, createdAt: createdAt}, nil
}

// RestoreWaiterRequest reconstructs a request from persistence, including
// its resolved flag.
func RestoreWaiterRequest(clientName, message string, createdAt time.Time, resolved bool) (WaiterRequest, error) {
	req, err := NewWaiterRequest(clientName, message, createdAt)
	if err != nil {
		return WaiterRequest{}, err
	}
	req.resolved = resolved
	return req, nil
}

// ClientName returns the name of the client who raised the request.
func (r WaiterRequest) ClientName() string { return r.clientName }

// Message returns the request text.
func (r WaiterRequest) Message() string { return r.message }

// CreatedAt returns when the request was raised.
func (r WaiterRequest) CreatedAt() time.Time { return r.createdAt }

// Resolved reports whether a waiter has handled the request.
func (r WaiterRequest) Resolved() bool { return r.resolved }
