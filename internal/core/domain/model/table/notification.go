package table

import (
	"time"

	"restaurant/internal/pkg/errs"
)

// Notification kinds, matching the events the kitchen emits.
const (
	NotificationGeneral = "general"
	NotificationKitchen = "kitchen"
	NotificationDelay   = "delay"
)

// Notification is an informational message attached to a table, emitted by
// staff actions (order ready, delay flagged). Notifications accumulate until
// the table is reset.
type Notification struct {
	message   string
	kind      string
	createdAt time.Time
}

// NewNotification creates a notification of the given kind.
func NewNotification(message, kind string, createdAt time.Time) (Notification, error) {
	if message == "" {
		return Notification{}, errs.NewValueIsRequiredError("notification message")
	}
	if kind == "" {
		kind = NotificationGeneral
	}
	return Notification{message: message, kind: kind, createdAt: createdAt}, nil
}

// Message returns the notification text.
func (n Notification) Message() string { return n.message }

// Kind returns the notification kind.
func (n Notification) Kind() string { return n.kind }

// CreatedAt returns when the notification was emitted.
func (n Notification) CreatedAt() time.Time { return n.createdAt }
