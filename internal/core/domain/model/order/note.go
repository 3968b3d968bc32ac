package order

import (
	"time"

	"restaurant/internal/pkg/errs"
)

// Note is a free-form annotation a client attaches to an order ("sin sal",
// "extra queso"). Notes are append-only on the order but individually
// removable, and survive the send-to-kitchen cutoff.
type Note struct {
	text string
	at   time.Time
}

// NewNote creates a note with its text and creation time.
// The text must not be empty.
func NewNote(text string, at time.Time) (Note, error) {
	if text == "" {
		return Note{}, errs.NewValueIsRequiredError("note text")
	}
	if at.IsZero() {
		return Note{}, errs.NewValueIsRequiredError("note time")
	}
	return Note{text: text, at: at}, nil
}

// Text returns the note text.
func (n Note) Text() string {
	return n.text
}

// At returns the note creation time.
func (n Note) At() time.Time {
	return n.at
}
