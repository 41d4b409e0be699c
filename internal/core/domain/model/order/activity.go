package order

import (
	"time"

	"bakeshop/internal/pkg/errs"
)

// ActivityEntry is one record of the order's append-only activity log:
// a status label, the moment it was recorded, and a free-text message.
// Entries are never rewritten or deduplicated - re-applying the current
// status produces a second entry with the same label.
type ActivityEntry struct {
	status     string
	occurredAt time.Time
	message    string
}

// NewActivityEntry creates a log entry. The status label must be non-empty;
// the message may be empty.
func NewActivityEntry(status string, occurredAt time.Time, message string) (ActivityEntry, error) {
	if status == "" {
		return ActivityEntry{}, errs.NewValueIsRequiredError("activity status")
	}
	if occurredAt.IsZero() {
		return ActivityEntry{}, errs.NewValueIsRequiredError("activity timestamp")
	}
	return ActivityEntry{status: status, occurredAt: occurredAt, message: message}, nil
}

// Status returns the status label recorded for this entry.
func (e ActivityEntry) Status() string {
	return e.status
}

// OccurredAt returns when the entry was recorded.
func (e ActivityEntry) OccurredAt() time.Time {
	return e.occurredAt
}

// Message returns the free-text message.
func (e ActivityEntry) Message() string {
	return e.message
}
