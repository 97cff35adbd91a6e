package domain

import "errors"

var ErrDayNotTracked = errors.New("no tracking recorded for date")

const (
	StatusIn  = "in"
	StatusOut = "out"
)

// Event is a single check-in or check-out occurrence. A day's tracking is
// a sequence of events sorted ascending by time; statuses are not required
// to alternate per member, since entries and exits are appended
// independently and interleave across members.
type Event struct {
	UserID int    `json:"u_id"`
	Time   Clock  `json:"time"`
	Status string `json:"status"`
}

// TrackingLog is the persisted tracking.json document, keyed by ISO date.
type TrackingLog map[string][]Event
