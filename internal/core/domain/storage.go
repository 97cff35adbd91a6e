package domain

import (
	"context"
	"errors"
)

var ErrDocumentMissing = errors.New("document not found")

// Each repository wraps exactly one flat JSON document. Reads re-open the
// file on every call; there is no in-process cache between requests.

type ConfigRepository interface {
	// Get loads the full weekday schedule document.
	Get(ctx context.Context) (*GymConfig, error)
}

type MemberRepository interface {
	// List returns all members in storage order.
	List(ctx context.Context) ([]Member, error)

	// SaveAll rewrites the whole registry document.
	SaveAll(ctx context.Context, members []Member) error
}

type TrackingRepository interface {
	// Day returns the recorded events for an ISO date key, or
	// ErrDayNotTracked when the key is absent.
	Day(ctx context.Context, date string) ([]Event, error)

	// SaveDay overwrites the ISO date key with a fresh event sequence.
	SaveDay(ctx context.Context, date string, events []Event) error
}

type LoadRepository interface {
	// Get loads the full processed-data document.
	Get(ctx context.Context) (ProcessedData, error)

	// Save rewrites the full processed-data document.
	Save(ctx context.Context, data ProcessedData) error
}
