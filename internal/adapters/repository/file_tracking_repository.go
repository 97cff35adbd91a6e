package repository

import (
	"context"
	"fmt"

	"github.com/Stepka365/gym-tracker/internal/core/domain"
)

type FileTrackingRepository struct {
	doc document
}

func NewFileTrackingRepository(path string) *FileTrackingRepository {
	return &FileTrackingRepository{doc: document{path: path}}
}

func (r *FileTrackingRepository) Day(ctx context.Context, date string) ([]domain.Event, error) {
	var log domain.TrackingLog
	if err := r.doc.read(&log); err != nil {
		return nil, err
	}
	events, ok := log[date]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDayNotTracked, date)
	}
	return events, nil
}

// SaveDay holds the document lock across the read-modify-write so two
// generators for different dates cannot drop each other's entries.
func (r *FileTrackingRepository) SaveDay(ctx context.Context, date string, events []domain.Event) error {
	r.doc.mu.Lock()
	defer r.doc.mu.Unlock()

	var log domain.TrackingLog
	if err := r.doc.readLocked(&log); err != nil {
		return err
	}
	if log == nil {
		log = make(domain.TrackingLog)
	}
	log[date] = events
	return r.doc.writeLocked(log)
}
