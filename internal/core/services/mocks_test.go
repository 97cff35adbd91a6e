package services_test

import (
	"context"
	"fmt"

	"github.com/Stepka365/gym-tracker/internal/core/domain"
)

type mockConfigRepo struct {
	cfg           *domain.GymConfig
	simulateError error
}

func (m *mockConfigRepo) Get(ctx context.Context) (*domain.GymConfig, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	return m.cfg, nil
}

type mockMemberRepo struct {
	members       []domain.Member
	saved         []domain.Member
	simulateError error
}

func (m *mockMemberRepo) List(ctx context.Context) ([]domain.Member, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	out := make([]domain.Member, len(m.members))
	copy(out, m.members)
	return out, nil
}

func (m *mockMemberRepo) SaveAll(ctx context.Context, members []domain.Member) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	m.saved = members
	m.members = members
	return nil
}

type mockTrackingRepo struct {
	days          map[string][]domain.Event
	simulateError error
}

func newMockTrackingRepo() *mockTrackingRepo {
	return &mockTrackingRepo{days: make(map[string][]domain.Event)}
}

func (m *mockTrackingRepo) Day(ctx context.Context, date string) ([]domain.Event, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	events, ok := m.days[date]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDayNotTracked, date)
	}
	return events, nil
}

func (m *mockTrackingRepo) SaveDay(ctx context.Context, date string, events []domain.Event) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	m.days[date] = events
	return nil
}

type mockLoadRepo struct {
	data          domain.ProcessedData
	saveCalls     int
	simulateError error
}

func newMockLoadRepo() *mockLoadRepo {
	return &mockLoadRepo{data: make(domain.ProcessedData)}
}

func (m *mockLoadRepo) Get(ctx context.Context) (domain.ProcessedData, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	return m.data, nil
}

func (m *mockLoadRepo) Save(ctx context.Context, data domain.ProcessedData) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	m.data = data
	m.saveCalls++
	return nil
}

// allWeekHours configures every weekday with the same operating window.
func allWeekHours(opening, closing domain.Clock) *domain.GymConfig {
	schedule := make(map[string]domain.DayHours, 7)
	for _, day := range []string{
		"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	} {
		schedule[day] = domain.DayHours{Opening: opening, Closing: closing}
	}
	return &domain.GymConfig{Schedule: schedule}
}
