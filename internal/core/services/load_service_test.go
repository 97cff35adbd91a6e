package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stepka365/gym-tracker/internal/core/domain"
	"github.com/Stepka365/gym-tracker/internal/core/services"
)

const testDate = "2024-05-09"

func scanFixture() []domain.Event {
	return []domain.Event{
		{UserID: 1, Time: domain.NewClock(8, 0), Status: domain.StatusIn},
		{UserID: 2, Time: domain.NewClock(8, 30), Status: domain.StatusIn},
		{UserID: 1, Time: domain.NewClock(9, 0), Status: domain.StatusOut},
	}
}

func newLoadService(loads *mockLoadRepo) *services.LoadService {
	tracking := newMockTrackingRepo()
	tracking.days[testDate] = scanFixture()
	return services.NewLoadService(
		&mockConfigRepo{cfg: allWeekHours(domain.NewClock(8, 0), domain.NewClock(22, 0))},
		tracking,
		loads,
	)
}

func aggregateAt(t *testing.T, svc *services.LoadService, at domain.Clock) domain.ProcessedData {
	t.Helper()
	date, err := domain.ParseDate(testDate)
	require.NoError(t, err)
	data, err := svc.Aggregate(context.Background(), domain.SupportedGym, date, at)
	require.NoError(t, err)
	return data
}

func TestLoadService_ScanStopsStrictlyBeforeQueryTime(t *testing.T) {
	cases := []struct {
		at      domain.Clock
		net     int
		entries int
	}{
		{domain.NewClock(8, 45), 2, 2},
		// The 09:00 check-out sits exactly at the query time and is excluded.
		{domain.NewClock(9, 0), 2, 2},
		{domain.NewClock(9, 1), 1, 2},
	}

	for _, tc := range cases {
		svc := newLoadService(newMockLoadRepo())
		data := aggregateAt(t, svc, tc.at)

		day := data[domain.SupportedGym].Load[testDate]
		require.NotNil(t, day, "at %s", tc.at.Slot())
		assert.Equal(t, tc.net, day.Slots[tc.at.Slot()].VisitorsNum, "at %s", tc.at.Slot())
		require.NotNil(t, day.VisitorsSum)
		assert.Equal(t, tc.entries, *day.VisitorsSum, "at %s", tc.at.Slot())
	}
}

func TestLoadService_AccumulatesSlotsForOneDay(t *testing.T) {
	loads := newMockLoadRepo()
	svc := newLoadService(loads)

	aggregateAt(t, svc, domain.NewClock(8, 45))
	data := aggregateAt(t, svc, domain.NewClock(9, 30))

	day := data[domain.SupportedGym].Load[testDate]
	assert.Len(t, day.Slots, 2)
	assert.Equal(t, 2, day.Slots["08:45"].VisitorsNum)
	assert.Equal(t, 1, day.Slots["09:30"].VisitorsNum)
	assert.Equal(t, 2, loads.saveCalls)
}

func TestLoadService_OutsideHoursIsNoOp(t *testing.T) {
	loads := newMockLoadRepo()
	svc := newLoadService(loads)
	date, err := domain.ParseDate(testDate)
	require.NoError(t, err)

	for _, at := range []domain.Clock{
		domain.NewClock(7, 59),
		domain.NewClock(22, 0), // closing time itself is outside [opening, closing)
		domain.NewClock(23, 30),
	} {
		data, err := svc.Aggregate(context.Background(), domain.SupportedGym, date, at)
		require.NoError(t, err)
		assert.Nil(t, data, "at %s", at.Slot())
	}
	assert.Zero(t, loads.saveCalls)
}

func TestLoadService_UnsupportedGym(t *testing.T) {
	svc := newLoadService(newMockLoadRepo())
	date, err := domain.ParseDate(testDate)
	require.NoError(t, err)

	_, err = svc.Aggregate(context.Background(), "IronTemple", date, domain.NewClock(9, 0))
	assert.ErrorIs(t, err, domain.ErrUnsupportedGym)
}

func TestLoadService_UntrackedDate(t *testing.T) {
	svc := newLoadService(newMockLoadRepo())
	date, err := domain.ParseDate("2024-05-10")
	require.NoError(t, err)

	_, err = svc.Aggregate(context.Background(), domain.SupportedGym, date, domain.NewClock(9, 0))
	assert.ErrorIs(t, err, domain.ErrDayNotTracked)
}
