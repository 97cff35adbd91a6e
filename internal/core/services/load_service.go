package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Stepka365/gym-tracker/internal/core/domain"
)

type LoadService struct {
	config   domain.ConfigRepository
	tracking domain.TrackingRepository
	loads    domain.LoadRepository
}

func NewLoadService(
	config domain.ConfigRepository,
	tracking domain.TrackingRepository,
	loads domain.LoadRepository,
) *LoadService {
	return &LoadService{
		config:   config,
		tracking: tracking,
		loads:    loads,
	}
}

// Aggregate scans the date's event sequence up to (strictly before) the
// query time, writes the resulting slot count and the day's running entry
// sum into the processed-data document and returns the whole updated
// document. A query outside the weekday's [opening, closing) window
// produces no aggregate and no mutation: both return values are nil.
func (s *LoadService) Aggregate(ctx context.Context, gym string, date time.Time, at domain.Clock) (domain.ProcessedData, error) {
	if gym != domain.SupportedGym {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedGym, gym)
	}

	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, err
	}
	hours, err := cfg.Hours(domain.WeekdayName(date))
	if err != nil {
		return nil, err
	}
	if !hours.Contains(at) {
		return nil, nil
	}

	dateKey := domain.FormatDate(date)
	events, err := s.tracking.Day(ctx, dateKey)
	if err != nil {
		return nil, err
	}
	net, entries := countVisitors(events, at)

	data, err := s.loads.Get(ctx)
	if err != nil {
		return nil, err
	}

	gymLoad, ok := data[gym]
	if !ok || gymLoad == nil {
		gymLoad = &domain.GymLoad{Load: make(map[string]*domain.DayLoad)}
		data[gym] = gymLoad
	}
	day, ok := gymLoad.Load[dateKey]
	if !ok || day == nil {
		day = domain.NewDayLoad()
		gymLoad.Load[dateKey] = day
	}
	day.Slots[at.Slot()] = domain.SlotCount{VisitorsNum: net}
	day.VisitorsSum = &entries

	if err := s.loads.Save(ctx, data); err != nil {
		return nil, err
	}
	return data, nil
}

// countVisitors replays the time-sorted sequence and stops at the first
// event at or after the query time, so an event exactly at the query time
// never counts. net moves by +-1 per event; entries counts check-ins only.
func countVisitors(events []domain.Event, at domain.Clock) (net, entries int) {
	for _, e := range events {
		if e.Time >= at {
			return net, entries
		}
		if e.Status == domain.StatusIn {
			net++
			entries++
		} else {
			net--
		}
	}
	return net, entries
}
