package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Stepka365/gym-tracker/internal/core/domain"
)

type ReportService struct {
	config domain.ConfigRepository
	loads  domain.LoadRepository
}

func NewReportService(config domain.ConfigRepository, loads domain.LoadRepository) *ReportService {
	return &ReportService{
		config: config,
		loads:  loads,
	}
}

func (s *ReportService) gymLoad(ctx context.Context, gym string) (*domain.GymLoad, error) {
	data, err := s.loads.Get(ctx)
	if err != nil {
		return nil, err
	}
	load, ok := data[gym]
	if !ok || load == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrGymNotProcessed, gym)
	}
	return load, nil
}

// Dates returns per-day load documents for a date range. Equal endpoints
// return that single day's raw document. Otherwise from must not exceed
// to, and the upper bound is exclusive: to's own day is never included.
// Days absent from storage are skipped; included days are copies tagged
// with their zero-padded day-of-month under the "date" key.
func (s *ReportService) Dates(ctx context.Context, gym string, from, to time.Time) ([]*domain.DayLoad, error) {
	load, err := s.gymLoad(ctx, gym)
	if err != nil {
		return nil, err
	}

	if from.Equal(to) {
		day, ok := load.Load[domain.FormatDate(from)]
		if !ok || day == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrDateNotProcessed, domain.FormatDate(from))
		}
		return []*domain.DayLoad{day}, nil
	}

	if from.After(to) {
		return nil, domain.ErrInvalidDateRange
	}

	days := make([]*domain.DayLoad, 0)
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		key := domain.FormatDate(d)
		day, ok := load.Load[key]
		if !ok || day == nil {
			continue
		}
		tagged := day.Clone()
		tagged.Date = key[len(key)-2:]
		days = append(days, tagged)
	}
	return days, nil
}

// Point returns the stored count for one date and slot. Times that the
// weekday's clamp would move, i.e. slots the aggregator could never have
// produced, yield (nil, nil) rather than an error.
func (s *ReportService) Point(ctx context.Context, gym string, date time.Time, at domain.Clock) (*domain.SlotCount, error) {
	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, err
	}
	hours, err := cfg.Hours(domain.WeekdayName(date))
	if err != nil {
		return nil, err
	}
	if hours.Clamp(at) != at {
		return nil, nil
	}

	load, err := s.gymLoad(ctx, gym)
	if err != nil {
		return nil, err
	}
	day, ok := load.Load[domain.FormatDate(date)]
	if !ok || day == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDateNotProcessed, domain.FormatDate(date))
	}
	count, ok := day.Slots[at.Slot()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSlotNotFound, at.Slot())
	}
	return &count, nil
}

// Series lists the day's slots at or before the query time in ascending
// order, paired with 0-based indexes for charting. The day's visitors_sum
// sibling carries no per-slot count and is never part of the series.
func (s *ReportService) Series(ctx context.Context, gym string, date time.Time, at domain.Clock) (*domain.ChartSeries, error) {
	load, err := s.gymLoad(ctx, gym)
	if err != nil {
		return nil, err
	}
	day, ok := load.Load[domain.FormatDate(date)]
	if !ok || day == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDateNotProcessed, domain.FormatDate(date))
	}

	cutoff := at.Slot()
	slots := make([]string, 0, len(day.Slots))
	for slot := range day.Slots {
		if slot <= cutoff {
			slots = append(slots, slot)
		}
	}
	sort.Strings(slots)

	series := &domain.ChartSeries{
		Time: make([]int, 0, len(slots)),
		Data: make([]int, 0, len(slots)),
	}
	for i, slot := range slots {
		series.Time = append(series.Time, i)
		series.Data = append(series.Data, day.Slots[slot].VisitorsNum)
	}
	return series, nil
}
