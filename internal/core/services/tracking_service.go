package services

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/Stepka365/gym-tracker/internal/core/domain"
)

const (
	// skipProbability is the chance a member sits a given day out.
	skipProbability = 0.7
	// eveningProbability picks the evening session over the midday one.
	eveningProbability = 0.7

	eveningMeanSec = 18 * 60 * 60
	middayMeanSec  = 12 * 60 * 60
	entryStddevSec = 30 * 60
	// meanSessionSec is the mean of the exponential session length.
	meanSessionSec = 60 * 60
)

type TrackingService struct {
	members  domain.MemberRepository
	tracking domain.TrackingRepository
	config   domain.ConfigRepository
	rng      *rand.Rand
}

// NewTrackingService takes an explicit random source so generation is
// reproducible under a fixed seed.
func NewTrackingService(
	members domain.MemberRepository,
	tracking domain.TrackingRepository,
	config domain.ConfigRepository,
	rng *rand.Rand,
) *TrackingService {
	return &TrackingService{
		members:  members,
		tracking: tracking,
		config:   config,
		rng:      rng,
	}
}

// Generate simulates one day of check-ins and check-outs for every
// registered member, persists the sequence under the date key (replacing
// any prior entry for that date) and returns it.
//
// Per member: skip the day with probability 0.7; otherwise draw an entry
// instant from N(18:00, 30m) for an evening session or N(12:00, 30m) for
// a midday one, a session length from Exp(mean 1h), truncate both
// instants to the minute and clamp them into the weekday's operating
// window. Both events are emitted even when clamping collapses the
// session to a point.
func (s *TrackingService) Generate(ctx context.Context, date time.Time) ([]domain.Event, error) {
	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, err
	}
	hours, err := cfg.Hours(domain.WeekdayName(date))
	if err != nil {
		return nil, err
	}
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, 2*len(members))
	for _, m := range members {
		if s.rng.Float64() < skipProbability {
			continue
		}

		mean := middayMeanSec
		if s.rng.Float64() < eveningProbability {
			mean = eveningMeanSec
		}
		entrySec := int(s.rng.NormFloat64()*entryStddevSec) + mean
		exitSec := entrySec + int(s.rng.ExpFloat64()*meanSessionSec)

		entry := hours.Clamp(domain.ClockFromSeconds(entrySec))
		exit := hours.Clamp(domain.ClockFromSeconds(exitSec))

		events = append(events,
			domain.Event{UserID: m.ID, Time: entry, Status: domain.StatusIn},
			domain.Event{UserID: m.ID, Time: exit, Status: domain.StatusOut},
		)
	}

	// Stable, so simultaneous events keep registry order.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})

	if err := s.tracking.SaveDay(ctx, domain.FormatDate(date), events); err != nil {
		return nil, err
	}
	return events, nil
}
