package services

import (
	"context"

	"github.com/Stepka365/gym-tracker/internal/core/domain"
)

type ScheduleService struct {
	repo domain.ConfigRepository
}

func NewScheduleService(repo domain.ConfigRepository) *ScheduleService {
	return &ScheduleService{repo: repo}
}

// Get returns the persisted weekday schedule unchanged.
func (s *ScheduleService) Get(ctx context.Context) (*domain.GymConfig, error) {
	return s.repo.Get(ctx)
}
