package services

import (
	"context"
	"time"

	"github.com/Stepka365/gym-tracker/internal/core/domain"
)

// daysPerMonth approximates a membership month as a 30-day block.
const daysPerMonth = 30

type MemberService struct {
	repo domain.MemberRepository
	now  func() time.Time
}

func NewMemberService(repo domain.MemberRepository) *MemberService {
	return &MemberService{
		repo: repo,
		now:  time.Now,
	}
}

// List returns all members, or the exact phone matches when phone is
// non-empty. No match yields a nil slice with a nil error; the handler
// renders that as null, distinct from a storage failure.
func (s *MemberService) List(ctx context.Context, phone string) ([]domain.Member, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if phone == "" {
		return members, nil
	}
	var matched []domain.Member
	for _, m := range members {
		if m.Phone == phone {
			matched = append(matched, m)
		}
	}
	return matched, nil
}

// Register appends a new member with id = max existing id + 1 and a
// membership ending durationMonths 30-day blocks from today. The registry
// must already hold at least one member, since ids are derived from it.
func (s *MemberService) Register(ctx context.Context, phone string, durationMonths int) (*domain.Member, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, domain.ErrEmptyRegistry
	}

	maxID := members[0].ID
	for _, m := range members[1:] {
		if m.ID > maxID {
			maxID = m.ID
		}
	}

	end := s.now().AddDate(0, 0, durationMonths*daysPerMonth)
	member := domain.Member{
		Phone:       phone,
		ID:          maxID + 1,
		AdminRights: 0,
		EndDate:     domain.FormatDate(end),
	}

	members = append(members, member)
	if err := s.repo.SaveAll(ctx, members); err != nil {
		return nil, err
	}
	return &member, nil
}
