package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stepka365/gym-tracker/internal/core/domain"
	"github.com/Stepka365/gym-tracker/internal/core/services"
)

func seedMembers() []domain.Member {
	return []domain.Member{
		{Phone: "+100", ID: 1, EndDate: "2026-01-01"},
		{Phone: "+200", ID: 7, EndDate: "2026-02-01"},
		{Phone: "+100", ID: 3, EndDate: "2026-03-01"},
	}
}

func TestMemberService_ListAll(t *testing.T) {
	repo := &mockMemberRepo{members: seedMembers()}
	svc := services.NewMemberService(repo)

	members, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, members, 3)
	// Storage order is preserved.
	assert.Equal(t, 1, members[0].ID)
	assert.Equal(t, 7, members[1].ID)
	assert.Equal(t, 3, members[2].ID)
}

func TestMemberService_ListByPhone(t *testing.T) {
	repo := &mockMemberRepo{members: seedMembers()}
	svc := services.NewMemberService(repo)

	matched, err := svc.List(context.Background(), "+100")
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, 1, matched[0].ID)
	assert.Equal(t, 3, matched[1].ID)
}

func TestMemberService_ListNoMatchIsNilNotError(t *testing.T) {
	repo := &mockMemberRepo{members: seedMembers()}
	svc := services.NewMemberService(repo)

	matched, err := svc.List(context.Background(), "+999")
	require.NoError(t, err)
	assert.Nil(t, matched)
}

func TestMemberService_ListPropagatesStorageError(t *testing.T) {
	repo := &mockMemberRepo{simulateError: errors.New("disk gone")}
	svc := services.NewMemberService(repo)

	_, err := svc.List(context.Background(), "")
	assert.Error(t, err)
}

func TestMemberService_RegisterAssignsNextID(t *testing.T) {
	repo := &mockMemberRepo{members: seedMembers()}
	svc := services.NewMemberService(repo)

	first, err := svc.Register(context.Background(), "+300", 1)
	require.NoError(t, err)
	assert.Equal(t, 8, first.ID)
	assert.Equal(t, 0, first.AdminRights)
	assert.Equal(t, "+300", first.Phone)

	second, err := svc.Register(context.Background(), "+400", 2)
	require.NoError(t, err)
	assert.Equal(t, 9, second.ID)

	require.Len(t, repo.saved, 5)
	assert.Equal(t, 9, repo.saved[4].ID)
}

func TestMemberService_RegisterEndDate(t *testing.T) {
	repo := &mockMemberRepo{members: []domain.Member{{Phone: "+1", ID: 1}}}
	svc := services.NewMemberService(repo)

	fixed, err := domain.ParseDate("2026-08-31")
	require.NoError(t, err)
	services.SetNow(svc, fixed)

	member, err := svc.Register(context.Background(), "+2", 2)
	require.NoError(t, err)
	// 2 months = 60 days from 2026-08-31.
	assert.Equal(t, "2026-10-30", member.EndDate)
}

func TestMemberService_RegisterEmptyRegistry(t *testing.T) {
	repo := &mockMemberRepo{}
	svc := services.NewMemberService(repo)

	_, err := svc.Register(context.Background(), "+1", 1)
	assert.ErrorIs(t, err, domain.ErrEmptyRegistry)
	assert.Nil(t, repo.saved)
}
