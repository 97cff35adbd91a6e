package repository

import (
	"context"

	"github.com/Stepka365/gym-tracker/internal/core/domain"
)

type FileMemberRepository struct {
	doc document
}

func NewFileMemberRepository(path string) *FileMemberRepository {
	return &FileMemberRepository{doc: document{path: path}}
}

func (r *FileMemberRepository) List(ctx context.Context) ([]domain.Member, error) {
	var members []domain.Member
	if err := r.doc.read(&members); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *FileMemberRepository) SaveAll(ctx context.Context, members []domain.Member) error {
	return r.doc.write(members)
}
