package repository

import (
	"context"

	"github.com/Stepka365/gym-tracker/internal/core/domain"
)

type FileConfigRepository struct {
	doc document
}

func NewFileConfigRepository(path string) *FileConfigRepository {
	return &FileConfigRepository{doc: document{path: path}}
}

func (r *FileConfigRepository) Get(ctx context.Context) (*domain.GymConfig, error) {
	var cfg domain.GymConfig
	if err := r.doc.read(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
