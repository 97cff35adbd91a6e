package repository

import (
	"context"

	"github.com/Stepka365/gym-tracker/internal/core/domain"
)

type FileLoadRepository struct {
	doc document
}

func NewFileLoadRepository(path string) *FileLoadRepository {
	return &FileLoadRepository{doc: document{path: path}}
}

func (r *FileLoadRepository) Get(ctx context.Context) (domain.ProcessedData, error) {
	var data domain.ProcessedData
	if err := r.doc.read(&data); err != nil {
		return nil, err
	}
	if data == nil {
		data = make(domain.ProcessedData)
	}
	return data, nil
}

func (r *FileLoadRepository) Save(ctx context.Context, data domain.ProcessedData) error {
	return r.doc.write(data)
}
