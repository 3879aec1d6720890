package repository

import (
	"context"

	"github.com/kongx-dev/retailstar-sol-sub001/internal/domain"
	"gorm.io/gorm"
)

// BatchRepository persists batch appraisal jobs.
type BatchRepository struct {
	db *gorm.DB
}

func NewBatchRepository(db *gorm.DB) *BatchRepository {
	return &BatchRepository{db: db}
}

func (r *BatchRepository) Create(ctx context.Context, job *domain.BatchJob) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *BatchRepository) Update(ctx context.Context, job *domain.BatchJob) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *BatchRepository) GetByID(ctx context.Context, id string) (*domain.BatchJob, error) {
	var job domain.BatchJob
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &job, nil
}
