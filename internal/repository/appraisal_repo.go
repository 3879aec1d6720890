package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/kongx-dev/retailstar-sol-sub001/internal/domain"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// ListFilter selects a page of appraisal records, newest first.
type ListFilter struct {
	Limit   int
	Offset  int
	Tier    string
	Name    string
	BatchID string
}

// AppraisalRepository persists appraisal history.
type AppraisalRepository struct {
	db *gorm.DB
}

// NewAppraisalRepository creates a new AppraisalRepository.
func NewAppraisalRepository(db *gorm.DB) *AppraisalRepository {
	return &AppraisalRepository{db: db}
}

// Create inserts a new appraisal record.
func (r *AppraisalRepository) Create(ctx context.Context, rec *domain.AppraisalRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// CreateBatch inserts records in chunks.
func (r *AppraisalRepository) CreateBatch(ctx context.Context, recs []*domain.AppraisalRecord) error {
	if len(recs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(recs, 100).Error
}

// GetByID retrieves an appraisal by its ID.
func (r *AppraisalRepository) GetByID(ctx context.Context, id string) (*domain.AppraisalRecord, error) {
	var rec domain.AppraisalRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

// List returns a page of records and the total count matching the filter.
func (r *AppraisalRepository) List(ctx context.Context, f ListFilter) ([]*domain.AppraisalRecord, int64, error) {
	filtered := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&domain.AppraisalRecord{})
		if f.Tier != "" {
			query = query.Where("tier = ?", f.Tier)
		}
		if f.Name != "" {
			query = query.Where("name = ?", f.Name)
		}
		if f.BatchID != "" {
			query = query.Where("batch_id = ?", f.BatchID)
		}
		return query
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count appraisals: %w", err)
	}

	var recs []*domain.AppraisalRecord
	if err := filtered().
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&recs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list appraisals: %w", err)
	}
	return recs, total, nil
}

// Stats aggregates totals, the average final score, a tier histogram and the
// topN highest scoring records.
func (r *AppraisalRepository) Stats(ctx context.Context, topN int) (*domain.AppraisalStats, error) {
	db := r.db.WithContext(ctx)
	stats := &domain.AppraisalStats{
		ByTier:   []domain.TierCount{},
		TopNames: []*domain.AppraisalRecord{},
	}

	var agg struct {
		Total   int64
		Average float64
	}
	if err := db.Model(&domain.AppraisalRecord{}).
		Select("COUNT(*) AS total, COALESCE(AVG(final_score), 0) AS average").
		Scan(&agg).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate appraisals: %w", err)
	}
	stats.Total = agg.Total
	stats.AverageScore = agg.Average

	if err := db.Model(&domain.AppraisalRecord{}).
		Select("tier, COUNT(*) AS count").
		Group("tier").
		Order("tier").
		Scan(&stats.ByTier).Error; err != nil {
		return nil, fmt.Errorf("failed to group appraisals by tier: %w", err)
	}

	if topN > 0 {
		if err := db.Order("final_score DESC").
			Order("created_at DESC").
			Limit(topN).
			Find(&stats.TopNames).Error; err != nil {
			return nil, fmt.Errorf("failed to load top appraisals: %w", err)
		}
	}
	return stats, nil
}

// Delete removes an appraisal by ID.
func (r *AppraisalRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.AppraisalRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
