package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/appraisal"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/domain"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/logger"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/repository"
)

var (
	ErrAppraisalNotFound = errors.New("appraisal not found")
	ErrBatchNotFound     = errors.New("batch not found")
	ErrBatchTooLarge     = errors.New("batch exceeds maximum size")
	ErrEmptyBatch        = errors.New("batch contains no names")
	ErrHistoryDisabled   = errors.New("appraisal history is disabled")
)

// AppraisalService runs the appraisal engine and, when a history store is
// configured, records every result.
type AppraisalService struct {
	appraisals *repository.AppraisalRepository
	batches    *repository.BatchRepository
	logger     *logger.Logger
	workers    int
	maxBatch   int
	topN       int
}

// AppraisalConfig holds configuration for the appraisal service.
type AppraisalConfig struct {
	Workers      int
	MaxBatchSize int
	TopN         int // size of the leaderboard in Stats
}

// NewAppraisalService creates a new appraisal service. Both repositories may be
// nil, which disables history.
func NewAppraisalService(
	appraisals *repository.AppraisalRepository,
	batches *repository.BatchRepository,
	log *logger.Logger,
	cfg *AppraisalConfig,
) *AppraisalService {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	topN := cfg.TopN
	if topN <= 0 {
		topN = 10
	}
	if log == nil {
		log = logger.GetDefault()
	}
	return &AppraisalService{
		appraisals: appraisals,
		batches:    batches,
		logger:     log,
		workers:    workers,
		maxBatch:   cfg.MaxBatchSize,
		topN:       topN,
	}
}

// logContext makes sure ctx carries a logger, falling back to the service's own.
func (s *AppraisalService) logContext(ctx context.Context) context.Context {
	if logger.FromContext(ctx) != logger.GetDefault() {
		return ctx
	}
	return s.logger.WithContext(ctx)
}

// HistoryEnabled reports whether appraisals are being stored.
func (s *AppraisalService) HistoryEnabled() bool {
	return s.appraisals != nil
}

// AppraisalResult is a breakdown plus the ID of its stored record, if any.
type AppraisalResult struct {
	ID string `json:"id,omitempty"`
	*appraisal.Breakdown
}

// Appraise scores one name and stores the result when history is enabled.
func (s *AppraisalService) Appraise(ctx context.Context, name string) (*AppraisalResult, error) {
	start := time.Now()
	ctx = s.logContext(ctx)
	b, err := appraisal.Appraise(name)
	if err != nil {
		return nil, err
	}

	ctx = logger.SetDomainName(ctx, b.Name)

	result := &AppraisalResult{Breakdown: b}
	if s.appraisals != nil {
		rec := newRecord(b, nil)
		if err := s.appraisals.Create(ctx, rec); err != nil {
			return nil, fmt.Errorf("failed to store appraisal: %w", err)
		}
		result.ID = rec.ID
	}

	logger.With(logger.Fields{"tier": b.Tier}).
		WithScore(b.FinalScore).
		WithDuration(time.Since(start).Milliseconds()).
		Debug(ctx, "Appraised domain")

	return result, nil
}

// BatchItem is one entry of a batch result, in input order. Exactly one of
// Result and Error is set.
type BatchItem struct {
	Input  string           `json:"input"`
	Result *AppraisalResult `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// BatchResult summarizes a batch appraisal.
type BatchResult struct {
	BatchID   string      `json:"batch_id,omitempty"`
	Total     int         `json:"total"`
	Appraised int         `json:"appraised"`
	Failed    int         `json:"failed"`
	Items     []BatchItem `json:"items"`
}

// AppraiseBatch scores names on a bounded worker pool. Invalid names are
// reported per item and do not fail the batch.
func (s *AppraisalService) AppraiseBatch(ctx context.Context, names []string) (*BatchResult, error) {
	if len(names) == 0 {
		return nil, ErrEmptyBatch
	}
	if s.maxBatch > 0 && len(names) > s.maxBatch {
		return nil, fmt.Errorf("%w: %d names, limit %d", ErrBatchTooLarge, len(names), s.maxBatch)
	}

	start := time.Now()
	ctx = s.logContext(ctx)
	result := &BatchResult{
		Total: len(names),
		Items: make([]BatchItem, len(names)),
	}

	var job *domain.BatchJob
	if s.batches != nil {
		now := time.Now()
		job = &domain.BatchJob{
			ID:         uuid.New().String(),
			Status:     domain.BatchStatusRunning,
			TotalNames: len(names),
			StartedAt:  &now,
		}
		if err := s.batches.Create(ctx, job); err != nil {
			return nil, fmt.Errorf("failed to create batch job: %w", err)
		}
		result.BatchID = job.ID
		ctx = logger.SetBatchID(ctx, job.ID)
	}

	workers := s.workers
	if workers > len(names) {
		workers = len(names)
	}

	indexes := make(chan int, workers*2)
	var appraised, failed int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				item := &result.Items[idx]
				item.Input = names[idx]
				if err := ctx.Err(); err != nil {
					item.Error = err.Error()
					atomic.AddInt64(&failed, 1)
					continue
				}
				b, err := appraisal.Appraise(names[idx])
				if err != nil {
					item.Error = err.Error()
					atomic.AddInt64(&failed, 1)
					continue
				}
				item.Result = &AppraisalResult{Breakdown: b}
				atomic.AddInt64(&appraised, 1)
			}
		}()
	}

	for i := range names {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	result.Appraised = int(appraised)
	result.Failed = int(failed)

	if s.appraisals != nil {
		if err := s.storeBatch(ctx, result, job); err != nil {
			return nil, err
		}
	}

	status := domain.BatchStatusCompleted
	if job != nil {
		status = job.Status
	}
	logger.With(logger.Fields{"appraised": result.Appraised, "failed": result.Failed}).
		WithCount(result.Total).
		WithStatus(string(status)).
		WithDuration(time.Since(start).Milliseconds()).
		Info(ctx, "Batch appraisal completed")

	return result, nil
}

// storeBatch writes all successful items in one insert, then closes out the job.
func (s *AppraisalService) storeBatch(ctx context.Context, result *BatchResult, job *domain.BatchJob) error {
	var batchID *string
	if job != nil {
		batchID = &job.ID
	}

	recs := make([]*domain.AppraisalRecord, 0, result.Appraised)
	for i := range result.Items {
		item := &result.Items[i]
		if item.Result == nil {
			continue
		}
		rec := newRecord(item.Result.Breakdown, batchID)
		item.Result.ID = rec.ID
		recs = append(recs, rec)
	}

	storeErr := s.appraisals.CreateBatch(ctx, recs)

	if job != nil {
		now := time.Now()
		job.Appraised = result.Appraised
		job.Failed = result.Failed
		job.CompletedAt = &now
		job.Status = domain.BatchStatusCompleted
		if storeErr != nil {
			job.Status = domain.BatchStatusFailed
			job.ErrorLog = storeErr.Error()
		} else if result.Failed > 0 {
			job.ErrorLog = collectErrors(result.Items)
		}
		// The request context may already be done; the job row still needs closing.
		if err := s.batches.Update(context.WithoutCancel(ctx), job); err != nil {
			logger.CtxWarn(ctx, "Failed to update batch job %s: %v", job.ID, err)
		}
	}

	if storeErr != nil {
		for i := range result.Items {
			if result.Items[i].Result != nil {
				result.Items[i].Result.ID = ""
			}
		}
		return fmt.Errorf("failed to store batch appraisals: %w", storeErr)
	}
	return nil
}

func collectErrors(items []BatchItem) string {
	var lines []string
	for _, item := range items {
		if item.Error != "" {
			lines = append(lines, fmt.Sprintf("%q: %s", item.Input, item.Error))
		}
	}
	return strings.Join(lines, "\n")
}

func newRecord(b *appraisal.Breakdown, batchID *string) *domain.AppraisalRecord {
	rec := domain.NewAppraisalRecord(b)
	rec.ID = uuid.New().String()
	rec.BatchID = batchID
	return rec
}

// GetAppraisal loads a stored appraisal by ID.
func (s *AppraisalService) GetAppraisal(ctx context.Context, id string) (*domain.AppraisalRecord, error) {
	if s.appraisals == nil {
		return nil, ErrHistoryDisabled
	}
	rec, err := s.appraisals.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrAppraisalNotFound
	}
	return rec, err
}

// DeleteAppraisal removes a stored appraisal.
func (s *AppraisalService) DeleteAppraisal(ctx context.Context, id string) error {
	if s.appraisals == nil {
		return ErrHistoryDisabled
	}
	err := s.appraisals.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrAppraisalNotFound
	}
	if err != nil {
		return err
	}
	logger.CtxInfo(logger.WithField(s.logContext(ctx), logger.FieldAppraisalID, id), "Deleted appraisal")
	return nil
}

// GetBatch loads a batch job by ID.
func (s *AppraisalService) GetBatch(ctx context.Context, id string) (*domain.BatchJob, error) {
	if s.batches == nil {
		return nil, ErrHistoryDisabled
	}
	job, err := s.batches.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBatchNotFound
	}
	return job, err
}

// ListOptions pages through stored appraisals. Tier filters by tone; Name by
// normalized domain name.
type ListOptions struct {
	Limit   int
	Offset  int
	Tier    string
	Name    string
	BatchID string
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// AppraisalList is one page of stored appraisals.
type AppraisalList struct {
	Items  []*domain.AppraisalRecord `json:"items"`
	Total  int64                     `json:"total"`
	Limit  int                       `json:"limit"`
	Offset int                       `json:"offset"`
}

// ListAppraisals returns stored appraisals, newest first.
func (s *AppraisalService) ListAppraisals(ctx context.Context, opts ListOptions) (*AppraisalList, error) {
	if s.appraisals == nil {
		return nil, ErrHistoryDisabled
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultListLimit
	}
	if opts.Limit > maxListLimit {
		opts.Limit = maxListLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	if opts.Name != "" {
		opts.Name = appraisal.Normalize(opts.Name)
	}

	items, total, err := s.appraisals.List(ctx, repository.ListFilter{
		Limit:   opts.Limit,
		Offset:  opts.Offset,
		Tier:    strings.ToLower(opts.Tier),
		Name:    opts.Name,
		BatchID: opts.BatchID,
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*domain.AppraisalRecord{}
	}
	return &AppraisalList{Items: items, Total: total, Limit: opts.Limit, Offset: opts.Offset}, nil
}

// Stats summarizes the appraisal history.
func (s *AppraisalService) Stats(ctx context.Context) (*domain.AppraisalStats, error) {
	if s.appraisals == nil {
		return nil, ErrHistoryDisabled
	}
	return s.appraisals.Stats(ctx, s.topN)
}
