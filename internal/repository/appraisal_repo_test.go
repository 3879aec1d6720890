package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/appraisal"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/config"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/domain"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := InitDB(&config.DatabaseConfig{
		Driver:      "sqlite",
		Path:        filepath.Join(t.TempDir(), "history.db"),
		AutoMigrate: true,
	})
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedRecord(t *testing.T, repo *AppraisalRepository, name string, createdAt time.Time) *domain.AppraisalRecord {
	t.Helper()
	b, err := appraisal.Appraise(name)
	if err != nil {
		t.Fatalf("Appraise(%q) failed: %v", name, err)
	}
	rec := domain.NewAppraisalRecord(b)
	rec.ID = uuid.New().String()
	rec.CreatedAt = createdAt
	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return rec
}

func TestAppraisalRepository_CreateAndGet(t *testing.T) {
	repo := NewAppraisalRepository(newTestDB(t))
	ctx := context.Background()

	rec := seedRecord(t, repo, "wif", time.Now())

	got, err := repo.GetByID(ctx, rec.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "wif" || got.FinalScore != rec.FinalScore {
		t.Errorf("unexpected record: %+v", got)
	}
	if len(got.Categories) != len(rec.Categories) {
		t.Errorf("categories round trip: got %v, want %v", got.Categories, rec.Categories)
	}
	if got.Breakdown.Quip.Text == "" {
		t.Error("expected breakdown payload to survive storage")
	}

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAppraisalRepository_ListAndFilter(t *testing.T) {
	repo := NewAppraisalRepository(newTestDB(t))
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	seedRecord(t, repo, "wif", base)
	seedRecord(t, repo, "xk7q9z", base.Add(time.Minute))
	newest := seedRecord(t, repo, "moon420", base.Add(2*time.Minute))

	recs, total, err := repo.List(ctx, ListFilter{Limit: 2})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 3 {
		t.Errorf("expected total 3, got %d", total)
	}
	if len(recs) != 2 {
		t.Fatalf("expected page of 2, got %d", len(recs))
	}
	if recs[0].ID != newest.ID {
		t.Errorf("expected newest first, got %s", recs[0].Name)
	}

	scav, total, err := repo.List(ctx, ListFilter{Limit: 10, Tier: "scav"})
	if err != nil {
		t.Fatalf("List by tier failed: %v", err)
	}
	if total != 1 || len(scav) != 1 || scav[0].Name != "xk7q9z" {
		t.Errorf("unexpected scav page: total=%d recs=%v", total, scav)
	}

	if err := repo.Delete(ctx, newest.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.GetByID(ctx, newest.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, newest.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestAppraisalRepository_Stats(t *testing.T) {
	repo := NewAppraisalRepository(newTestDB(t))
	ctx := context.Background()

	empty, err := repo.Stats(ctx, 3)
	if err != nil {
		t.Fatalf("Stats on empty table failed: %v", err)
	}
	if empty.Total != 0 || empty.AverageScore != 0 || len(empty.TopNames) != 0 {
		t.Errorf("unexpected empty stats: %+v", empty)
	}

	now := time.Now()
	a := seedRecord(t, repo, "wif", now)
	b := seedRecord(t, repo, "xk7q9z", now)

	stats, err := repo.Stats(ctx, 1)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Total != 2 {
		t.Errorf("expected total 2, got %d", stats.Total)
	}
	wantAvg := (a.FinalScore + b.FinalScore) / 2
	if diff := stats.AverageScore - wantAvg; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected average %.2f, got %.2f", wantAvg, stats.AverageScore)
	}
	if len(stats.ByTier) != 2 {
		t.Errorf("expected two tiers, got %+v", stats.ByTier)
	}
	if len(stats.TopNames) != 1 || stats.TopNames[0].Name != "wif" {
		t.Errorf("expected wif on top, got %+v", stats.TopNames)
	}
}

func TestBatchRepository_RoundTrip(t *testing.T) {
	repo := NewBatchRepository(newTestDB(t))
	ctx := context.Background()

	job := &domain.BatchJob{ID: uuid.New().String(), Status: domain.BatchStatusRunning, TotalNames: 3}
	if err := repo.Create(ctx, job); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	job.Appraised = 2
	job.Failed = 1
	job.Status = domain.BatchStatusCompleted
	if err := repo.Update(ctx, job); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := repo.GetByID(ctx, job.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != domain.BatchStatusCompleted || got.Appraised != 2 || got.Failed != 1 {
		t.Errorf("unexpected job: %+v", got)
	}
}
