package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/appraisal"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/config"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/domain"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/logger"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/repository"
	"go.uber.org/goleak"
)

func newHistoryService(t *testing.T, maxBatch int) *AppraisalService {
	t.Helper()
	db, err := repository.InitDB(&config.DatabaseConfig{
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
	return NewAppraisalService(
		repository.NewAppraisalRepository(db),
		repository.NewBatchRepository(db),
		nil,
		&AppraisalConfig{Workers: 3, MaxBatchSize: maxBatch, TopN: 2},
	)
}

func TestAppraisalService_AppraiseWithoutHistory(t *testing.T) {
	svc := NewAppraisalService(nil, nil, nil, &AppraisalConfig{Workers: 2, MaxBatchSize: 10})

	if svc.HistoryEnabled() {
		t.Error("expected history to be disabled")
	}

	res, err := svc.Appraise(context.Background(), "WIF.sol")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ID != "" {
		t.Errorf("expected no record id, got %q", res.ID)
	}
	if res.Name != "wif" || res.FinalScore != 77.5 {
		t.Errorf("unexpected breakdown: name=%q score=%v", res.Name, res.FinalScore)
	}

	if _, err := svc.Appraise(context.Background(), " .sol "); !errors.Is(err, appraisal.ErrInvalidDomainName) {
		t.Errorf("expected ErrInvalidDomainName, got %v", err)
	}

	if _, err := svc.ListAppraisals(context.Background(), ListOptions{}); !errors.Is(err, ErrHistoryDisabled) {
		t.Errorf("expected ErrHistoryDisabled from List, got %v", err)
	}
	if _, err := svc.Stats(context.Background()); !errors.Is(err, ErrHistoryDisabled) {
		t.Errorf("expected ErrHistoryDisabled from Stats, got %v", err)
	}
}

func TestAppraisalService_AppraiseStoresRecord(t *testing.T) {
	svc := newHistoryService(t, 10)
	ctx := context.Background()

	res, err := svc.Appraise(ctx, "wif")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ID == "" {
		t.Fatal("expected stored record id")
	}

	rec, err := svc.GetAppraisal(ctx, res.ID)
	if err != nil {
		t.Fatalf("GetAppraisal failed: %v", err)
	}
	if rec.Name != "wif" || rec.Tier != "premium" {
		t.Errorf("unexpected record: %+v", rec)
	}

	if _, err := svc.GetAppraisal(ctx, "nope"); !errors.Is(err, ErrAppraisalNotFound) {
		t.Errorf("expected ErrAppraisalNotFound, got %v", err)
	}
}

func TestAppraisalService_BatchKeepsOrder(t *testing.T) {
	svc := newHistoryService(t, 10)
	ctx := context.Background()

	names := []string{"wif", "", "xk7q9z", "moon420", "   "}
	res, err := svc.AppraiseBatch(ctx, names)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Total != 5 || res.Appraised != 3 || res.Failed != 2 {
		t.Errorf("unexpected counters: %+v", res)
	}
	if res.BatchID == "" {
		t.Error("expected batch id when history is enabled")
	}

	for i, item := range res.Items {
		if item.Input != names[i] {
			t.Errorf("item %d: input %q, want %q", i, item.Input, names[i])
		}
	}
	if res.Items[0].Result == nil || res.Items[0].Result.Name != "wif" {
		t.Errorf("item 0 should be wif, got %+v", res.Items[0])
	}
	if res.Items[1].Error == "" || res.Items[1].Result != nil {
		t.Errorf("item 1 should carry an inline error, got %+v", res.Items[1])
	}
	if res.Items[3].Result == nil || res.Items[3].Result.ID == "" {
		t.Errorf("item 3 should be stored, got %+v", res.Items[3])
	}

	job, err := svc.GetBatch(ctx, res.BatchID)
	if err != nil {
		t.Fatalf("GetBatch failed: %v", err)
	}
	if job.Status != domain.BatchStatusCompleted || job.Appraised != 3 || job.Failed != 2 {
		t.Errorf("unexpected batch job: %+v", job)
	}

	list, err := svc.ListAppraisals(ctx, ListOptions{BatchID: res.BatchID})
	if err != nil {
		t.Fatalf("ListAppraisals failed: %v", err)
	}
	if list.Total != 3 {
		t.Errorf("expected 3 stored batch items, got %d", list.Total)
	}
}

func TestAppraisalService_BatchLimits(t *testing.T) {
	svc := NewAppraisalService(nil, nil, nil, &AppraisalConfig{Workers: 2, MaxBatchSize: 3})
	ctx := context.Background()

	if _, err := svc.AppraiseBatch(ctx, nil); !errors.Is(err, ErrEmptyBatch) {
		t.Errorf("expected ErrEmptyBatch, got %v", err)
	}
	if _, err := svc.AppraiseBatch(ctx, []string{"a", "b", "c", "d"}); !errors.Is(err, ErrBatchTooLarge) {
		t.Errorf("expected ErrBatchTooLarge, got %v", err)
	}

	res, err := svc.AppraiseBatch(ctx, []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.BatchID != "" {
		t.Errorf("expected no batch id without history, got %q", res.BatchID)
	}
}

func TestAppraisalService_BatchMatchesSingle(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	svc := NewAppraisalService(nil, nil, nil, &AppraisalConfig{Workers: 4, MaxBatchSize: 100})
	ctx := context.Background()

	names := make([]string, 40)
	for i := range names {
		names[i] = fmt.Sprintf("name%d", i)
	}

	res, err := svc.AppraiseBatch(ctx, names)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, item := range res.Items {
		want, _ := appraisal.Appraise(names[i])
		if item.Result == nil {
			t.Fatalf("item %d has no result: %+v", i, item)
		}
		if diff := cmp.Diff(want, item.Result.Breakdown); diff != "" {
			t.Errorf("item %d diverges from single appraisal (-want +got):\n%s", i, diff)
		}
	}
}

func TestAppraisalService_BatchCanceledContext(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	svc := NewAppraisalService(nil, nil, nil, &AppraisalConfig{Workers: 2, MaxBatchSize: 10})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := svc.AppraiseBatch(ctx, []string{"wif", "nova"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Failed != 2 {
		t.Errorf("expected every item to fail on a canceled context, got %+v", res)
	}
}

func TestAppraisalService_ListAndStats(t *testing.T) {
	svc := newHistoryService(t, 10)
	ctx := context.Background()

	for _, name := range []string{"wif", "xk7q9z", "moon420", "WIF.sol"} {
		if _, err := svc.Appraise(ctx, name); err != nil {
			t.Fatalf("Appraise(%q) failed: %v", name, err)
		}
	}

	list, err := svc.ListAppraisals(ctx, ListOptions{Limit: 500})
	if err != nil {
		t.Fatalf("ListAppraisals failed: %v", err)
	}
	if list.Limit != maxListLimit {
		t.Errorf("expected limit clamped to %d, got %d", maxListLimit, list.Limit)
	}
	if list.Total != 4 || len(list.Items) != 4 {
		t.Errorf("expected 4 records, got total=%d len=%d", list.Total, len(list.Items))
	}

	byName, err := svc.ListAppraisals(ctx, ListOptions{Name: "Wif.SOL"})
	if err != nil {
		t.Fatalf("ListAppraisals by name failed: %v", err)
	}
	if byName.Total != 2 {
		t.Errorf("expected 2 wif records, got %d", byName.Total)
	}

	premium, err := svc.ListAppraisals(ctx, ListOptions{Tier: "PREMIUM"})
	if err != nil {
		t.Fatalf("ListAppraisals by tier failed: %v", err)
	}
	if premium.Total != 2 {
		t.Errorf("expected 2 premium records, got %d", premium.Total)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Total != 4 {
		t.Errorf("expected total 4, got %d", stats.Total)
	}
	if len(stats.TopNames) != 2 || stats.TopNames[0].Name != "wif" {
		t.Errorf("expected wif to lead a top-2 board, got %+v", stats.TopNames)
	}
}

func TestAppraisalService_LogsMetricFields(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&logger.Config{Level: "debug", Format: "json", Output: &buf, ServiceName: "retailstar-test"})
	svc := NewAppraisalService(nil, nil, log, &AppraisalConfig{Workers: 2, MaxBatchSize: 10})
	ctx := context.Background()

	if _, err := svc.Appraise(ctx, "wif"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.AppraiseBatch(ctx, []string{"wif", ".sol", "nova"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := map[string]map[string]interface{}{}
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var line map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &line); err != nil {
			t.Fatalf("log line is not JSON: %v (%q)", err, scanner.Text())
		}
		msg, _ := line["message"].(string)
		lines[msg] = line
	}

	single, ok := lines["Appraised domain"]
	if !ok {
		t.Fatalf("missing single appraisal log line, got %v", lines)
	}
	if single[logger.FieldScore] != 77.5 || single[logger.FieldDomainName] != "wif" {
		t.Errorf("unexpected single appraisal fields: %v", single)
	}
	if _, ok := single[logger.FieldDurationMs]; !ok {
		t.Errorf("expected %s on single appraisal line", logger.FieldDurationMs)
	}

	batch, ok := lines["Batch appraisal completed"]
	if !ok {
		t.Fatalf("missing batch log line, got %v", lines)
	}
	want := map[string]interface{}{
		logger.FieldCount:  float64(3),
		logger.FieldStatus: "completed",
		"appraised":        float64(2),
		"failed":           float64(1),
		"service":          "retailstar-test",
	}
	for k, v := range want {
		if batch[k] != v {
			t.Errorf("batch field %s = %v, want %v", k, batch[k], v)
		}
	}
}
