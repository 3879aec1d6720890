package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestContextFieldsReachOutput(t *testing.T) {
	var buf bytes.Buffer
	base := New(&Config{Level: "debug", Format: "json", Output: &buf, ServiceName: "retailstar-test"})

	ctx := base.WithContext(context.Background())
	ctx = SetRequestID(ctx, "req-1")
	ctx = SetDomainName(ctx, "wif")

	if got := GetRequestID(ctx); got != "req-1" {
		t.Errorf("expected request id req-1, got %q", got)
	}

	With(Fields{FieldCount: 2}).WithScore(77.5).Info(ctx, "appraised %s", "wif")

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}

	checks := map[string]interface{}{
		"message":       "appraised wif",
		"service":       "retailstar-test",
		FieldRequestID:  "req-1",
		FieldDomainName: "wif",
		FieldCount:      float64(2),
		FieldScore:      77.5,
	}
	for k, want := range checks {
		if line[k] != want {
			t.Errorf("field %s = %v, want %v", k, line[k], want)
		}
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	if FromContext(context.Background()) != GetDefault() {
		t.Error("expected default logger for bare context")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_MAX_SIZE", "not-a-number")
	t.Setenv("LOG_COMPRESS", "false")

	cfg := LoadFromEnv()
	if cfg.Level != "debug" {
		t.Errorf("expected debug level, got %q", cfg.Level)
	}
	if cfg.MaxSize != 100 {
		t.Errorf("expected fallback max size 100, got %d", cfg.MaxSize)
	}
	if cfg.Compress {
		t.Error("expected compress=false")
	}
	if cfg.ServiceName != "retailstar" {
		t.Errorf("expected default service name, got %q", cfg.ServiceName)
	}
}
