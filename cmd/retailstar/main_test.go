package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kongx-dev/retailstar-sol-sub001/internal/service"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAppraiseCmd(t *testing.T) {
	out, err := run(t, "appraise", "wif.sol", "xk7q9z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"NAME", "wif.sol", "77.5", "premium", "xk7q9z.sol", "24.5", "scav"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAppraiseCmd_JSON(t *testing.T) {
	out, err := run(t, "appraise", "--json", "moon420")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res service.BatchResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(res.Items) != 1 || res.Items[0].Result.FinalScore != 39.5 {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestAppraiseCmd_InvalidName(t *testing.T) {
	out, err := run(t, "appraise", "wif", ".sol")
	if !errors.Is(err, errSomeFailed) {
		t.Fatalf("expected errSomeFailed, got %v", err)
	}
	if !strings.Contains(out, "error:") {
		t.Errorf("expected inline error row:\n%s", out)
	}
}

func TestBatchCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.txt")
	body := "# shelf restock\nwif\n\nnova\n  bonk.sol  \n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "batch", "--file", path, "--workers", "2", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res service.BatchResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if res.Total != 3 || res.Appraised != 3 {
		t.Errorf("unexpected counters: %+v", res)
	}
	if res.Items[2].Result.Name != "bonk" {
		t.Errorf("expected order preserved, got %q last", res.Items[2].Result.Name)
	}

	if _, err := run(t, "batch"); err == nil {
		t.Error("expected error without --file")
	}
}

func TestBatchCmd_Stdin(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetIn(strings.NewReader("wif\n# skip\nmoon420\n"))
	cmd.SetArgs([]string{"batch", "--file", "-", "--json"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var res service.BatchResult
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if res.Total != 2 || res.Items[0].Result.Name != "wif" || res.Items[1].Result.Name != "moon420" {
		t.Errorf("unexpected batch from stdin: %+v", res)
	}
}

func TestCardCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wif.png")
	if _, err := run(t, "card", "wif", "--out", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("card not written: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("expected PNG output")
	}
}

func TestReportCmd(t *testing.T) {
	out, err := run(t, "report", "wif")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "# wif.sol") {
		t.Errorf("expected markdown heading, got %q", out[:20])
	}

	out, err = run(t, "report", "--html", "wif")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "<!doctype html>") {
		t.Error("expected HTML document")
	}
}

func TestOwnerCmd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"s":"ok","result":"pubkey-1"}`))
	}))
	defer srv.Close()

	out, err := run(t, "owner", "bonfida", "--sns-url", srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "bonfida.sol\tpubkey-1" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestCategoriesCmd(t *testing.T) {
	out, err := run(t, "categories")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"finance", "10", "defiance"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestBatchCmd_Manifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlist.jsonl")
	body := `{"name":"wif","tags":["meme"]}
{"name":""}
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "batch", "-f", path)
	if !errors.Is(err, errSomeFailed) {
		t.Fatalf("expected errSomeFailed for the empty entry, got %v", err)
	}
	if !strings.Contains(out, "wif.sol") || !strings.Contains(out, "error:") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
