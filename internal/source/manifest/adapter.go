// Package manifest reads candidate names from a JSONL watchlist, e.g.
//
//	{"name": "wif", "tags": ["meme"]}
package manifest

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kongx-dev/retailstar-sol-sub001/internal/source"
)

// Entry is one line of a watchlist manifest.
type Entry struct {
	Name string   `json:"name"`
	Tags []string `json:"tags,omitempty"`
}

// Adapter implements source.Source for JSONL manifests.
type Adapter struct {
	path   string
	items  []source.NameItem
	loaded bool
}

func NewAdapter(path string) *Adapter {
	return &Adapter{path: path}
}

func (a *Adapter) GetSourceID() string {
	return "manifest:" + filepath.Base(a.path)
}

func (a *Adapter) FetchBatch(ctx context.Context, cursor string, limit int) ([]source.NameItem, string, error) {
	if !a.loaded {
		if err := a.load(); err != nil {
			return nil, "", fmt.Errorf("failed to load manifest: %w", err)
		}
		a.loaded = true
	}
	return source.Page(a.items, cursor, limit)
}

func (a *Adapter) load() error {
	file, err := os.Open(a.path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var entry Entry
		if err := json.Unmarshal([]byte(text), &entry); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		// Entries without a name are kept so the batch reports them as invalid.
		a.items = append(a.items, source.NameItem{Name: entry.Name, Line: line, Tags: entry.Tags})
	}
	return scanner.Err()
}

// IsManifest reports whether path looks like a JSONL manifest.
func IsManifest(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".jsonl" || ext == ".ndjson"
}
