// Package textlist reads candidate names from a plain text file, one per line.
package textlist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kongx-dev/retailstar-sol-sub001/internal/source"
)

// Adapter implements source.Source over a line-oriented list. Blank lines and
// lines starting with # are skipped.
type Adapter struct {
	path   string
	open   func() (io.ReadCloser, error)
	items  []source.NameItem
	loaded bool
}

// NewAdapter reads from the file at path.
func NewAdapter(path string) *Adapter {
	return &Adapter{
		path: path,
		open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// NewReaderAdapter reads from r; id labels the source.
func NewReaderAdapter(id string, r io.Reader) *Adapter {
	return &Adapter{
		path: id,
		open: func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
	}
}

func (a *Adapter) GetSourceID() string {
	return "textlist:" + filepath.Base(a.path)
}

func (a *Adapter) FetchBatch(ctx context.Context, cursor string, limit int) ([]source.NameItem, string, error) {
	if !a.loaded {
		if err := a.load(); err != nil {
			return nil, "", err
		}
		a.loaded = true
	}
	return source.Page(a.items, cursor, limit)
}

func (a *Adapter) load() error {
	rc, err := a.open()
	if err != nil {
		return fmt.Errorf("open name list: %w", err)
	}
	defer rc.Close()

	scanner := bufio.NewScanner(rc)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		a.items = append(a.items, source.NameItem{Name: text, Line: line})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read name list: %w", err)
	}
	return nil
}
