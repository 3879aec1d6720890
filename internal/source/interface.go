package source

import (
	"context"
	"fmt"
	"strconv"
)

// NameItem is one candidate domain name read from a source.
type NameItem struct {
	Name string   // raw name as listed, normalized later by the engine
	Line int      // 1-based line in the underlying file
	Tags []string // optional labels carried through from the source
}

// Source pages through candidate names for batch appraisal.
type Source interface {
	// GetSourceID returns a stable identifier, e.g. "textlist:names.txt".
	GetSourceID() string

	// FetchBatch returns up to limit items starting at cursor. An empty
	// nextCursor means the source is exhausted.
	FetchBatch(ctx context.Context, cursor string, limit int) (items []NameItem, nextCursor string, err error)
}

// Drain reads every item from src, pageSize at a time.
func Drain(ctx context.Context, src Source, pageSize int) ([]NameItem, error) {
	if pageSize <= 0 {
		pageSize = 100
	}
	var all []NameItem
	cursor := ""
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		items, next, err := src.FetchBatch(ctx, cursor, pageSize)
		if err != nil {
			return nil, fmt.Errorf("fetch from %s: %w", src.GetSourceID(), err)
		}
		all = append(all, items...)
		if next == "" || len(items) == 0 {
			return all, nil
		}
		cursor = next
	}
}

// Names returns the raw names of items.
func Names(items []NameItem) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names
}

// Page slices items by an index cursor; adapters that load everything up
// front share it.
func Page(items []NameItem, cursor string, limit int) ([]NameItem, string, error) {
	start := 0
	if cursor != "" {
		var err error
		start, err = strconv.Atoi(cursor)
		if err != nil || start < 0 {
			return nil, "", fmt.Errorf("invalid cursor %q", cursor)
		}
	}
	if start >= len(items) {
		return []NameItem{}, "", nil
	}
	end := start + limit
	if limit <= 0 || end > len(items) {
		end = len(items)
	}
	next := ""
	if end < len(items) {
		next = strconv.Itoa(end)
	}
	return items[start:end], next, nil
}
