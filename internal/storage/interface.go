package storage

import (
	"context"
	"io"
)

// ObjectStorage is the subset of an S3-compatible bucket that card export needs.
type ObjectStorage interface {
	// Upload writes an object under key.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error

	// GetURL returns the public URL of key.
	GetURL(key string) string

	// Exists reports whether key is already stored.
	Exists(ctx context.Context, key string) (bool, error)
}
