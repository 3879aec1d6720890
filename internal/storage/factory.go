package storage

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/kongx-dev/retailstar-sol-sub001/internal/config"
)

// NewStorage builds an S3 client from the storage section and makes sure the
// bucket exists. The caller is expected to skip it when storage is disabled.
func NewStorage(ctx context.Context, cfg *config.StorageConfig) (*S3Storage, error) {
	if !cfg.Enabled {
		return nil, fmt.Errorf("storage is disabled")
	}

	storeType := StorageType(cfg.Type)
	if storeType == "" {
		storeType = detectStorageType(cfg.Endpoint)
	}

	s, err := NewS3Storage(&S3Config{
		Type:      storeType,
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		UseSSL:    cfg.UseSSL,
		Bucket:    cfg.Bucket,
		Region:    cfg.Region,
		PublicURL: cfg.PublicURL,
	})
	if err != nil {
		return nil, err
	}
	if err := s.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// CardKey is the object key for an exported appraisal card,
// e.g. "cards/wif-77.5.png".
func CardKey(prefix, name string, score float64) string {
	file := fmt.Sprintf("%s-%s.png", name, strconv.FormatFloat(score, 'f', -1, 64))
	if prefix == "" {
		return file
	}
	return path.Join(strings.Trim(prefix, "/"), file)
}

func detectStorageType(endpoint string) StorageType {
	endpoint = strings.ToLower(endpoint)

	switch {
	case strings.Contains(endpoint, "r2.cloudflarestorage.com"):
		return StorageTypeR2
	case strings.Contains(endpoint, "amazonaws.com"):
		return StorageTypeS3
	default:
		return StorageTypeS3Compatible
	}
}
