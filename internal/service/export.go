package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/kongx-dev/retailstar-sol-sub001/internal/appraisal"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/logger"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/storage"
)

// ErrStorageDisabled is returned by card export when no bucket is configured.
var ErrStorageDisabled = errors.New("object storage is not configured")

// CardExporter renders appraisal cards and uploads them to object storage.
type CardExporter struct {
	storage storage.ObjectStorage
	prefix  string
	logger  *logger.Logger
}

// NewCardExporter creates a card exporter. A nil store disables export.
func NewCardExporter(store storage.ObjectStorage, prefix string, log *logger.Logger) *CardExporter {
	if log == nil {
		log = logger.GetDefault()
	}
	return &CardExporter{storage: store, prefix: prefix, logger: log}
}

// Enabled reports whether exports can be uploaded.
func (e *CardExporter) Enabled() bool {
	return e != nil && e.storage != nil
}

// CardExport describes an uploaded card.
type CardExport struct {
	Name       string  `json:"name"`
	FinalScore float64 `json:"final_score"`
	Key        string  `json:"key"`
	URL        string  `json:"url"`
	Size       int     `json:"size"`
	Reused     bool    `json:"reused"`
}

// ExportCard appraises name, renders its card and uploads it.
func (e *CardExporter) ExportCard(ctx context.Context, name string) (*CardExport, error) {
	if !e.Enabled() {
		return nil, ErrStorageDisabled
	}

	b, err := appraisal.Appraise(name)
	if err != nil {
		return nil, err
	}
	data, err := RenderCard(b)
	if err != nil {
		return nil, err
	}

	// Keys are derived from name and score, so an existing object is the same card.
	key := storage.CardKey(e.prefix, b.Name, b.FinalScore)
	exists, err := e.storage.Exists(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to export card: %w", err)
	}
	if !exists {
		if err := e.storage.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), "image/png"); err != nil {
			return nil, fmt.Errorf("failed to export card: %w", err)
		}
	}

	e.logger.WithFields(logger.Fields{
		logger.FieldDomainName: b.Name,
		logger.FieldSize:       len(data),
		"key":                  key,
		"reused":               exists,
	}).Info("Exported appraisal card")

	return &CardExport{
		Name:       b.Name,
		FinalScore: b.FinalScore,
		Key:        key,
		URL:        e.storage.GetURL(key),
		Size:       len(data),
		Reused:     exists,
	}, nil
}
