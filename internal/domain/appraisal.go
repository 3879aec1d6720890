package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kongx-dev/retailstar-sol-sub001/internal/appraisal"
)

// StringArray stores a string slice as a JSON text column.
type StringArray []string

// Value implements driver.Valuer.
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}
	raw, err := scanBytes(value)
	if err != nil {
		return fmt.Errorf("scan StringArray: %w", err)
	}
	return json.Unmarshal(raw, a)
}

func scanBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New("unexpected column type")
	}
}

// AppraisalRecord is a stored appraisal. The headline scores are copied into
// indexed columns; the full breakdown is kept as JSON.
type AppraisalRecord struct {
	ID              string              `gorm:"type:text;primaryKey" json:"id"`
	BatchID         *string             `gorm:"type:text;index:idx_appraisals_batch" json:"batch_id,omitempty"`
	Name            string              `gorm:"type:text;not null;index:idx_appraisals_name" json:"name"`
	FinalScore      float64             `gorm:"index:idx_appraisals_score" json:"final_score"`
	Brandability    float64             `json:"brandability"`
	Meme            float64             `json:"meme"`
	Value           float64             `json:"value"`
	SolEstimateLow  float64             `json:"sol_estimate_low"`
	SolEstimateHigh float64             `json:"sol_estimate_high"`
	Tier            string              `gorm:"type:text;index:idx_appraisals_tier" json:"tier"`
	Categories      StringArray         `gorm:"type:text" json:"categories"`
	QuipTone        string              `gorm:"type:text" json:"quip_tone"`
	Breakdown       appraisal.Breakdown `gorm:"type:text;serializer:json" json:"breakdown"`
	CreatedAt       time.Time           `json:"created_at"`
}

func (AppraisalRecord) TableName() string {
	return "appraisals"
}

// NewAppraisalRecord copies a breakdown into a record. ID and BatchID are left to the caller.
func NewAppraisalRecord(b *appraisal.Breakdown) *AppraisalRecord {
	categories := make(StringArray, 0, len(b.Categories))
	for _, c := range b.Categories {
		categories = append(categories, string(c))
	}
	return &AppraisalRecord{
		Name:            b.Name,
		FinalScore:      b.FinalScore,
		Brandability:    b.Brandability,
		Meme:            b.Meme,
		Value:           b.Value,
		SolEstimateLow:  b.SolEstimateLow,
		SolEstimateHigh: b.SolEstimateHigh,
		Tier:            string(b.Tier),
		Categories:      categories,
		QuipTone:        string(b.Quip.Tone),
		Breakdown:       *b,
	}
}

// TierCount is one row of the per-tier histogram.
type TierCount struct {
	Tier  string `json:"tier"`
	Count int64  `json:"count"`
}

// AppraisalStats summarizes stored appraisals.
type AppraisalStats struct {
	Total        int64              `json:"total"`
	AverageScore float64            `json:"average_score"`
	ByTier       []TierCount        `json:"by_tier"`
	TopNames     []*AppraisalRecord `json:"top_names"`
}
