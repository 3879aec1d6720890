package domain

import "time"

// BatchStatus represents the status of a batch appraisal.
// Values include BatchStatusRunning, BatchStatusCompleted, and BatchStatusFailed.
type BatchStatus string

const (
	BatchStatusRunning   BatchStatus = "running"
	BatchStatusCompleted BatchStatus = "completed"
	BatchStatusFailed    BatchStatus = "failed"
)

// BatchJob tracks one batch appraisal request and its progress counters.
type BatchJob struct {
	ID          string      `gorm:"type:text;primaryKey" json:"id"`
	Status      BatchStatus `gorm:"type:text;default:running" json:"status"`
	TotalNames  int         `gorm:"default:0" json:"total_names"`
	Appraised   int         `gorm:"default:0" json:"appraised"`
	Failed      int         `gorm:"default:0" json:"failed"`
	StartedAt   *time.Time  `json:"started_at,omitempty"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
	ErrorLog    string      `json:"error_log,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// TableName returns the database table name for BatchJob.
func (BatchJob) TableName() string {
	return "batch_jobs"
}
