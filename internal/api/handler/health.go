package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler reports liveness and which optional backends are wired.
type HealthHandler struct {
	db      *gorm.DB
	storage bool
	sns     bool
}

// NewHealthHandler creates a new health handler. db may be nil when history is off.
func NewHealthHandler(db *gorm.DB, storageEnabled, snsEnabled bool) *HealthHandler {
	return &HealthHandler{db: db, storage: storageEnabled, sns: snsEnabled}
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	status := http.StatusOK
	body := gin.H{
		"status":  "ok",
		"history": h.db != nil,
		"storage": h.storage,
		"sns":     h.sns,
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := ping(ctx, h.db); err != nil {
			status = http.StatusServiceUnavailable
			body["status"] = "degraded"
			body["database"] = err.Error()
		}
	}

	c.JSON(status, body)
}

func ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
