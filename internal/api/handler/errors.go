package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/api/middleware"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/appraisal"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/logger"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/service"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, appraisal.ErrInvalidDomainName),
		errors.Is(err, service.ErrBatchTooLarge),
		errors.Is(err, service.ErrEmptyBatch):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrAppraisalNotFound),
		errors.Is(err, service.ErrBatchNotFound),
		errors.Is(err, service.ErrDomainUnregistered):
		return http.StatusNotFound
	case errors.Is(err, service.ErrHistoryDisabled),
		errors.Is(err, service.ErrStorageDisabled),
		errors.Is(err, service.ErrSNSUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error": ...}. Internal failures are logged and their
// detail is not echoed to the client; the request ID is returned instead.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		middleware.GetLogger(c).WithError(err).Error("Request failed")
		c.JSON(status, gin.H{
			"error":      "internal server error",
			"request_id": logger.GetRequestID(c.Request.Context()),
		})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
