package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/logger"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

const loggerKey = "logger"

// LoggerMiddleware injects a request-scoped logger and logs each request on
// completion. An incoming X-Request-ID is reused, otherwise a uuid is minted.
func LoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.New().String()
		}

		ctx := log.WithContext(c.Request.Context())
		ctx = logger.SetRequestID(ctx, requestID)
		ctx = logger.SetComponent(ctx, "api")
		c.Request = c.Request.WithContext(ctx)
		c.Set(loggerKey, logger.FromContext(ctx))
		c.Header(RequestIDHeader, requestID)

		c.Next()

		fullPath := path
		if query != "" {
			fullPath = path + "?" + query
		}

		status := c.Writer.Status()
		entry := logger.With(logger.Fields{
			logger.FieldStatus:     status,
			logger.FieldDurationMs: time.Since(start).Milliseconds(),
			logger.FieldSize:       c.Writer.Size(),
			"client_ip":            c.ClientIP(),
		})
		switch {
		case status >= 500:
			entry.Error(ctx, "%s %s", c.Request.Method, fullPath)
		case status >= 400:
			entry.Warn(ctx, "%s %s", c.Request.Method, fullPath)
		default:
			entry.Info(ctx, "%s %s", c.Request.Method, fullPath)
		}
	}
}

// GetLogger returns the request logger stored by LoggerMiddleware, falling back
// to the request context.
func GetLogger(c *gin.Context) *logger.Logger {
	if l, exists := c.Get(loggerKey); exists {
		if log, ok := l.(*logger.Logger); ok {
			return log
		}
	}
	return logger.FromContext(c.Request.Context())
}
