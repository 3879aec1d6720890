package logger

import "context"

// Entry accumulates metric fields (duration_ms, count, score...) for a single
// log line, e.g.
//
//	logger.With(logger.Fields{logger.FieldCount: 3}).Info(ctx, "Batch appraised")
type Entry struct {
	fields Fields
}

// With starts an Entry with the given metric fields.
func With(fields Fields) *Entry {
	return (&Entry{}).With(fields)
}

// With returns a copy of the Entry with fields merged in.
func (e *Entry) With(fields Fields) *Entry {
	merged := make(Fields, len(e.fields)+len(fields))
	for k, v := range e.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Entry{fields: merged}
}

func (e *Entry) WithDuration(ms int64) *Entry {
	return e.With(Fields{FieldDurationMs: ms})
}

func (e *Entry) WithCount(count int) *Entry {
	return e.With(Fields{FieldCount: count})
}

func (e *Entry) WithStatus(status string) *Entry {
	return e.With(Fields{FieldStatus: status})
}

func (e *Entry) WithScore(score float64) *Entry {
	return e.With(Fields{FieldScore: score})
}

// Debug logs at Debug level using the logger carried by ctx.
func (e *Entry) Debug(ctx context.Context, format string, args ...interface{}) {
	FromContext(ctx).WithFields(e.fields).Debugf(format, args...)
}

// Info logs at Info level using the logger carried by ctx.
func (e *Entry) Info(ctx context.Context, format string, args ...interface{}) {
	FromContext(ctx).WithFields(e.fields).Infof(format, args...)
}

// Warn logs at Warn level using the logger carried by ctx.
func (e *Entry) Warn(ctx context.Context, format string, args ...interface{}) {
	FromContext(ctx).WithFields(e.fields).Warnf(format, args...)
}

// Error logs at Error level using the logger carried by ctx.
func (e *Entry) Error(ctx context.Context, format string, args ...interface{}) {
	FromContext(ctx).WithFields(e.fields).Errorf(format, args...)
}
