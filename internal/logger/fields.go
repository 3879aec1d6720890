package logger

// Fields is an alias for map[string]interface{} for convenience.
type Fields map[string]interface{}

// ============================================
// Standard Tracing Fields (Context level)
// These fields are propagated through the call chain
// ============================================

const (
	// FieldRequestID is the HTTP request ID (UUID)
	FieldRequestID = "request_id"

	// FieldBatchID is the batch appraisal ID
	FieldBatchID = "batch_id"

	// FieldAppraisalID is the stored appraisal record ID
	FieldAppraisalID = "appraisal_id"

	// FieldComponent is the component/module name
	FieldComponent = "component"

	// FieldDomainName is the normalized .sol name being appraised
	FieldDomainName = "domain_name"
)

// ============================================
// Standard Metric Fields (Entry level)
// These fields are used for aggregation and alerting
// ============================================

const (
	// FieldDurationMs is the execution duration in milliseconds
	FieldDurationMs = "duration_ms"

	// FieldCount is a generic count field
	FieldCount = "count"

	// FieldSize is the data size in bytes
	FieldSize = "size"

	// FieldStatus is the operation status
	FieldStatus = "status"

	// FieldScore is an appraisal final score
	FieldScore = "score"
)
