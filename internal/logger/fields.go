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

	// FieldMessageID is the message being generated or served
	FieldMessageID = "message_id"

	// FieldCode is the shareable message code
	FieldCode = "code"

	// FieldContentKey is the serialized canonical content key
	FieldContentKey = "content_key"

	// FieldComponent is the component/module name
	FieldComponent = "component"

	// FieldSessionID is the uniqueness-tracking session ID
	FieldSessionID = "session_id"
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
)
