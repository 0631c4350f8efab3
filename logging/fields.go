package logging

import "go.uber.org/zap"

// Standard field keys.
const (
	// Request fields
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldClientIP   = "client_ip"
	FieldUserAgent  = "user_agent"
	FieldStatusCode = "status_code"
	FieldDurationMS = "duration_ms"
	FieldBytes      = "bytes_written"

	// Tracing fields
	FieldTraceID = "trace_id"
	FieldSpanID  = "span_id"

	// Error fields
	FieldError = "error"

	// Service fields
	FieldService     = "service"
	FieldEnvironment = "environment"
)

// Err creates an error field, tolerating nil.
func Err(err error) zap.Field {
	if err == nil {
		return zap.Skip()
	}
	return zap.String(FieldError, err.Error())
}

// RequestID creates a request ID field.
func RequestID(id string) zap.Field {
	return zap.String(FieldRequestID, id)
}
