// Package logging provides structured JSON logging with trace correlation.
//
// The package wraps go.uber.org/zap with a fixed field vocabulary
// (timestamp, level, message, service, environment) and attaches
// OpenTelemetry trace and span IDs when a logger is derived from a
// request context.
//
// # Basic Usage
//
//	log := logging.New(logging.ConfigFromEnv())
//	defer log.Sync()
//
//	log.Info("server listening", zap.String("addr", addr))
//
//	// Request-scoped logging with trace correlation:
//	reqLog := log.WithContext(r.Context()).WithRequestID(requestID)
//	reqLog.Info("processing request")
//
// # HTTP Middleware
//
//	handler := log.Middleware(mux)
//
// The middleware logs request start and completion, generates or
// propagates X-Request-ID, and escalates the completion entry to warn or
// error for 4xx and 5xx responses.
package logging
