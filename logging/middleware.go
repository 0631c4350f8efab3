package logging

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestIDHeader is the header used to propagate request IDs.
const RequestIDHeader = "X-Request-ID"

// Middleware returns HTTP middleware that logs request start and
// completion with method, path, status code, duration and bytes written.
// The request ID is taken from the X-Request-ID header or generated, and
// is echoed back on the response.
func (l *Logger) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		reqLog := l.WithRequestID(requestID).WithContext(r.Context())

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		reqLog.Info("request started",
			zap.String(FieldMethod, r.Method),
			zap.String(FieldPath, r.URL.Path),
			zap.String(FieldClientIP, r.RemoteAddr),
			zap.String(FieldUserAgent, r.UserAgent()),
		)

		next.ServeHTTP(wrapped, r)

		level := zapcore.InfoLevel
		switch {
		case wrapped.statusCode >= 500:
			level = zapcore.ErrorLevel
		case wrapped.statusCode >= 400:
			level = zapcore.WarnLevel
		}

		reqLog.Log(level, "request completed",
			zap.String(FieldMethod, r.Method),
			zap.String(FieldPath, r.URL.Path),
			zap.Int(FieldStatusCode, wrapped.statusCode),
			zap.Int64(FieldDurationMS, time.Since(start).Milliseconds()),
			zap.Int(FieldBytes, wrapped.bytesWritten),
		)
	})
}

// responseWriter captures the status code and bytes written.
type responseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += n
	return n, err
}
