package observe

import (
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Middleware wraps an http.Handler with tracing and request metrics.
//
// Tracing uses otelhttp, so incoming W3C trace context is extracted and
// a server span covers each request. Request count, error count and
// duration are recorded on the observer's meter.
func Middleware(obs Observer, operation string, next http.Handler) (http.Handler, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	metrics, err := NewRequestMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	instrumented := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		metrics.Record(r.Context(), r.Method, r.URL.Path, wrapped.statusCode, time.Since(start))
	})

	return otelhttp.NewHandler(instrumented, operation), nil
}

// statusRecorder captures the response status code.
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}
