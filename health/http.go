package health

import (
	"encoding/json"
	"net/http"
)

// LivenessHandler returns an HTTP handler for liveness probes.
// Liveness never depends on dependency health: the process answering at
// all is the signal, so no checks are run.
func LivenessHandler(r *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		writeResponse(w, http.StatusOK, r.Response(StatusHealthy, nil))
	}
}

// StartupHandler returns an HTTP handler for startup probes.
// It reports unhealthy with a synthetic "startup" check until MarkStarted
// has been called, without running any registered checks.
func StartupHandler(r *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if r.IsStarted() {
			writeResponse(w, http.StatusOK, r.Response(StatusHealthy, nil))
			return
		}
		writeResponse(w, http.StatusServiceUnavailable, r.startupPending())
	}
}

// ReadinessHandler returns an HTTP handler for readiness probes.
// Before MarkStarted it fails like the startup probe. Afterwards it runs
// all registered checks and reports 503 only when the aggregate is
// unhealthy; a degraded aggregate keeps the instance in rotation.
func ReadinessHandler(r *Registry) http.HandlerFunc {
	return checkedHandler(r)
}

// HealthHandler returns an HTTP handler with combined startup and
// readiness semantics for a single /health endpoint.
func HealthHandler(r *Registry) http.HandlerFunc {
	return checkedHandler(r)
}

func checkedHandler(r *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if !r.IsStarted() {
			writeResponse(w, http.StatusServiceUnavailable, r.startupPending())
			return
		}

		results := r.CheckAll(req.Context())
		status := OverallStatus(results)

		httpStatus := http.StatusOK
		if status == StatusUnhealthy {
			httpStatus = http.StatusServiceUnavailable
		}
		writeResponse(w, httpStatus, r.Response(status, results))
	}
}

func (r *Registry) startupPending() Response {
	return r.Response(StatusUnhealthy, map[string]Result{
		"startup": Unhealthy("Application is still starting"),
	})
}

// Handler returns an http.Handler serving all health endpoints:
// /health/live, /health/ready, /health/startup and /health.
func (r *Registry) Handler() http.Handler {
	mux := http.NewServeMux()
	RegisterHandlers(mux, r)
	return mux
}

// RegisterHandlers registers the health endpoints on the given mux.
func RegisterHandlers(mux *http.ServeMux, r *Registry) {
	mux.HandleFunc("/health/live", LivenessHandler(r))
	mux.HandleFunc("/health/ready", ReadinessHandler(r))
	mux.HandleFunc("/health/startup", StartupHandler(r))
	mux.HandleFunc("/health", HealthHandler(r))
}

func writeResponse(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
