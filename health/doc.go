// Package health provides a health check registry for web services.
//
// The package implements the three Kubernetes probe flavors (liveness,
// readiness, startup) on top of a named registry of dependency checks.
// Checks run concurrently, each bounded by a configurable timeout, and
// individual failures are rolled up into a single overall status.
//
// # Core Concepts
//
// A Checker reports the health of one dependency as a Result with one of
// three statuses: Healthy, Degraded, or Unhealthy. A Registry holds named
// checkers, runs them, and tracks process lifecycle state (start time for
// uptime, a started flag for startup probes).
//
// # Basic Usage
//
//	reg := health.NewRegistry(health.ConfigFromEnv())
//
//	reg.RegisterFunc("database", func(ctx context.Context) (health.Result, error) {
//	    if err := db.PingContext(ctx); err != nil {
//	        return health.Result{}, err
//	    }
//	    return health.Healthy("database reachable"), nil
//	})
//
//	http.Handle("/health/", reg.Handler())
//	http.Handle("/health", reg.Handler())
//
//	// After initialization completes:
//	reg.MarkStarted()
//
// During graceful shutdown call MarkNotStarted so the startup and
// readiness probes begin failing before the listener stops accepting
// connections.
//
// # Status Rollup
//
// OverallStatus degrades to the most severe status present: any unhealthy
// check makes the aggregate unhealthy, otherwise any degraded check makes
// it degraded. A degraded aggregate still maps to HTTP 200 so partial
// dependency failure does not take the instance out of rotation; only an
// unhealthy aggregate produces 503.
//
// # Failure Model
//
// CheckAll never fails. A check that returns an error, panics, or exceeds
// the timeout is reported as an unhealthy entry for that polling cycle.
// The timeout bounds only how long the registry waits: a check that
// ignores its context keeps running in the background and its eventual
// result is discarded.
package health
