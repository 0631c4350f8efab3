package health

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// Registry maintains a named set of health checks and runs them with a
// per-check timeout.
//
// The zero value is not usable; create instances with NewRegistry. A
// Registry is safe for concurrent use: probes may be polled while checks
// are registered and removed.
type Registry struct {
	config    Config
	mu        sync.RWMutex
	checks    map[string]Checker
	started   atomic.Bool
	startTime time.Time
	group     singleflight.Group
}

// NewRegistry creates a new health registry.
func NewRegistry(config ...Config) *Registry {
	cfg := DefaultConfig()
	if len(config) > 0 {
		cfg = config[0]
		if cfg.CheckTimeout <= 0 {
			cfg.CheckTimeout = 5 * time.Second
		}
		if cfg.Version == "" {
			cfg.Version = "0.0.0"
		}
	}

	return &Registry{
		config:    cfg,
		checks:    make(map[string]Checker),
		startTime: time.Now(),
	}
}

// Register adds a health check under the given name.
// Registering an existing name silently replaces the prior check.
func (r *Registry) Register(name string, checker Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks[name] = checker
}

// RegisterFunc registers an ordinary function as a health check.
func (r *Registry) RegisterFunc(name string, fn func(ctx context.Context) (Result, error)) {
	r.Register(name, CheckFunc(fn))
}

// Unregister removes the named check. Removing an absent name is a no-op.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.checks, name)
}

// CheckerNames returns the names of all registered checks.
func (r *Registry) CheckerNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.checks))
	for name := range r.checks {
		names = append(names, name)
	}
	return names
}

// MarkStarted marks the application as started. Call it once application
// initialization has completed so startup and readiness probes pass.
func (r *Registry) MarkStarted() {
	r.started.Store(true)
}

// MarkNotStarted marks the application as not started. Call it during
// graceful shutdown so probes start failing before the listener closes.
func (r *Registry) MarkNotStarted() {
	r.started.Store(false)
}

// IsStarted returns whether the application is marked started.
func (r *Registry) IsStarted() bool {
	return r.started.Load()
}

// Uptime returns the time elapsed since the registry was created.
func (r *Registry) Uptime() time.Duration {
	return time.Since(r.startTime)
}

// Check runs the single named check.
func (r *Registry) Check(ctx context.Context, name string) (Result, error) {
	r.mu.RLock()
	checker, ok := r.checks[name]
	r.mu.RUnlock()

	if !ok {
		return Result{}, ErrCheckerNotFound
	}

	return r.runCheck(ctx, checker), nil
}

// CheckAll runs every registered check concurrently, each bounded by the
// configured timeout, and returns once all have completed. Every check
// yields a result: failures and timeouts are reported as unhealthy
// entries, never as an error from CheckAll.
//
// Overlapping invocations (for example two simultaneous probe requests)
// share a single execution; the returned map must be treated as read-only.
func (r *Registry) CheckAll(ctx context.Context) map[string]Result {
	v, _, _ := r.group.Do("all", func() (any, error) {
		return r.checkAll(ctx), nil
	})
	return v.(map[string]Result)
}

func (r *Registry) checkAll(ctx context.Context) map[string]Result {
	r.mu.RLock()
	checks := make(map[string]Checker, len(r.checks))
	for name, checker := range r.checks {
		checks[name] = checker
	}
	r.mu.RUnlock()

	results := make(map[string]Result, len(checks))
	if len(checks) == 0 {
		return results
	}

	var wg sync.WaitGroup
	var resultMu sync.Mutex

	for name, checker := range checks {
		wg.Add(1)
		go func(name string, checker Checker) {
			defer wg.Done()
			result := r.runCheck(ctx, checker)
			resultMu.Lock()
			results[name] = result
			resultMu.Unlock()
		}(name, checker)
	}

	wg.Wait()
	return results
}

type checkOutcome struct {
	result Result
	err    error
}

// runCheck executes one check bounded by the configured timeout.
//
// The timeout is a soft deadline on the wait, not a hard cancellation: if
// the check ignores ctx it keeps running in the background and its
// eventual result is discarded.
func (r *Registry) runCheck(ctx context.Context, checker Checker) Result {
	ctx, cancel := context.WithTimeout(ctx, r.config.CheckTimeout)
	defer cancel()

	start := time.Now()
	outcome := make(chan checkOutcome, 1)

	go func() {
		defer func() {
			if v := recover(); v != nil {
				outcome <- checkOutcome{err: fmt.Errorf("%w: %v", ErrCheckPanic, v)}
			}
		}()
		result, err := checker.Check(ctx)
		outcome <- checkOutcome{result: result, err: err}
	}()

	select {
	case out := <-outcome:
		if out.err != nil {
			return Result{
				Status:  StatusUnhealthy,
				Message: out.err.Error(),
				Latency: time.Since(start),
			}
		}
		result := out.result
		if result.Latency == 0 {
			result.Latency = time.Since(start)
		}
		return result
	case <-ctx.Done():
		return Result{
			Status:  StatusUnhealthy,
			Message: "Health check timeout",
			Latency: time.Since(start),
		}
	}
}

// OverallStatus computes the overall health status from a set of results.
// Returns StatusUnhealthy if any check is unhealthy.
// Returns StatusDegraded if any check is degraded but none are unhealthy.
// Returns StatusHealthy otherwise, including for an empty result set.
func OverallStatus(results map[string]Result) Status {
	hasUnhealthy := false
	hasDegraded := false

	for _, result := range results {
		switch result.Status {
		case StatusUnhealthy:
			hasUnhealthy = true
		case StatusDegraded:
			hasDegraded = true
		}
	}

	if hasUnhealthy {
		return StatusUnhealthy
	}
	if hasDegraded {
		return StatusDegraded
	}
	return StatusHealthy
}
