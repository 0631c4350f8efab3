package health

import (
	"context"
	"encoding/json"
	"time"
)

// Status represents the health status of a component.
type Status int

const (
	// StatusHealthy indicates the component is functioning normally.
	StatusHealthy Status = iota
	// StatusDegraded indicates the component is functioning but with issues.
	StatusDegraded
	// StatusUnhealthy indicates the component is not functioning properly.
	StatusUnhealthy
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusHealthy:
		return "healthy"
	case StatusDegraded:
		return "degraded"
	case StatusUnhealthy:
		return "unhealthy"
	default:
		return "unknown"
	}
}

// MarshalJSON marshals the status as its lowercase string form.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Result contains the outcome of a single health check.
type Result struct {
	// Status is the health status.
	Status Status

	// Message provides additional context about the status.
	Message string

	// Latency is how long the check took. If a check leaves it zero,
	// the registry fills it with the measured elapsed time.
	Latency time.Duration

	// Details contains arbitrary metadata about the check.
	Details map[string]any
}

// Healthy creates a healthy result.
func Healthy(message string) Result {
	return Result{Status: StatusHealthy, Message: message}
}

// Degraded creates a degraded result.
func Degraded(message string) Result {
	return Result{Status: StatusDegraded, Message: message}
}

// Unhealthy creates an unhealthy result.
func Unhealthy(message string) Result {
	return Result{Status: StatusUnhealthy, Message: message}
}

// WithDetails adds details to a result.
func (r Result) WithDetails(details map[string]any) Result {
	r.Details = details
	return r
}

// WithLatency sets the latency on a result.
func (r Result) WithLatency(d time.Duration) Result {
	r.Latency = d
	return r
}

// Checker is the interface for health checks.
//
// Check reports the health of one dependency. Returning an error is
// equivalent to returning an unhealthy result: the registry converts the
// error into a Result carrying the error text. Implementations should
// respect ctx, which carries the per-check deadline.
type Checker interface {
	Check(ctx context.Context) (Result, error)
}

// CheckFunc is an adapter to allow ordinary functions to be used as Checkers.
type CheckFunc func(ctx context.Context) (Result, error)

// Check performs the health check.
func (f CheckFunc) Check(ctx context.Context) (Result, error) {
	return f(ctx)
}
