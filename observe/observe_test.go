package observe

import (
	"context"
	"errors"
	"testing"
)

func validConfig() Config {
	return Config{
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
		Tracing: TracingConfig{
			Enabled:   true,
			Exporter:  "none",
			SamplePct: 1.0,
		},
		Metrics: MetricsConfig{
			Enabled:  true,
			Exporter: "none",
		},
	}
}

// TestConfigValidate_Valid verifies that a fully valid config passes validation.
func TestConfigValidate_Valid(t *testing.T) {
	cfg := validConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected nil error, got: %v", err)
	}
}

func TestConfigValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "missing service name",
			mutate:  func(c *Config) { c.ServiceName = "" },
			wantErr: ErrMissingServiceName,
		},
		{
			name:    "unknown tracing exporter",
			mutate:  func(c *Config) { c.Tracing.Exporter = "graphite" },
			wantErr: ErrInvalidTracingExporter,
		},
		{
			name:    "sample percentage above one",
			mutate:  func(c *Config) { c.Tracing.SamplePct = 1.5 },
			wantErr: ErrInvalidSamplePct,
		},
		{
			name:    "negative sample percentage",
			mutate:  func(c *Config) { c.Tracing.SamplePct = -0.1 },
			wantErr: ErrInvalidSamplePct,
		},
		{
			name:    "unknown metrics exporter",
			mutate:  func(c *Config) { c.Metrics.Exporter = "statsd" },
			wantErr: ErrInvalidMetricsExporter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidate_DisabledSubsystemsSkipChecks(t *testing.T) {
	cfg := Config{
		ServiceName: "test-service",
		Tracing:     TracingConfig{Enabled: false, Exporter: "bogus"},
		Metrics:     MetricsConfig{Enabled: false, Exporter: "bogus"},
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled subsystems should not be validated, got: %v", err)
	}
}

func TestNewObserver(t *testing.T) {
	obs, err := NewObserver(context.Background(), validConfig())
	if err != nil {
		t.Fatalf("NewObserver() error = %v", err)
	}
	defer obs.Shutdown(context.Background())

	if obs.Tracer() == nil {
		t.Error("Tracer() = nil")
	}
	if obs.Meter() == nil {
		t.Error("Meter() = nil")
	}
}

func TestNewObserver_InvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.ServiceName = ""

	if _, err := NewObserver(context.Background(), cfg); err == nil {
		t.Fatal("NewObserver() error = nil, want validation failure")
	}
}

func TestNewObserver_Disabled(t *testing.T) {
	cfg := Config{ServiceName: "test-service"}

	obs, err := NewObserver(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewObserver() error = %v", err)
	}

	// No-op implementations stand in for disabled subsystems.
	if obs.Tracer() == nil {
		t.Error("Tracer() = nil for disabled tracing")
	}
	if obs.Meter() == nil {
		t.Error("Meter() = nil for disabled metrics")
	}

	if err := obs.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestObserver_ShutdownTwice(t *testing.T) {
	obs, err := NewObserver(context.Background(), validConfig())
	if err != nil {
		t.Fatalf("NewObserver() error = %v", err)
	}

	if err := obs.Shutdown(context.Background()); err != nil {
		t.Errorf("first Shutdown() error = %v", err)
	}
	if err := obs.Shutdown(context.Background()); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}
}

func TestObserver_SpanRoundTrip(t *testing.T) {
	obs, err := NewObserver(context.Background(), validConfig())
	if err != nil {
		t.Fatalf("NewObserver() error = %v", err)
	}
	defer obs.Shutdown(context.Background())

	ctx, span := StartSpan(context.Background(), obs.Tracer(), "test-operation")
	defer span.End()

	traceID, spanID := TraceContext(ctx)
	if traceID == "" || spanID == "" {
		t.Errorf("TraceContext() = (%q, %q), want valid IDs inside a span", traceID, spanID)
	}
}
