package observe

import (
	"os"
	"strconv"
)

// ConfigFromEnv builds a configuration from environment variables.
//
// Recognized variables:
//   - OTEL_SERVICE_NAME: service name (default "unknown-service")
//   - SERVICE_VERSION: service version (default "0.0.0")
//   - ENVIRONMENT: deployment environment (default "development")
//   - OTEL_TRACES_EXPORTER: otlp|jaeger|stdout|none (default "otlp")
//   - OTEL_TRACES_SAMPLER_ARG: sampling ratio 0.0-1.0 (default 1.0)
//   - OTEL_METRICS_EXPORTER: otlp|prometheus|stdout|none (default "otlp")
func ConfigFromEnv() Config {
	samplePct := 1.0
	if s := os.Getenv("OTEL_TRACES_SAMPLER_ARG"); s != "" {
		if pct, err := strconv.ParseFloat(s, 64); err == nil && pct >= MinSamplePct && pct <= MaxSamplePct {
			samplePct = pct
		}
	}

	return Config{
		ServiceName: getEnv("OTEL_SERVICE_NAME", "unknown-service"),
		Version:     getEnv("SERVICE_VERSION", "0.0.0"),
		Environment: getEnv("ENVIRONMENT", "development"),
		Tracing: TracingConfig{
			Enabled:   true,
			Exporter:  getEnv("OTEL_TRACES_EXPORTER", "otlp"),
			SamplePct: samplePct,
		},
		Metrics: MetricsConfig{
			Enabled:  true,
			Exporter: getEnv("OTEL_METRICS_EXPORTER", "otlp"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
