package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("decode log entry %q: %v", buf.String(), err)
	}
	return entry
}

func TestNewWithWriter_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, Config{
		Level:       LevelInfo,
		Format:      FormatJSON,
		ServiceName: "checkout",
		Environment: "production",
	})

	log.Info("server listening", zap.String("addr", ":8080"))

	entry := decodeEntry(t, &buf)
	if entry["message"] != "server listening" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["service"] != "checkout" {
		t.Errorf("service = %v", entry["service"])
	}
	if entry["environment"] != "production" {
		t.Errorf("environment = %v", entry["environment"])
	}
	if entry["addr"] != ":8080" {
		t.Errorf("addr = %v", entry["addr"])
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("entry missing timestamp")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, Config{Level: LevelWarn, Format: FormatJSON})

	log.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("info entry written at warn level: %s", buf.String())
	}

	log.Warn("kept")
	if buf.Len() == 0 {
		t.Error("warn entry not written")
	}
}

func TestLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, Config{Level: LevelInfo, Format: FormatJSON})

	traceID, _ := trace.TraceIDFromHex("0123456789abcdef0123456789abcdef")
	spanID, _ := trace.SpanIDFromHex("0123456789abcdef")
	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)

	log.WithContext(ctx).Info("correlated")

	entry := decodeEntry(t, &buf)
	if entry["trace_id"] != traceID.String() {
		t.Errorf("trace_id = %v, want %s", entry["trace_id"], traceID)
	}
	if entry["span_id"] != spanID.String() {
		t.Errorf("span_id = %v, want %s", entry["span_id"], spanID)
	}
}

func TestLogger_WithContext_NoSpan(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, Config{Level: LevelInfo, Format: FormatJSON})

	log.WithContext(context.Background()).Info("uncorrelated")

	entry := decodeEntry(t, &buf)
	if _, ok := entry["trace_id"]; ok {
		t.Error("trace_id present without a span in context")
	}
}

func TestLogger_WithRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, Config{Level: LevelInfo, Format: FormatJSON})

	log.WithRequestID("req-42").Info("scoped")

	entry := decodeEntry(t, &buf)
	if entry["request_id"] != "req-42" {
		t.Errorf("request_id = %v, want req-42", entry["request_id"])
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SERVICE_NAME", "checkout")
	t.Setenv("ENVIRONMENT", "staging")

	cfg := ConfigFromEnv()

	if cfg.Level != LevelDebug {
		t.Errorf("Level = %v, want debug", cfg.Level)
	}
	if cfg.Format != FormatJSON {
		t.Errorf("Format = %v, want json", cfg.Format)
	}
	if cfg.ServiceName != "checkout" {
		t.Errorf("ServiceName = %v", cfg.ServiceName)
	}
	if cfg.Environment != "staging" {
		t.Errorf("Environment = %v", cfg.Environment)
	}
}

func TestConfigFromEnv_DevelopmentDefaultsToConsole(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("SERVICE_NAME", "")
	t.Setenv("OTEL_SERVICE_NAME", "fallback-name")
	t.Setenv("ENVIRONMENT", "")

	cfg := ConfigFromEnv()

	if cfg.Environment != "development" {
		t.Errorf("Environment = %v, want development", cfg.Environment)
	}
	if cfg.Format != FormatConsole {
		t.Errorf("Format = %v, want console in development", cfg.Format)
	}
	if cfg.ServiceName != "fallback-name" {
		t.Errorf("ServiceName = %v, want OTEL_SERVICE_NAME fallback", cfg.ServiceName)
	}
}

func TestErr(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, Config{Level: LevelInfo, Format: FormatJSON})

	log.Info("no error", Err(nil))

	entry := decodeEntry(t, &buf)
	if _, ok := entry["error"]; ok {
		t.Error("nil error should be skipped")
	}
}
