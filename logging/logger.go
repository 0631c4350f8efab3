package logging

import (
	"context"
	"io"
	"os"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level represents a log level.
type Level string

const (
	// LevelDebug is the debug log level.
	LevelDebug Level = "debug"
	// LevelInfo is the info log level.
	LevelInfo Level = "info"
	// LevelWarn is the warn log level.
	LevelWarn Level = "warn"
	// LevelError is the error log level.
	LevelError Level = "error"
)

// Format represents a log output format.
type Format string

const (
	// FormatJSON outputs logs in JSON format.
	FormatJSON Format = "json"
	// FormatConsole outputs logs in human-readable format.
	FormatConsole Format = "console"
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level.
	// Default: info
	Level Level

	// Format is the log output format.
	// Default: json
	Format Format

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string

	// Environment is attached to every entry as the "environment" field.
	Environment string
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Format: FormatJSON,
	}
}

// ConfigFromEnv builds a configuration from environment variables.
//
// Recognized variables:
//   - LOG_LEVEL: debug|info|warn|error (default info)
//   - LOG_FORMAT: json|console (default json; development environments
//     default to console)
//   - SERVICE_NAME: service field, falls back to OTEL_SERVICE_NAME
//   - ENVIRONMENT: environment field (default "development")
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if l := os.Getenv("LOG_LEVEL"); l != "" {
		cfg.Level = Level(l)
	}

	cfg.ServiceName = os.Getenv("SERVICE_NAME")
	if cfg.ServiceName == "" {
		cfg.ServiceName = os.Getenv("OTEL_SERVICE_NAME")
	}

	cfg.Environment = os.Getenv("ENVIRONMENT")
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	if cfg.Environment == "development" {
		cfg.Format = FormatConsole
	}
	if f := os.Getenv("LOG_FORMAT"); f != "" {
		cfg.Format = Format(f)
	}

	return cfg
}

// Logger wraps zap.Logger with trace correlation and request scoping.
type Logger struct {
	*zap.Logger
	config Config
}

// New creates a logger writing JSON (or console) entries to stdout.
func New(config ...Config) *Logger {
	return NewWithWriter(os.Stdout, config...)
}

// NewWithWriter creates a logger writing to the given writer.
func NewWithWriter(w io.Writer, config ...Config) *Logger {
	cfg := DefaultConfig()
	if len(config) > 0 {
		cfg = config[0]
		if cfg.Level == "" {
			cfg.Level = LevelInfo
		}
		if cfg.Format == "" {
			cfg.Format = FormatJSON
		}
	}

	core := zapcore.NewCore(
		buildEncoder(cfg.Format),
		zapcore.AddSync(w),
		parseLevel(cfg.Level),
	)

	fields := make([]zap.Field, 0, 2)
	if cfg.ServiceName != "" {
		fields = append(fields, zap.String(FieldService, cfg.ServiceName))
	}
	if cfg.Environment != "" {
		fields = append(fields, zap.String(FieldEnvironment, cfg.Environment))
	}

	return &Logger{
		Logger: zap.New(core, zap.Fields(fields...)),
		config: cfg,
	}
}

func buildEncoder(format Format) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      zapcore.OmitKey,
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
	}

	if format == FormatConsole {
		return zapcore.NewConsoleEncoder(encoderConfig)
	}
	return zapcore.NewJSONEncoder(encoderConfig)
}

func parseLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// WithContext returns a logger carrying the trace and span IDs of the
// span in ctx, if any. Entries logged through the returned logger can be
// correlated with the distributed trace.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return l
	}

	return &Logger{
		Logger: l.Logger.With(
			zap.String(FieldTraceID, spanCtx.TraceID().String()),
			zap.String(FieldSpanID, spanCtx.SpanID().String()),
		),
		config: l.config,
	}
}

// WithRequestID returns a logger scoped to one request.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(zap.String(FieldRequestID, requestID)),
		config: l.config,
	}
}

// With returns a logger with additional fields attached.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{
		Logger: l.Logger.With(fields...),
		config: l.config,
	}
}
