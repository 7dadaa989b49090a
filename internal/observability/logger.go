package observability

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field represents a key-value pair for observability.
type Field struct {
	Key   string
	Value interface{}
}

// MetricField represents a key-value pair for logging metrics.
type MetricField struct {
	Key   string
	Value interface{}
}

type ObservabilityContextKey string

const observabilityKey ObservabilityContextKey = "observability_fields"

// WithFields adds a set of observability fields to the context.
// A later field with the same key shadows an earlier one when the logger renders them.
func WithFields(ctx context.Context, fields ...Field) context.Context {
	existing := getObservabilityFields(ctx)
	merged := make([]Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, observabilityKey, merged)
}

// Get observability fields from context.
func getObservabilityFields(ctx context.Context) []Field {
	if ctx == nil {
		return nil
	}
	if fields, ok := ctx.Value(observabilityKey).([]Field); ok {
		return fields
	}
	return nil
}

// dedupe keeps the last value written for every key, preserving first-seen order.
func dedupe(fields []Field) []zapcore.Field {
	index := make(map[string]int, len(fields))
	out := make([]zapcore.Field, 0, len(fields))
	for _, f := range fields {
		if i, ok := index[f.Key]; ok {
			out[i] = zap.Any(f.Key, f.Value)
			continue
		}
		index[f.Key] = len(out)
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}

// GetRealClientIP extracts the real client IP from CloudFront headers.
// CloudFront-Viewer-Address contains the client IP in "IP:port" format.
// Falls back to c.ClientIP() if the header is not present.
func GetRealClientIP(c *gin.Context) string {
	if viewerAddr := c.GetHeader("CloudFront-Viewer-Address"); viewerAddr != "" {
		if colonIdx := strings.LastIndex(viewerAddr, ":"); colonIdx > 0 {
			return viewerAddr[:colonIdx]
		}
		return viewerAddr
	}
	return c.ClientIP()
}

// Middleware to add observability fields to Gin context.
func Middleware(l *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		requestID := c.Request.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = fmt.Sprintf("req-%s", uuid.New().String())
			c.Request.Header.Set("X-Request-ID", requestID)
		}
		c.Writer.Header().Set("X-Request-ID", requestID)

		ctx = WithFields(ctx,
			Field{"request_id", requestID},
			Field{"path", c.Request.URL.Path},
			Field{"method", c.Request.Method},
			Field{"client_ip", GetRealClientIP(c)},
			Field{"user_agent", c.Request.UserAgent()},
		)

		// Event Grid and call-automation deliveries carry their own identifiers.
		if eventType := c.GetHeader("aeg-event-type"); eventType != "" {
			ctx = WithFields(ctx, Field{"aeg_event_type", eventType})
		}
		if c.Request.ContentLength > 0 {
			ctx = WithFields(ctx, Field{"content_length", c.Request.ContentLength})
		}

		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				l.Error(c.Request.Context(), "Recovered from panic", fmt.Errorf("reason: %+v", r))
				c.AbortWithStatus(500)
			}

			if c.Request.URL.Path == "/health" {
				return
			}
			latency := time.Since(start)
			l.Info(WithFields(ctx,
				Field{"latency_ns", latency.Nanoseconds()},
				Field{"status", c.Writer.Status()},
			), "Request processed")
		}()
		c.Next()
	}
}

// Logger represents a custom logger with Zap integration.
type Logger struct {
	zapLogger *zap.Logger
}

// NewLogger creates a new instance of custom logger.
// LOG_LEVEL (debug, info, warn, error) overrides the production default of info.
func NewLogger() *Logger {
	cfg := zap.NewProductionConfig()
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if lvl, err := zapcore.ParseLevel(raw); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}
	zapLogger, err := cfg.Build()
	if err != nil {
		zapLogger = zap.NewNop()
	}
	zapLogger = zapLogger.WithOptions(zap.AddCallerSkip(1))
	zapLogger = zapLogger.WithOptions(zap.AddStacktrace(zapcore.ErrorLevel))
	return &Logger{zapLogger: zapLogger}
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *Logger {
	return &Logger{zapLogger: zap.NewNop()}
}

// NewWithZap wraps an existing zap logger, mostly for tests that observe output.
func NewWithZap(zapLogger *zap.Logger) *Logger {
	return &Logger{zapLogger: zapLogger}
}

// Create a logger with fields from context.
func (l *Logger) loggerFromContext(ctx context.Context) *zap.Logger {
	return l.zapLogger.With(dedupe(getObservabilityFields(ctx))...)
}

// Info logs an informational message with context-based fields.
func (l *Logger) Info(ctx context.Context, msg string) {
	l.loggerFromContext(ctx).Info(msg)
}

// InfoWithError logs an informational message with context and an error.
func (l *Logger) InfoWithError(ctx context.Context, msg string, err error) {
	l.loggerFromContext(ctx).Info(msg, zap.Error(err))
}

// Error logs an error message with context-based fields.
func (l *Logger) Error(ctx context.Context, msg string, err error) {
	l.loggerFromContext(ctx).Error(msg, zap.Error(err))
}

// Warn logs a warning message with context-based fields.
func (l *Logger) Warn(ctx context.Context, msg string) {
	l.loggerFromContext(ctx).Warn(msg)
}

// WarnWithError logs a warning with an error attached. Used for best-effort cleanup failures.
func (l *Logger) WarnWithError(ctx context.Context, msg string, err error) {
	l.loggerFromContext(ctx).Warn(msg, zap.Error(err))
}

// Debug logs a debug message with context-based fields.
func (l *Logger) Debug(ctx context.Context, msg string) {
	l.loggerFromContext(ctx).Debug(msg)
}

// Fatal logs a fatal message with context-based fields.
func (l *Logger) Fatal(ctx context.Context, msg string, err error) {
	l.loggerFromContext(ctx).Fatal(msg, zap.Error(err))
}

// Metrics logs metrics-related information using custom MetricField type.
func (l *Logger) Metrics(ctx context.Context, fields ...MetricField) {
	all := getObservabilityFields(ctx)
	for _, f := range fields {
		all = append(all, Field{Key: f.Key, Value: f.Value})
	}
	l.zapLogger.Info("Metrics", dedupe(all)...)
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() {
	_ = l.zapLogger.Sync()
}
