package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

var Logger zerolog.Logger

// Init configures the global logger. In development the output is
// pretty-printed; otherwise structured JSON on stdout.
func Init(serviceName string, isDevelopment bool) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var output io.Writer = os.Stdout
	if isDevelopment {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		}
	}

	Logger = zerolog.New(output).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()

	log.Logger = Logger
}

// SetLevel sets the global log level from its string name. Unknown names
// fall back to info.
func SetLevel(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

// WithContext returns a logger carrying the trace and span ids of the
// current span, when one is recording.
func WithContext(ctx context.Context) *zerolog.Logger {
	l := Logger
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		l = l.With().
			Str("trace_id", sc.TraceID().String()).
			Str("span_id", sc.SpanID().String()).
			Logger()
	}
	return &l
}

// Info logs at info level with trace context.
func Info(ctx context.Context) *zerolog.Event { return WithContext(ctx).Info() }

// Warn logs at warn level with trace context.
func Warn(ctx context.Context) *zerolog.Event { return WithContext(ctx).Warn() }

// Error logs at error level with trace context.
func Error(ctx context.Context) *zerolog.Event { return WithContext(ctx).Error() }

// Debug logs at debug level with trace context.
func Debug(ctx context.Context) *zerolog.Event { return WithContext(ctx).Debug() }
