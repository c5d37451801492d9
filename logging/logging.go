package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level mirrors zerolog's level type so callers configuring a Logger
// never need to import zerolog directly.
type Level = zerolog.Level

// Re-exported levels for Config.Level.
const (
	LevelDebug = zerolog.DebugLevel
	LevelInfo  = zerolog.InfoLevel
	LevelWarn  = zerolog.WarnLevel
	LevelError = zerolog.ErrorLevel
)

// Config configures a Logger: where it writes and at what level.
type Config struct {
	// Level is the minimum level emitted.
	Level Level
	// Service names the component (e.g. "centerline", "centerline-cli")
	// and is attached to every log line.
	Service string
	// LogFile, if non-nil, receives log output in addition to stderr
	// (the "optional file logging" tier of the ambient logging design).
	LogFile io.Writer
}

// Logger wraps a configured zerolog.Logger. Stages log through this,
// never through fmt/log directly (SPEC_FULL.md §7).
type Logger struct {
	z zerolog.Logger
}

// Default returns a Logger writing human-readable output to stderr at
// Info level, for CLI use.
func Default() *Logger {
	return New(Config{Level: LevelInfo, Service: "centerline"})
}

// New builds a Logger from cfg.
func New(cfg Config) *Logger {
	var writers []io.Writer
	writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if cfg.LogFile != nil {
		writers = append(writers, cfg.LogFile)
	}
	multi := io.MultiWriter(writers...)

	z := zerolog.New(multi).
		Level(cfg.Level).
		With().
		Timestamp().
		Str("service", cfg.Service).
		Logger()

	return &Logger{z: z}
}

// WithPolygon returns a child Logger tagging every line with polygon_id,
// used for the per-polygon stage of pipeline.Driver.RunBatch.
func (l *Logger) WithPolygon(id string) *Logger {
	return &Logger{z: l.z.With().Str("polygon_id", id).Logger()}
}

// WithStage returns a child Logger tagging every line with stage.
func (l *Logger) WithStage(stage string) *Logger {
	return &Logger{z: l.z.With().Str("stage", stage).Logger()}
}

// Debug logs at debug level with structured key/value fields (fields
// must be an even-length list of alternating string keys and values).
func (l *Logger) Debug(msg string, fields ...interface{}) { l.log(l.z.Debug(), msg, fields) }

// Info logs at info level.
func (l *Logger) Info(msg string, fields ...interface{}) { l.log(l.z.Info(), msg, fields) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string, fields ...interface{}) { l.log(l.z.Warn(), msg, fields) }

// Error logs at error level, attaching err.
func (l *Logger) Error(msg string, err error, fields ...interface{}) {
	ev := l.z.Error().Err(err)
	l.logEvent(ev, msg, fields)
}

func (l *Logger) log(ev *zerolog.Event, msg string, fields []interface{}) {
	l.logEvent(ev, msg, fields)
}

func (l *Logger) logEvent(ev *zerolog.Event, msg string, fields []interface{}) {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		ev = ev.Interface(key, fields[i+1])
	}
	ev.Msg(msg)
}
