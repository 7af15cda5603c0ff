package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// LevelCritical is reported as "critical" in output. It maps onto zerolog's
// fatal level, but WithLevel never exits the process.
const LevelCritical = zerolog.FatalLevel

type Logger interface {
	Debug(message string, args ...any)
	Info(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
	Critical(message string, args ...any)
	BusinessError(message string, err error, args ...any)
	InternalError(message string, err error, args ...any)
	With(args ...any) Logger
}

type zerologLogger struct {
	base zerolog.Logger
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	zerolog.LevelFieldMarshalFunc = func(level zerolog.Level) string {
		if level == LevelCritical {
			return "critical"
		}
		return level.String()
	}
}

func NewFromEnv() Logger {
	env := normalizeValue(os.Getenv("ENV"))
	level := parseLevel(os.Getenv("LOG_LEVEL"), env)
	format := parseFormat(os.Getenv("LOG_FORMAT"))
	return New(os.Stdout, level, format)
}

func New(output io.Writer, level zerolog.Level, format string) Logger {
	if normalizeValue(format) == "text" {
		output = zerolog.ConsoleWriter{Out: output, NoColor: true, TimeFormat: "15:04:05.000"}
	}

	base := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &zerologLogger{base: base}
}

// Nop discards everything. Used in tests.
func Nop() Logger {
	return &zerologLogger{base: zerolog.Nop()}
}

func (l *zerologLogger) Debug(message string, args ...any) {
	l.base.Debug().Fields(args).Msg(message)
}

func (l *zerologLogger) Info(message string, args ...any) {
	l.base.Info().Fields(args).Msg(message)
}

func (l *zerologLogger) Warn(message string, args ...any) {
	l.base.Warn().Fields(args).Msg(message)
}

func (l *zerologLogger) Error(message string, args ...any) {
	l.base.Error().Fields(args).Msg(message)
}

func (l *zerologLogger) Critical(message string, args ...any) {
	l.base.WithLevel(LevelCritical).Fields(args).Msg(message)
}

func (l *zerologLogger) BusinessError(message string, err error, args ...any) {
	if err == nil {
		return
	}

	l.base.Warn().Err(err).Fields(args).Msg(message)
}

func (l *zerologLogger) InternalError(message string, err error, args ...any) {
	if err == nil {
		return
	}

	l.base.Error().Err(err).Fields(args).Msg(message)
}

func (l *zerologLogger) With(args ...any) Logger {
	return &zerologLogger{base: l.base.With().Fields(args).Logger()}
}

func parseLevel(value string, env string) zerolog.Level {
	switch normalizeValue(value) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "critical", "fatal":
		return LevelCritical
	case "info":
		if env == "development" {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	default:
		if env == "development" {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	}
}

func parseFormat(value string) string {
	switch normalizeValue(value) {
	case "json", "text":
		return normalizeValue(value)
	default:
		return "json"
	}
}

func normalizeValue(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
