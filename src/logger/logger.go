package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type Logger struct {
	env string
	log zerolog.Logger
}

// New builds the process logger. Verbose runs log at debug level, everything
// else at info.
func New(env string, verbose bool) *Logger {
	var w io.Writer = os.Stdout

	// Configure zerolog for dev vs prod
	if env == "dev" {
		// Human-friendly console output
		w = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	return NewWithWriter(env, verbose, w)
}

// NewWithWriter writes JSON lines to w (tests hand in a buffer).
func NewWithWriter(env string, verbose bool, w io.Writer) *Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return &Logger{
		env: env,
		log: zerolog.New(w).Level(level).With().Timestamp().Logger(),
	}
}

// Zerolog exposes the underlying logger for clients that take a zerolog.Logger.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.log
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.log.Info().Msgf(format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.log.Fatal().Msgf(format, args...)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}

// Dump logs v as a structured field at debug level.
func (l *Logger) Dump(msg string, v interface{}) {
	l.log.Debug().Interface("value", v).Msg(msg)
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		env: l.env,
		log: l.log.With().Interface(key, value).Logger(),
	}
}

func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	ctx := l.log.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{
		env: l.env,
		log: ctx.Logger(),
	}
}
