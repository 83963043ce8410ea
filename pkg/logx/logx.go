// Package logx is a thin leveled logging facade over zerolog so the rest
// of the codebase never imports the logging backend directly.
package logx

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type Level = zerolog.Level

const (
	LevelDebug = zerolog.DebugLevel
	LevelInfo  = zerolog.InfoLevel
	LevelWarn  = zerolog.WarnLevel
	LevelError = zerolog.ErrorLevel
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

// SetLevel sets the minimum level emitted by the process-wide logger.
func SetLevel(level Level) {
	logger = logger.Level(level)
}

func Debug(msg string) { logger.Debug().Msg(msg) }
func Debugf(format string, args ...any) { logger.Debug().Msg(fmt.Sprintf(format, args...)) }
func Info(msg string) { logger.Info().Msg(msg) }
func Infof(format string, args ...any) { logger.Info().Msg(fmt.Sprintf(format, args...)) }
func Warn(msg string) { logger.Warn().Msg(msg) }
func Warnf(format string, args ...any) { logger.Warn().Msg(fmt.Sprintf(format, args...)) }
func Error(msg string) { logger.Error().Msg(msg) }
func Errorf(format string, args ...any) { logger.Error().Msg(fmt.Sprintf(format, args...)) }
func Fatal(msg string) { logger.Fatal().Msg(msg) }
func Fatalf(format string, args ...any) { logger.Fatal().Msg(fmt.Sprintf(format, args...)) }
