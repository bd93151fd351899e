package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger provides structured logging tagged with the emitting component
type Logger interface {
	Info(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Debug(component string, message string, fields map[string]interface{})
}

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

type Config struct {
	Enabled bool
	Level   Level
	Console bool
	Output  io.Writer
}

func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Level:   LevelInfo,
		Console: true,
		Output:  os.Stderr,
	}
}

// New builds the logger described by config. A disabled config yields NoOpLogger.
func New(config Config) Logger {
	if !config.Enabled {
		return NoOpLogger{}
	}

	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	if config.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	return NewZerolog(out, config.Level.zerolog())
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarning:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NoOpLogger discards everything; used by tests and when logging is disabled
type NoOpLogger struct{}

func (n NoOpLogger) Info(component string, message string, fields map[string]interface{})    {}
func (n NoOpLogger) Error(component string, err error, fields map[string]interface{})        {}
func (n NoOpLogger) Warning(component string, message string, fields map[string]interface{}) {}
func (n NoOpLogger) Debug(component string, message string, fields map[string]interface{})   {}
