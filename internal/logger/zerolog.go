package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// ZerologAdapter writes one structured event per call: the component, the
// caller's fields and, for errors, the error itself.
type ZerologAdapter struct {
	logger zerolog.Logger
}

func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	return &ZerologAdapter{
		logger: zerolog.New(writer).Level(level).With().Timestamp().Logger(),
	}
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	z.emit(z.logger.Info(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	z.emit(z.logger.Warn(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	z.emit(z.logger.Debug(), component, fields).Msg(message)
}

// Error uses the error text as the message, so wrapped errors such as
// "save: permission denied" read as what failed.
func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	message := component + " error"
	if err != nil {
		message = err.Error()
	}
	z.emit(z.logger.Error(), component, fields).Err(err).Msg(message)
}

func (z *ZerologAdapter) emit(event *zerolog.Event, component string, fields map[string]interface{}) *zerolog.Event {
	event = event.Str("component", component)
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	return event
}
