package commands

import "notepad/internal/logger"

type Handler func(Event)

// Registry dispatches command events to their handlers synchronously on the
// caller's goroutine, which is always the UI goroutine.
type Registry struct {
	handlers map[ID]Handler
	logger   logger.Logger
}

func NewRegistry(log logger.Logger) *Registry {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Registry{
		handlers: make(map[ID]Handler),
		logger:   log,
	}
}

// Register binds handler to id, replacing any previous binding.
func (r *Registry) Register(id ID, handler Handler) {
	r.handlers[id] = handler
}

// Dispatch runs the handler bound to event.Command and reports whether one existed.
func (r *Registry) Dispatch(event Event) bool {
	handler, ok := r.handlers[event.Command]
	if !ok {
		r.logger.Warning("Commands", "no handler bound", map[string]interface{}{
			"command": event.Command.String(),
		})
		return false
	}

	r.logger.Debug("Commands", "dispatch", map[string]interface{}{
		"command": event.Command.String(),
		"arg":     event.Arg,
	})
	handler(event)
	return true
}

// Invoker returns a closure that dispatches event, for menu items and buttons.
func (r *Registry) Invoker(event Event) func() {
	return func() { r.Dispatch(event) }
}
