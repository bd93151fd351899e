package gutter

import "notepad/internal/logger"

// Pane is a vertically scrollable region addressed by a fraction in [0,1]:
// 0 shows the top, 1 shows the bottom.
type Pane interface {
	ScrollFraction() float64
	SetScrollFraction(fraction float64)
}

// Synchronizer copies the document's scroll position onto the mirror.
type Synchronizer struct {
	buffer  Pane
	mirror  Pane
	logger  logger.Logger
	syncing bool
}

func NewSynchronizer(buffer, mirror Pane, log logger.Logger) *Synchronizer {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Synchronizer{buffer: buffer, mirror: mirror, logger: log}
}

// BufferScrolled mirrors the document's current fraction after a wheel or
// trackpad scroll on the document.
func (s *Synchronizer) BufferScrolled() {
	if s.syncing {
		return
	}
	s.syncing = true
	defer func() { s.syncing = false }()

	s.mirror.SetScrollFraction(Clamp(s.buffer.ScrollFraction()))
}

// MoveTo applies a requested fraction to both panes, as a scrollbar drag does.
func (s *Synchronizer) MoveTo(fraction float64) {
	if s.syncing {
		return
	}
	s.syncing = true
	defer func() { s.syncing = false }()

	fraction = Clamp(fraction)
	s.buffer.SetScrollFraction(fraction)
	s.mirror.SetScrollFraction(fraction)

	s.logger.Debug("ScrollSync", "panes moved", map[string]interface{}{
		"fraction": fraction,
	})
}

// Clamp bounds f to [0,1]; NaN maps to 0.
func Clamp(f float64) float64 {
	switch {
	case f != f:
		return 0
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
