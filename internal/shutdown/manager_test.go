package shutdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShutdownRunsComponentsInReverseOrderOnce(t *testing.T) {
	m := NewManager(nil, nil)
	var order []string
	m.Register(Func(func() { order = append(order, "close window") }))
	m.Register(Func(func() { order = append(order, "save preferences") }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"save preferences", "close window"}, order)
}

func TestShutdownCancelsContextAndClosesDone(t *testing.T) {
	m := NewManager(nil, nil)

	m.Shutdown()

	assert.Error(t, m.Context().Err())
	select {
	case <-m.Done():
	default:
		t.Fatal("done channel still open")
	}
}

func TestSchedulerIsUsedForSignals(t *testing.T) {
	scheduled := 0
	m := NewManager(nil, func(fn func()) {
		scheduled++
		fn()
	})

	m.schedule(m.Shutdown)

	assert.Equal(t, 1, scheduled)
	assert.Error(t, m.Context().Err())
}
