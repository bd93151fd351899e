package gutter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePane struct {
	fraction float64
	onSet    func(float64)
}

func (p *fakePane) ScrollFraction() float64 { return p.fraction }

func (p *fakePane) SetScrollFraction(f float64) {
	p.fraction = f
	if p.onSet != nil {
		p.onSet(f)
	}
}

func TestBufferScrolledCopiesFraction(t *testing.T) {
	buffer := &fakePane{fraction: 0.37}
	mirror := &fakePane{}
	s := NewSynchronizer(buffer, mirror, nil)

	s.BufferScrolled()

	assert.Equal(t, 0.37, mirror.fraction)
}

func TestMoveToAppliesToBothPanes(t *testing.T) {
	for _, f := range []float64{0, 0.25, 0.5, 1} {
		buffer := &fakePane{}
		mirror := &fakePane{}
		s := NewSynchronizer(buffer, mirror, nil)

		s.MoveTo(f)

		assert.Equal(t, f, buffer.fraction)
		assert.Equal(t, buffer.fraction, mirror.fraction)
	}
}

func TestMoveToClamps(t *testing.T) {
	buffer := &fakePane{}
	mirror := &fakePane{}
	s := NewSynchronizer(buffer, mirror, nil)

	s.MoveTo(1.8)
	assert.Equal(t, 1.0, mirror.fraction)

	s.MoveTo(-0.3)
	assert.Equal(t, 0.0, mirror.fraction)

	s.MoveTo(math.NaN())
	assert.Equal(t, 0.0, buffer.fraction)
}

func TestSynchronizerIgnoresReentrantNotifications(t *testing.T) {
	buffer := &fakePane{}
	mirror := &fakePane{}
	s := NewSynchronizer(buffer, mirror, nil)

	calls := 0
	buffer.onSet = func(float64) {
		calls++
		s.BufferScrolled()
	}

	s.MoveTo(0.6)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0.6, mirror.fraction)
}
