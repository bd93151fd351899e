package gutter

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDisplay struct {
	text   string
	pushes int
}

func (d *recordingDisplay) SetText(text string) {
	d.text = text
	d.pushes++
}

func TestLineCount(t *testing.T) {
	tests := map[string]int{
		"":            1,
		"hello":       1,
		"a\n":         2,
		"a\nb\nc":     3,
		"\n\n\n":      4,
		"crlf\r\nend": 2,
	}
	for text, want := range tests {
		assert.Equal(t, want, LineCount(text), "text %q", text)
	}
}

func TestNumbers(t *testing.T) {
	assert.Equal(t, "1", Numbers(1))
	assert.Equal(t, "1\n2\n3", Numbers(3))
	assert.Equal(t, "", Numbers(0))
}

func TestMirrorMatchesDocumentAfterEdits(t *testing.T) {
	display := &recordingDisplay{}
	m := NewMirror(display)

	edits := []string{"", "a", "a\n", "a\nb\nc", "a\nb", strings.Repeat("x\n", 120), "done"}
	for _, text := range edits {
		m.Sync(text)

		count := LineCount(text)
		lines := strings.Split(display.text, "\n")
		require.Len(t, lines, count)
		for i, line := range lines {
			assert.Equal(t, strconv.Itoa(i+1), line)
		}
		assert.Equal(t, count, m.Lines())
	}
}

func TestMirrorSkipsIdenticalContent(t *testing.T) {
	display := &recordingDisplay{}
	m := NewMirror(display)

	m.Update(3)
	m.Update(3)
	assert.Equal(t, 1, display.pushes)

	m.Invalidate()
	m.Update(3)
	assert.Equal(t, 2, display.pushes)
}

func TestMirrorWidth(t *testing.T) {
	m := NewMirror(nil)
	m.Update(9)
	assert.Equal(t, 1, m.Width())
	m.Update(1234)
	assert.Equal(t, 4, m.Width())
}
