// Package gutter keeps the read-only line-number pane in step with the
// document: its content and its vertical scroll position.
package gutter

import (
	"strconv"
	"strings"
)

// Display receives the mirror's rendered text. Implementations are read-only
// to the user.
type Display interface {
	SetText(text string)
}

// LineCount returns the number of lines in text. An empty text still has one line.
func LineCount(text string) int {
	return strings.Count(text, "\n") + 1
}

// Numbers renders 1..count, one per line, without a trailing newline.
func Numbers(count int) string {
	if count < 1 {
		return ""
	}
	var b strings.Builder
	b.Grow(count * (len(strconv.Itoa(count)) + 1))
	for i := 1; i <= count; i++ {
		if i > 1 {
			b.WriteByte('\n')
		}
		b.WriteString(strconv.Itoa(i))
	}
	return b.String()
}

type Mirror struct {
	display Display
	count   int
	text    string
}

func NewMirror(display Display) *Mirror {
	return &Mirror{display: display}
}

// Update replaces the mirror's content with 1..count. Counts below one are
// treated as one, matching an empty document.
func (m *Mirror) Update(count int) {
	if count < 1 {
		count = 1
	}
	if count == m.count && m.text != "" {
		return
	}
	m.count = count
	m.text = Numbers(count)
	if m.display != nil {
		m.display.SetText(m.text)
	}
}

// Sync recomputes the mirror from the document text.
func (m *Mirror) Sync(text string) {
	m.Update(LineCount(text))
}

func (m *Mirror) Lines() int {
	return m.count
}

func (m *Mirror) Text() string {
	return m.text
}

// Width returns the number of digits of the largest line number.
func (m *Mirror) Width() int {
	if m.count < 1 {
		return 1
	}
	return len(strconv.Itoa(m.count))
}

// Invalidate forces the next Update to push content even if the count is
// unchanged, e.g. after the display was rebuilt for a new font.
func (m *Mirror) Invalidate() {
	m.count = 0
	m.text = ""
}
