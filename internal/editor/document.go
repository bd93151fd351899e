// Package editor implements the document state and the New/Open/Save/Save As
// flows on top of toolkit-neutral capabilities.
package editor

import (
	"fmt"
	"path/filepath"
)

const (
	BaseTitle       = "Notepad"
	DefaultFileName = "untitled"
)

// State names the file-operation states of a document.
type State int

const (
	StateNoFile State = iota
	StateUnsavedNew
	StateNamedUnsaved
	StateNamedSaved
)

func (s State) String() string {
	switch s {
	case StateNoFile:
		return "no-file"
	case StateUnsavedNew:
		return "unsaved-new"
	case StateNamedUnsaved:
		return "named-unsaved"
	case StateNamedSaved:
		return "named-saved"
	default:
		return "unknown"
	}
}

// Document is the in-memory state of the file being edited. The text itself
// lives in the Surface.
type Document struct {
	path     string
	modified bool
}

func (d *Document) Path() string {
	return d.path
}

func (d *Document) Modified() bool {
	return d.modified
}

func (d *Document) State() State {
	switch {
	case d.path == "" && !d.modified:
		return StateNoFile
	case d.path == "":
		return StateUnsavedNew
	case d.modified:
		return StateNamedUnsaved
	default:
		return StateNamedSaved
	}
}

// Title is the window title for the document.
func (d *Document) Title() string {
	if d.path == "" {
		return BaseTitle
	}
	return fmt.Sprintf("%s - %s", BaseTitle, filepath.Base(d.path))
}
