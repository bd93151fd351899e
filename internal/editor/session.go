package editor

import (
	"errors"
	"fmt"

	"notepad/internal/logger"
)

var ErrInvalidEncoding = errors.New("file is not valid UTF-8 text")

// Session drives the file operations for the single open document.
type Session struct {
	doc      Document
	surface  Surface
	prompter Prompter
	files    Files
	logger   logger.Logger

	// OnTextReplaced runs after the buffer was replaced by New or Open.
	OnTextReplaced func(text string)
}

func NewSession(surface Surface, prompter Prompter, files Files, log logger.Logger) *Session {
	if files == nil {
		files = DiskFiles{}
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Session{
		surface:  surface,
		prompter: prompter,
		files:    files,
		logger:   log,
	}
}

func (s *Session) Document() *Document {
	return &s.doc
}

// MarkModified records a user edit.
func (s *Session) MarkModified() {
	s.doc.modified = true
}

// New clears the document, offering to save pending changes first.
func (s *Session) New() {
	if !s.doc.modified {
		s.reset()
		return
	}

	s.prompter.AskSaveChanges(func(choice Choice) {
		switch choice {
		case ChoiceSave:
			s.save(func(saved bool) {
				if saved {
					s.reset()
				}
			})
		case ChoiceDiscard:
			s.reset()
		default:
			s.logger.Debug("Session", "new document cancelled", nil)
		}
	})
}

// Open replaces the document with a file chosen by the user.
func (s *Session) Open() {
	s.prompter.ChooseOpenPath(func(path string, err error) {
		if err != nil {
			s.fail("open dialog", err)
			return
		}
		if path == "" {
			return
		}
		s.OpenPath(path)
	})
}

// OpenPath loads path into the buffer. On failure nothing changes.
func (s *Session) OpenPath(path string) bool {
	data, err := s.files.ReadFile(path)
	if err != nil {
		s.fail("open", err)
		return false
	}
	text, err := decodeText(path, data)
	if err != nil {
		s.fail("open", err)
		return false
	}

	s.doc.path = path
	s.replaceText(text)
	s.doc.modified = false
	s.surface.SetTitle(s.doc.Title())

	s.logger.Info("Session", "file opened", map[string]interface{}{
		"path":  path,
		"bytes": len(data),
	})
	return true
}

// Save writes the buffer to the current path, asking for one if there is none.
func (s *Session) Save() {
	s.save(nil)
}

// SaveAs asks for a destination, adopts it as the current path and saves.
func (s *Session) SaveAs() {
	s.saveAs(nil)
}

func (s *Session) save(done func(saved bool)) {
	if s.doc.path == "" {
		s.saveAs(done)
		return
	}
	ok := s.write()
	if done != nil {
		done(ok)
	}
}

func (s *Session) saveAs(done func(saved bool)) {
	s.prompter.ChooseSavePath(DefaultFileName, func(path string, err error) {
		if err != nil {
			s.fail("save dialog", err)
			if done != nil {
				done(false)
			}
			return
		}
		if path == "" {
			if done != nil {
				done(false)
			}
			return
		}

		s.doc.path = path
		ok := s.write()
		s.surface.SetTitle(s.doc.Title())
		if done != nil {
			done(ok)
		}
	})
}

func (s *Session) write() bool {
	text := s.surface.Text()
	if err := s.files.WriteFile(s.doc.path, []byte(text)); err != nil {
		s.fail("save", err)
		return false
	}
	s.doc.modified = false

	s.logger.Info("Session", "file saved", map[string]interface{}{
		"path":  s.doc.path,
		"bytes": len(text),
	})
	return true
}

func (s *Session) reset() {
	s.doc.path = ""
	s.replaceText("")
	s.doc.modified = false
	s.surface.SetTitle(BaseTitle)
}

func (s *Session) replaceText(text string) {
	s.surface.SetText(text)
	if s.OnTextReplaced != nil {
		s.OnTextReplaced(text)
	}
}

func (s *Session) fail(op string, err error) {
	s.logger.Error("Session", fmt.Errorf("%s: %w", op, err), map[string]interface{}{
		"path": s.doc.path,
	})
	s.prompter.ShowError(err)
}
