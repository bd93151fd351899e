package editor

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// Choice is the answer to the save-changes prompt.
type Choice int

const (
	ChoiceCancel Choice = iota
	ChoiceSave
	ChoiceDiscard
)

// Surface is the editable text region and the window around it.
type Surface interface {
	Text() string
	SetText(text string)
	SetTitle(title string)
}

// Prompter shows the modal dialogs. Every method answers through its callback;
// an empty path means the user cancelled.
type Prompter interface {
	AskSaveChanges(respond func(Choice))
	ChooseOpenPath(respond func(path string, err error))
	ChooseSavePath(suggested string, respond func(path string, err error))
	ShowError(err error)
}

// Files reads and writes whole documents.
type Files interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// DiskFiles is the Files implementation backed by the local file system.
type DiskFiles struct{}

func (DiskFiles) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (DiskFiles) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// decodeText accepts UTF-8 only.
func decodeText(path string, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}
	return string(data), nil
}
