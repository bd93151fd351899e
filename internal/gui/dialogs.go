package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"notepad/internal/editor"
	"notepad/internal/logger"
)

const fileDialogScale = 0.8

// Dialogs implements editor.Prompter with Fyne's modal dialogs. It is also
// the session's editor.Files: the save picker hands back an open writer for
// the chosen file, and the next write to that path goes through it.
type Dialogs struct {
	window  fyne.Window
	files   editor.Files
	logger  logger.Logger
	pending fyne.URIWriteCloser
}

func NewDialogs(window fyne.Window, log logger.Logger) *Dialogs {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Dialogs{window: window, files: editor.DiskFiles{}, logger: log}
}

// AskSaveChanges offers Save, Don't Save and Cancel. Dismissing the dialog
// any other way counts as Cancel.
func (d *Dialogs) AskSaveChanges(respond func(editor.Choice)) {
	choice := editor.ChoiceCancel
	message := widget.NewLabel("Do you want to save changes?")
	dlg := dialog.NewCustomWithoutButtons("Unsaved Changes", message, d.window)

	answer := func(c editor.Choice) func() {
		return func() {
			choice = c
			dlg.Hide()
		}
	}
	save := widget.NewButton("Save", answer(editor.ChoiceSave))
	save.Importance = widget.HighImportance

	dlg.SetButtons([]fyne.CanvasObject{
		widget.NewButton("Cancel", answer(editor.ChoiceCancel)),
		widget.NewButton("Don't Save", answer(editor.ChoiceDiscard)),
		save,
	})
	dlg.SetOnClosed(func() {
		d.logger.Debug("Dialogs", "save changes answered", map[string]interface{}{
			"choice": int(choice),
		})
		respond(choice)
	})
	dlg.Show()
}

func (d *Dialogs) ChooseOpenPath(respond func(path string, err error)) {
	dlg := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			respond("", err)
			return
		}
		if reader == nil {
			respond("", nil)
			return
		}

		path := reader.URI().Path()
		if closeErr := reader.Close(); closeErr != nil {
			d.logger.Warning("Dialogs", "closing picked file failed", map[string]interface{}{
				"path":  path,
				"error": closeErr.Error(),
			})
		}
		respond(path, nil)
	}, d.window)

	d.fit(dlg)
	dlg.Show()
}

// ChooseSavePath asks for a destination. Fyne opens, and so truncates, the
// chosen file as the dialog closes; the writer is kept for WriteFile.
func (d *Dialogs) ChooseSavePath(suggested string, respond func(path string, err error)) {
	d.dropPending()

	dlg := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			respond("", err)
			return
		}
		if writer == nil {
			respond("", nil)
			return
		}

		d.pending = writer
		respond(writer.URI().Path(), nil)
	}, d.window)

	dlg.SetFileName(suggested)
	d.fit(dlg)
	dlg.Show()
}

func (d *Dialogs) ReadFile(path string) ([]byte, error) {
	return d.files.ReadFile(path)
}

// WriteFile writes through the writer of the last save picker when it was
// opened for path, and through the file system otherwise.
func (d *Dialogs) WriteFile(path string, data []byte) error {
	writer := d.pending
	if writer == nil || writer.URI().Path() != path {
		d.dropPending()
		return d.files.WriteFile(path, data)
	}
	d.pending = nil

	_, err := writer.Write(data)
	if closeErr := writer.Close(); err == nil {
		err = closeErr
	}
	return err
}

func (d *Dialogs) dropPending() {
	if d.pending == nil {
		return
	}
	path := d.pending.URI().Path()
	if err := d.pending.Close(); err != nil {
		d.logger.Warning("Dialogs", "closing unused save target failed", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}
	d.pending = nil
}

func (d *Dialogs) ShowError(err error) {
	dialog.ShowError(err, d.window)
}

func (d *Dialogs) fit(dlg *dialog.FileDialog) {
	size := d.window.Canvas().Size()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	dlg.Resize(fyne.NewSize(size.Width*fileDialogScale, size.Height*fileDialogScale))
}
