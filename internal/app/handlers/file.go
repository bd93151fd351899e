package handlers

import (
	"notepad/internal/commands"
	"notepad/internal/editor"
	"notepad/internal/logger"
)

type FileHandler struct {
	session *editor.Session
	logger  logger.Logger
}

func NewFileHandler(session *editor.Session, log logger.Logger) *FileHandler {
	return &FileHandler{session: session, logger: log}
}

func (h *FileHandler) HandleNew(commands.Event) {
	h.session.New()
}

func (h *FileHandler) HandleOpen(commands.Event) {
	h.session.Open()
}

func (h *FileHandler) HandleSave(commands.Event) {
	h.session.Save()
}

func (h *FileHandler) HandleSaveAs(commands.Event) {
	h.session.SaveAs()
}
