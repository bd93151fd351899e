package gui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bufferWriter struct {
	bytes.Buffer
	uri    fyne.URI
	closed int
}

func (w *bufferWriter) URI() fyne.URI { return w.uri }
func (w *bufferWriter) Close() error  { w.closed++; return nil }

func TestWriteFileUsesPickedWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	writer := &bufferWriter{uri: storage.NewFileURI(path)}
	d := NewDialogs(nil, nil)
	d.pending = writer

	require.NoError(t, d.WriteFile(path, []byte("hello")))

	assert.Equal(t, "hello", writer.String())
	assert.Equal(t, 1, writer.closed)
	assert.Nil(t, d.pending)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteFileFallsBackToDisk(t *testing.T) {
	dir := t.TempDir()
	picked := &bufferWriter{uri: storage.NewFileURI(filepath.Join(dir, "other.txt"))}
	d := NewDialogs(nil, nil)
	d.pending = picked

	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, d.WriteFile(path, []byte("on disk")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "on disk", string(data))
	assert.Equal(t, 1, picked.closed)
	assert.Zero(t, picked.Len())
	assert.Nil(t, d.pending)
}

func TestReadFileReadsDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("text"), 0o644))

	data, err := NewDialogs(nil, nil).ReadFile(path)

	require.NoError(t, err)
	assert.Equal(t, "text", string(data))
}
