package preferences

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"notepad/internal/logger"
)

const FileName = "config.json"

// Store reads and writes the preferences record. Neither direction is fatal:
// Load falls back to defaults and Save swallows write failures.
type Store struct {
	path   string
	logger logger.Logger
}

func NewStore(path string, log logger.Logger) *Store {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Store{path: path, logger: log}
}

// DefaultPath places the preferences file next to the executable, or in the
// working directory when the executable cannot be located.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return FileName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), FileName)
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Load() Preferences {
	prefs := Defaults()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Debug("PreferencesStore", "preferences unreadable, using defaults", map[string]interface{}{
				"path":  s.path,
				"error": err.Error(),
			})
		}
		return prefs
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Debug("PreferencesStore", "preferences unparseable, using defaults", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
		return prefs
	}

	decodeInt(raw, "width", &prefs.Width)
	decodeInt(raw, "height", &prefs.Height)
	decodeInt(raw, "font_size", &prefs.FontSize)
	decodeString(raw, "font_family", &prefs.FontFamily)
	decodeString(raw, "theme", &prefs.Theme)

	if !ValidTheme(prefs.Theme) {
		prefs.Theme = DefaultTheme
	}

	s.logger.Debug("PreferencesStore", "preferences loaded", map[string]interface{}{
		"path":  s.path,
		"theme": prefs.Theme,
	})
	return prefs
}

func (s *Store) Save(prefs Preferences) {
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		s.logger.Warning("PreferencesStore", "preferences not encoded", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.logger.Warning("PreferencesStore", "preferences not saved", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
		return
	}

	s.logger.Debug("PreferencesStore", "preferences saved", map[string]interface{}{
		"path": s.path,
	})
}

// decodeInt overwrites dst only when key holds a positive integer.
func decodeInt(raw map[string]json.RawMessage, key string, dst *int) {
	value, ok := raw[key]
	if !ok {
		return
	}
	var n int
	if err := json.Unmarshal(value, &n); err != nil || n <= 0 {
		return
	}
	*dst = n
}

// decodeString overwrites dst only when key holds a non-empty string.
func decodeString(raw map[string]json.RawMessage, key string, dst *string) {
	value, ok := raw[key]
	if !ok {
		return
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil || s == "" {
		return
	}
	*dst = s
}
