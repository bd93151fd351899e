package appearance

import (
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/flopp/go-findfont"

	"notepad/internal/logger"
)

// CommonFamilies are the families offered in the Font menu.
var CommonFamilies = []string{
	"Consolas", "Courier New", "Arial", "Helvetica", "Verdana",
	"Times New Roman", "Georgia", "Garamond", "Palatino", "Serif",
}

// knownFiles lists the usual file names of each family across Windows,
// macOS and common Linux font packages.
var knownFiles = map[string][]string{
	"consolas":        {"consola.ttf", "Consolas.ttf"},
	"courier new":     {"cour.ttf", "Courier New.ttf", "Courier_New.ttf"},
	"arial":           {"arial.ttf", "Arial.ttf"},
	"helvetica":       {"Helvetica.ttf", "helvetica.ttf"},
	"verdana":         {"verdana.ttf", "Verdana.ttf"},
	"times new roman": {"times.ttf", "Times New Roman.ttf", "Times_New_Roman.ttf"},
	"georgia":         {"georgia.ttf", "Georgia.ttf"},
	"garamond":        {"GARA.TTF", "Garamond.ttf", "EBGaramond-Regular.ttf"},
	"palatino":        {"pala.ttf", "Palatino.ttf"},
	"serif":           {"DejaVuSerif.ttf", "LiberationSerif-Regular.ttf", "NotoSerif-Regular.ttf"},
}

// FontFinder locates a font file by name; findfont.Find in production.
type FontFinder func(name string) (string, error)

// FontSource resolves family names to font resources and remembers the answer,
// including misses, since each lookup walks the system font directories.
type FontSource struct {
	find   FontFinder
	load   func(path string) (fyne.Resource, error)
	cache  map[string]fyne.Resource
	logger logger.Logger
}

func NewFontSource(log logger.Logger) *FontSource {
	return NewFontSourceWithFinder(findfont.Find, log)
}

func NewFontSourceWithFinder(find FontFinder, log logger.Logger) *FontSource {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &FontSource{
		find:   find,
		load:   fyne.LoadResourceFromPath,
		cache:  make(map[string]fyne.Resource),
		logger: log,
	}
}

// Resolve returns the font resource for family, or nil when no usable file
// exists; callers fall back to the toolkit's monospace font.
func (f *FontSource) Resolve(family string) fyne.Resource {
	key := strings.ToLower(strings.TrimSpace(family))
	if res, ok := f.cache[key]; ok {
		return res
	}

	var res fyne.Resource
	for _, name := range candidates(key, family) {
		path, err := f.find(name)
		if err != nil || !loadable(path) {
			continue
		}
		loaded, err := f.load(path)
		if err != nil {
			f.logger.Debug("Appearance", "font file unreadable", map[string]interface{}{
				"family": family,
				"path":   path,
				"error":  err.Error(),
			})
			continue
		}
		res = loaded
		f.logger.Debug("Appearance", "font resolved", map[string]interface{}{
			"family": family,
			"path":   path,
		})
		break
	}

	if res == nil {
		f.logger.Warning("Appearance", "font family not found, using monospace fallback", map[string]interface{}{
			"family": family,
		})
	}
	f.cache[key] = res
	return res
}

func candidates(key, family string) []string {
	names := append([]string{}, knownFiles[key]...)
	trimmed := strings.TrimSpace(family)
	if trimmed != "" {
		names = append(names, trimmed+".ttf", strings.ReplaceAll(trimmed, " ", "")+".ttf")
	}
	return names
}

// loadable rejects font collections, which the text renderer cannot use as a
// single face.
func loadable(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".ttf" || ext == ".otf"
}
