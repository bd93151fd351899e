package appearance

import (
	"fyne.io/fyne/v2"

	"notepad/internal/logger"
	"notepad/internal/preferences"
)

// Themes is the full set applied to the window for one preferences snapshot.
type Themes struct {
	Variant  Variant
	Palette  Palette
	Chrome   *EditorTheme
	Document *EditorTheme
	Gutter   *EditorTheme
}

type Builder struct {
	fonts  *FontSource
	signal Signal
	logger logger.Logger
}

func NewBuilder(fonts *FontSource, signal Signal, log logger.Logger) *Builder {
	if signal == nil {
		signal = Unavailable{}
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Builder{fonts: fonts, signal: signal, logger: log}
}

func (b *Builder) Build(prefs preferences.Preferences) Themes {
	variant := Resolve(prefs.Theme, b.signal)

	font := b.resolveFont(prefs.FontFamily)
	size := float32(prefs.FontSize)

	b.logger.Debug("Appearance", "themes built", map[string]interface{}{
		"mode":      prefs.Theme,
		"variant":   variant.String(),
		"family":    prefs.FontFamily,
		"font_size": prefs.FontSize,
	})

	return Themes{
		Variant:  variant,
		Palette:  PaletteFor(variant),
		Chrome:   NewEditorTheme(variant, RegionChrome, nil, 0),
		Document: NewEditorTheme(variant, RegionDocument, font, size),
		Gutter:   NewEditorTheme(variant, RegionGutter, font, size),
	}
}

func (b *Builder) resolveFont(family string) fyne.Resource {
	if b.fonts == nil {
		return nil
	}
	return b.fonts.Resolve(family)
}
