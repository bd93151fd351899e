package appearance

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// EditorTheme applies a palette, font and text size on top of the default
// Fyne theme. The same type serves the window chrome, the document and the
// gutter; Region selects which colors are used.
type EditorTheme struct {
	base     fyne.Theme
	variant  Variant
	palette  Palette
	region   Region
	font     fyne.Resource
	textSize float32
}

type Region int

const (
	RegionChrome Region = iota
	RegionDocument
	RegionGutter
)

// NewEditorTheme builds a theme for region. A nil font keeps the default
// monospace face; a textSize of zero keeps the default size.
func NewEditorTheme(variant Variant, region Region, font fyne.Resource, textSize float32) *EditorTheme {
	return &EditorTheme{
		base:     theme.DefaultTheme(),
		variant:  variant,
		palette:  PaletteFor(variant),
		region:   region,
		font:     font,
		textSize: textSize,
	}
}

func (t *EditorTheme) Variant() Variant {
	return t.variant
}

func (t *EditorTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	bg, fg := t.palette.Background, t.palette.Foreground
	if t.region == RegionGutter {
		bg, fg = t.palette.GutterBackground, t.palette.GutterForeground
	}

	switch name {
	case theme.ColorNameBackground, theme.ColorNameInputBackground:
		return bg
	case theme.ColorNameForeground:
		return fg
	case theme.ColorNameDisabled:
		if t.region == RegionGutter {
			return fg
		}
	case theme.ColorNamePrimary:
		if t.region != RegionChrome {
			return t.palette.Cursor
		}
	case theme.ColorNameSeparator:
		return t.palette.Separator
	}
	return t.base.Color(name, t.fyneVariant())
}

func (t *EditorTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.region == RegionChrome || style.Symbol {
		return t.base.Font(style)
	}
	if t.font != nil {
		return t.font
	}
	return t.base.Font(fyne.TextStyle{Monospace: true})
}

func (t *EditorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *EditorTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText && t.textSize > 0 && t.region != RegionChrome {
		return t.textSize
	}
	return t.base.Size(name)
}

func (t *EditorTheme) fyneVariant() fyne.ThemeVariant {
	if t.variant == VariantDark {
		return theme.VariantDark
	}
	return theme.VariantLight
}
