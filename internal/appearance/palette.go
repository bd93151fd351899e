package appearance

import "image/color"

type Palette struct {
	Background       color.Color
	Foreground       color.Color
	Cursor           color.Color
	GutterBackground color.Color
	GutterForeground color.Color
	Separator        color.Color
}

var (
	LightPalette = Palette{
		Background:       color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Foreground:       color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		Cursor:           color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		GutterBackground: color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff},
		GutterForeground: color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		Separator:        color.NRGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff},
	}

	DarkPalette = Palette{
		Background:       color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff},
		Foreground:       color.NRGBA{R: 0xd4, G: 0xd4, B: 0xd4, A: 0xff},
		Cursor:           color.NRGBA{R: 0xd4, G: 0xd4, B: 0xd4, A: 0xff},
		GutterBackground: color.NRGBA{R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff},
		GutterForeground: color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
		Separator:        color.NRGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff},
	}
)

func PaletteFor(v Variant) Palette {
	if v == VariantDark {
		return DarkPalette
	}
	return LightPalette
}
