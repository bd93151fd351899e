// Package appearance turns the theme and font preferences into Fyne themes.
package appearance

import "notepad/internal/preferences"

// Variant is a resolved, concrete palette choice.
type Variant int

const (
	VariantLight Variant = iota
	VariantDark
)

func (v Variant) String() string {
	if v == VariantDark {
		return "dark"
	}
	return "light"
}

// Resolve maps a theme preference to a variant. "system" consults the
// platform signal and falls back to light when it is unavailable or fails.
func Resolve(mode string, signal Signal) Variant {
	switch mode {
	case preferences.ThemeDark:
		return VariantDark
	case preferences.ThemeSystem:
		if signal == nil || !signal.Available() {
			return VariantLight
		}
		dark, err := signal.PrefersDark()
		if err != nil || !dark {
			return VariantLight
		}
		return VariantDark
	default:
		return VariantLight
	}
}
