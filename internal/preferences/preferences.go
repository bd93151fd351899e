// Package preferences holds the persisted window, font and theme settings.
package preferences

import (
	"errors"
	"fmt"
)

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"

	DefaultWidth      = 800
	DefaultHeight     = 600
	DefaultFontSize   = 12
	DefaultFontFamily = "Consolas"
	DefaultTheme      = ThemeSystem

	MinFontSize = 1
)

var ErrUnknownTheme = errors.New("unknown theme")

type Preferences struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	FontSize   int    `json:"font_size"`
	FontFamily string `json:"font_family"`
	Theme      string `json:"theme"`
}

func Defaults() Preferences {
	return Preferences{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		FontSize:   DefaultFontSize,
		FontFamily: DefaultFontFamily,
		Theme:      DefaultTheme,
	}
}

func ValidTheme(theme string) bool {
	switch theme {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// IncreaseFont grows the font size by one point. There is no ceiling.
func (p *Preferences) IncreaseFont() {
	p.FontSize++
}

// DecreaseFont shrinks the font size by one point and reports whether it changed.
func (p *Preferences) DecreaseFont() bool {
	if p.FontSize <= MinFontSize {
		return false
	}
	p.FontSize--
	return true
}

func (p *Preferences) SetFontFamily(family string) {
	p.FontFamily = family
}

func (p *Preferences) SetTheme(theme string) error {
	if !ValidTheme(theme) {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, theme)
	}
	p.Theme = theme
	return nil
}

// SetWindowSize records the window size; non-positive dimensions are ignored.
func (p *Preferences) SetWindowSize(width, height int) {
	if width > 0 {
		p.Width = width
	}
	if height > 0 {
		p.Height = height
	}
}
