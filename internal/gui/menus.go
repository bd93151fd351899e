package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"notepad/internal/appearance"
	"notepad/internal/commands"
)

// BindCommands builds the main menu from the command table and registers
// every keyboard shortcut with both the window and the document entry.
func (m *Manager) BindCommands(registry *commands.Registry) {
	m.commands = registry
	m.window.SetMainMenu(m.buildMainMenu(registry))

	canvas := m.window.Canvas()
	for _, binding := range commands.Bindings() {
		event := commands.Event{Command: binding.Command}
		for _, key := range binding.Keys {
			canvas.AddShortcut(shortcutFor(key), func(fyne.Shortcut) {
				registry.Dispatch(event)
			})
		}
	}

	m.logger.Debug("GUIManager", "commands bound", map[string]interface{}{
		"bindings": len(commands.Bindings()),
	})
}

func (m *Manager) buildMainMenu(registry *commands.Registry) *fyne.MainMenu {
	fileItems := make([]*fyne.MenuItem, 0, len(commands.FileMenu)+2)
	for _, binding := range commands.FileMenu {
		fileItems = append(fileItems, menuItemFor(registry, binding))
	}
	quit := fyne.NewMenuItem("Quit", registry.Invoker(commands.Event{Command: commands.Quit}))
	quit.IsQuit = true
	fileItems = append(fileItems, fyne.NewMenuItemSeparator(), quit)

	fontItems := make([]*fyne.MenuItem, 0, len(appearance.CommonFamilies))
	for _, family := range appearance.CommonFamilies {
		fontItems = append(fontItems, fyne.NewMenuItem(family,
			registry.Invoker(commands.Event{Command: commands.SetFont, Arg: family})))
	}
	fontMenu := fyne.NewMenuItem("Font", nil)
	fontMenu.ChildMenu = fyne.NewMenu("", fontItems...)

	themeItems := make([]*fyne.MenuItem, 0, len(commands.ThemeChoices))
	for _, choice := range commands.ThemeChoices {
		themeItems = append(themeItems, fyne.NewMenuItem(choice.Label,
			registry.Invoker(commands.Event{Command: commands.SetTheme, Arg: choice.Mode})))
	}
	themeMenu := fyne.NewMenuItem("Theme", nil)
	themeMenu.ChildMenu = fyne.NewMenu("", themeItems...)

	viewItems := []*fyne.MenuItem{fontMenu, themeMenu, fyne.NewMenuItemSeparator()}
	for _, binding := range commands.ViewMenu {
		viewItems = append(viewItems, menuItemFor(registry, binding))
	}

	return fyne.NewMainMenu(
		fyne.NewMenu("File", fileItems...),
		fyne.NewMenu("View", viewItems...),
	)
}

func menuItemFor(registry *commands.Registry, binding commands.Binding) *fyne.MenuItem {
	item := fyne.NewMenuItem(binding.Label, registry.Invoker(commands.Event{Command: binding.Command}))
	if len(binding.Keys) > 0 {
		item.Shortcut = shortcutFor(binding.Keys[0])
	}
	return item
}

func shortcutFor(key commands.Key) *desktop.CustomShortcut {
	modifier := fyne.KeyModifier(0)
	if key.Ctrl {
		modifier |= fyne.KeyModifierShortcutDefault
	}
	if key.Shift {
		modifier |= fyne.KeyModifierShift
	}
	return &desktop.CustomShortcut{KeyName: fyne.KeyName(key.Name), Modifier: modifier}
}

// handleShortcut maps shortcuts typed into the focused entry onto commands.
func (m *Manager) handleShortcut(shortcut fyne.Shortcut) bool {
	if m.commands == nil {
		return false
	}
	custom, ok := shortcut.(*desktop.CustomShortcut)
	if !ok {
		return false
	}

	key := commands.Key{
		Name:  string(custom.KeyName),
		Ctrl:  custom.Modifier&(fyne.KeyModifierControl|fyne.KeyModifierSuper) != 0,
		Shift: custom.Modifier&fyne.KeyModifierShift != 0,
	}
	id, ok := commands.Lookup(key)
	if !ok {
		return false
	}
	return m.commands.Dispatch(commands.Event{Command: id})
}
