// Package commands is the single table of user commands: menu labels,
// keyboard shortcuts and the handlers bound to them.
package commands

type ID int

const (
	New ID = iota
	Open
	Save
	SaveAs
	IncreaseFont
	DecreaseFont
	SetFont
	SetTheme
	Quit
)

func (id ID) String() string {
	switch id {
	case New:
		return "new"
	case Open:
		return "open"
	case Save:
		return "save"
	case SaveAs:
		return "save-as"
	case IncreaseFont:
		return "increase-font"
	case DecreaseFont:
		return "decrease-font"
	case SetFont:
		return "set-font"
	case SetTheme:
		return "set-theme"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is one invocation of a command. Arg carries the font family for
// SetFont and the theme mode for SetTheme.
type Event struct {
	Command ID
	Arg     string
}

// Key is a keyboard chord. Name uses Fyne key names ("N", "=", "-").
type Key struct {
	Name  string
	Ctrl  bool
	Shift bool
}

// Binding ties a command to its menu label and shortcuts.
type Binding struct {
	Command ID
	Label   string
	Keys    []Key
}

var FileMenu = []Binding{
	{Command: New, Label: "New", Keys: []Key{{Name: "N", Ctrl: true}}},
	{Command: Open, Label: "Open...", Keys: []Key{{Name: "O", Ctrl: true}}},
	{Command: Save, Label: "Save", Keys: []Key{{Name: "S", Ctrl: true}}},
	{Command: SaveAs, Label: "Save As...", Keys: []Key{{Name: "S", Ctrl: true, Shift: true}}},
}

var ViewMenu = []Binding{
	{Command: IncreaseFont, Label: "Increase Font Size", Keys: []Key{{Name: "=", Ctrl: true}, {Name: "=", Ctrl: true, Shift: true}, {Name: "+", Ctrl: true}}},
	{Command: DecreaseFont, Label: "Decrease Font Size", Keys: []Key{{Name: "-", Ctrl: true}}},
}

// ThemeChoices are the Theme submenu entries, label then mode.
var ThemeChoices = []struct {
	Label string
	Mode  string
}{
	{"Light", "light"},
	{"Dark", "dark"},
	{"System", "system"},
}

// Bindings returns every binding that has keyboard shortcuts.
func Bindings() []Binding {
	all := make([]Binding, 0, len(FileMenu)+len(ViewMenu))
	all = append(all, FileMenu...)
	all = append(all, ViewMenu...)
	return all
}

// Lookup finds the command bound to key.
func Lookup(key Key) (ID, bool) {
	for _, b := range Bindings() {
		for _, k := range b.Keys {
			if k == key {
				return b.Command, true
			}
		}
	}
	return 0, false
}
