package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchRunsBoundHandler(t *testing.T) {
	r := NewRegistry(nil)
	var got []Event
	r.Register(SetTheme, func(e Event) { got = append(got, e) })

	assert.True(t, r.Dispatch(Event{Command: SetTheme, Arg: "dark"}))
	r.Invoker(Event{Command: SetTheme, Arg: "light"})()

	assert.Equal(t, []Event{
		{Command: SetTheme, Arg: "dark"},
		{Command: SetTheme, Arg: "light"},
	}, got)
}

func TestDispatchUnboundCommand(t *testing.T) {
	r := NewRegistry(nil)
	assert.False(t, r.Dispatch(Event{Command: Quit}))
}

func TestRegisterReplaces(t *testing.T) {
	r := NewRegistry(nil)
	calls := ""
	r.Register(New, func(Event) { calls += "a" })
	r.Register(New, func(Event) { calls += "b" })

	r.Dispatch(Event{Command: New})

	assert.Equal(t, "b", calls)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		key  Key
		want ID
		ok   bool
	}{
		{Key{Name: "N", Ctrl: true}, New, true},
		{Key{Name: "O", Ctrl: true}, Open, true},
		{Key{Name: "S", Ctrl: true}, Save, true},
		{Key{Name: "S", Ctrl: true, Shift: true}, SaveAs, true},
		{Key{Name: "=", Ctrl: true}, IncreaseFont, true},
		{Key{Name: "+", Ctrl: true}, IncreaseFont, true},
		{Key{Name: "-", Ctrl: true}, DecreaseFont, true},
		{Key{Name: "S"}, 0, false},
		{Key{Name: "Q", Ctrl: true}, 0, false},
	}
	for _, tt := range tests {
		id, ok := Lookup(tt.key)
		assert.Equal(t, tt.ok, ok, "key %+v", tt.key)
		if tt.ok {
			assert.Equal(t, tt.want, id, "key %+v", tt.key)
		}
	}
}

func TestEveryBindingHasALabel(t *testing.T) {
	for _, b := range Bindings() {
		assert.NotEmpty(t, b.Label, b.Command.String())
		assert.NotEqual(t, "unknown", b.Command.String())
	}
}
