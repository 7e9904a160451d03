package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sssh/pkg/config"
)

var allKeys = []string{"up", "down", "left", "right", "enter", "backspace", "esc", "tab", "q", "e", "r", "x", "j", "k"}

func TestResolve_Navigation(t *testing.T) {
	keys := DefaultKeyMap()
	sel := NewSelection(alphaBeta())

	cases := map[string]Action{
		"up":        ActionUp,
		"down":      ActionDown,
		"left":      ActionLeft,
		"backspace": ActionLeft,
		"right":     ActionRight,
		"enter":     ActionRight,
		"q":         ActionQuit,
		"e":         ActionEdit,
		"r":         ActionReload,
		"x":         ActionIgnored,
		"esc":       ActionIgnored,
	}
	for k, want := range cases {
		assert.Equal(t, want, keys.Resolve(press(k), &sel, false), k)
	}
}

func TestResolve_EnterConfirmsInUsernamePanel(t *testing.T) {
	keys := DefaultKeyMap()
	sel := NewSelection(alphaBeta())
	sel.EnterUsernames()

	assert.Equal(t, ActionConfirm, keys.Resolve(press("enter"), &sel, false))
	assert.Equal(t, ActionConfirm, keys.Resolve(press("enter"), &sel, true))
	assert.Equal(t, ActionRight, keys.Resolve(press("right"), &sel, false))
}

func TestResolve_OverlayIgnoresAllButGlobalKeys(t *testing.T) {
	keys := DefaultKeyMap()
	sel := NewSelection(alphaBeta())

	for _, k := range allKeys {
		got := keys.Resolve(press(k), &sel, true)
		switch k {
		case "q":
			assert.Equal(t, ActionQuit, got)
		case "e":
			assert.Equal(t, ActionEdit, got)
		case "r":
			assert.Equal(t, ActionReload, got)
		default:
			assert.Equal(t, ActionIgnored, got, k)
		}
	}
}

func TestResolve_EmptyListIgnoresNavigation(t *testing.T) {
	keys := DefaultKeyMap()
	sel := NewSelection(config.Empty("x.toml"))

	for _, k := range []string{"up", "down", "left", "right", "enter", "backspace"} {
		assert.Equal(t, ActionIgnored, keys.Resolve(press(k), &sel, false), k)
	}
	assert.Equal(t, ActionQuit, keys.Resolve(press("q"), &sel, false))
}

func TestKeyMap_BindingsInFooterOrder(t *testing.T) {
	var got []string
	for _, b := range DefaultKeyMap().Bindings() {
		got = append(got, b.Binding.Help().Key)
	}
	assert.Equal(t, []string{"Up", "Down", "Left", "Right", "q", "e", "r", "Enter"}, got)
}
