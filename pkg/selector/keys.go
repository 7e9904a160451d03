package selector

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap lists every binding the picker understands, in footer order.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Quit    key.Binding
	Edit    key.Binding
	Reload  key.Binding
	Confirm key.Binding
}

// DefaultKeyMap returns the fixed bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("Up", "Previous server/username"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("Down", "Next server/username"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "backspace"),
			key.WithHelp("Left", "Choose from servers"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "enter"),
			key.WithHelp("Right", "Choose from usernames"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Edit config file"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload config file"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Choose"),
		),
	}
}

// Bindings pairs each binding with its action, in footer order.
func (k KeyMap) Bindings() []ActionBinding {
	return []ActionBinding{
		{ActionUp, k.Up},
		{ActionDown, k.Down},
		{ActionLeft, k.Left},
		{ActionRight, k.Right},
		{ActionQuit, k.Quit},
		{ActionEdit, k.Edit},
		{ActionReload, k.Reload},
		{ActionConfirm, k.Confirm},
	}
}

// ActionBinding ties a footer entry to the action it triggers.
type ActionBinding struct {
	Action  Action
	Binding key.Binding
}

// Resolve maps one key press to an action.
//
// q, e and r always work. Enter confirms while the username panel has focus, even
// with an overlay shown. Everything else is ignored under an overlay, and
// directional keys are ignored unless the selection enables them.
func (k KeyMap) Resolve(msg tea.KeyMsg, sel *Selection, overlay bool) Action {
	switch {
	case key.Matches(msg, k.Quit):
		return ActionQuit
	case key.Matches(msg, k.Edit):
		return ActionEdit
	case key.Matches(msg, k.Reload):
		return ActionReload
	}

	if key.Matches(msg, k.Confirm) && sel.Focus() == PanelUsernames {
		return gate(ActionConfirm, sel)
	}
	if overlay {
		return ActionIgnored
	}

	switch {
	case key.Matches(msg, k.Up):
		return gate(ActionUp, sel)
	case key.Matches(msg, k.Down):
		return gate(ActionDown, sel)
	case key.Matches(msg, k.Left):
		return gate(ActionLeft, sel)
	case key.Matches(msg, k.Right):
		return gate(ActionRight, sel)
	}
	return ActionIgnored
}

func gate(a Action, sel *Selection) Action {
	if !sel.Enabled().Has(a) {
		return ActionIgnored
	}
	return a
}
