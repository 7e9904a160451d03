package selector

import "strings"

// Action is the meaning of one key press.
type Action int

const (
	ActionIgnored Action = iota
	ActionQuit
	ActionEdit
	ActionReload
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionEdit:
		return "edit"
	case ActionReload:
		return "reload"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionConfirm:
		return "confirm"
	default:
		return "ignored"
	}
}

// ActionSet is a set over the closed list of actions above.
type ActionSet uint16

// alwaysEnabled never depend on the server list.
const alwaysEnabled = ActionSet(1<<ActionQuit | 1<<ActionEdit | 1<<ActionReload)

// navigation needs at least one server.
const navigation = ActionSet(1<<ActionUp | 1<<ActionDown | 1<<ActionLeft | 1<<ActionRight | 1<<ActionConfirm)

// NewActionSet returns a set holding actions.
func NewActionSet(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool {
	return a != ActionIgnored && s&(1<<a) != 0
}

// With returns the set plus a.
func (s ActionSet) With(a Action) ActionSet {
	if a == ActionIgnored {
		return s
	}
	return s | 1<<a
}

func (s ActionSet) String() string {
	var names []string
	for a := ActionQuit; a <= ActionConfirm; a++ {
		if s.Has(a) {
			names = append(names, a.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}
