package selector

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"sssh/pkg/config"
)

// OutcomeKind is how one interactive pass ended.
type OutcomeKind int

const (
	// OutcomeStop ends the session successfully.
	OutcomeStop OutcomeKind = iota
	// OutcomeEdit asks for the configuration file to be edited.
	OutcomeEdit
	// OutcomeReload asks for the configuration file to be parsed again.
	OutcomeReload
	// OutcomeChosen carries the confirmed server and username.
	OutcomeChosen
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeEdit:
		return "edit"
	case OutcomeReload:
		return "reload"
	case OutcomeChosen:
		return "chosen"
	default:
		return "stop"
	}
}

// Outcome is the terminal result of a Picker.
type Outcome struct {
	Kind     OutcomeKind
	Server   config.Server
	Username string
}

// errNoUsername means Confirm was resolved without a highlighted username.
// The resolver gates Confirm so this only happens on a programming error.
var errNoUsername = errors.New("confirm without a highlighted username")

// Picker is the bubbletea model of one interactive pass.
// It draws with Render and stops the program as soon as an outcome is known.
type Picker struct {
	title  string
	keys   KeyMap
	theme  Theme
	cfg    *config.Config
	sel    Selection
	err    string
	width  int
	height int

	done    bool
	outcome Outcome
	fault   error
}

// NewPicker builds a picker over cfg. A non-empty overlay replaces the panels and
// disables navigation until the next load.
func NewPicker(title string, cfg *config.Config, overlay string, theme Theme) Picker {
	return Picker{
		title: title,
		keys:  DefaultKeyMap(),
		theme: theme,
		cfg:   cfg,
		sel:   NewSelection(cfg),
		err:   overlay,
	}
}

// Selection returns the current selection state.
func (p Picker) Selection() Selection { return p.sel }

// Overlay returns the error text shown instead of the panels.
func (p Picker) Overlay() string { return p.err }

// Done reports whether an outcome was produced.
func (p Picker) Done() bool { return p.done }

// Outcome returns the result of the pass. A picker that never finished stops.
func (p Picker) Outcome() (Outcome, error) {
	if p.fault != nil {
		return Outcome{}, p.fault
	}
	if !p.done {
		return Outcome{Kind: OutcomeStop}, nil
	}
	return p.outcome, nil
}

func (p Picker) Init() tea.Cmd {
	return nil
}

func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height
		return p, nil
	case tea.KeyMsg:
		if p.done {
			return p, nil
		}
		return p.handleKey(msg)
	}
	return p, nil
}

func (p Picker) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := p.keys.Resolve(msg, &p.sel, p.err != "")
	log.Debug("Key pressed", "key", msg.String(), "action", action)

	switch action {
	case ActionIgnored:
		return p, nil
	case ActionQuit:
		return p.finish(Outcome{Kind: OutcomeStop})
	case ActionEdit:
		return p.finish(Outcome{Kind: OutcomeEdit})
	case ActionReload:
		return p.finish(Outcome{Kind: OutcomeReload})
	case ActionConfirm:
		srv, user, ok := p.sel.Chosen()
		if !ok {
			p.fault = errNoUsername
			p.done = true
			return p, tea.Quit
		}
		return p.finish(Outcome{Kind: OutcomeChosen, Server: srv, Username: user})
	case ActionUp:
		p.advance(-1)
	case ActionDown:
		p.advance(+1)
	case ActionLeft:
		p.sel.LeaveUsernames()
	case ActionRight:
		p.sel.EnterUsernames()
	}
	log.Debug("Selection changed", "selection", p.sel.String())
	return p, nil
}

func (p *Picker) advance(dir int) {
	if p.sel.Focus() == PanelUsernames {
		p.sel.AdvanceUsername(dir)
		return
	}
	p.sel.AdvanceServer(dir)
}

func (p Picker) finish(o Outcome) (tea.Model, tea.Cmd) {
	log.Debug("Picker finished", "outcome", o.Kind, "server", o.Server.Name, "username", o.Username)
	p.done = true
	p.outcome = o
	return p, tea.Quit
}

func (p Picker) View() string {
	if p.done {
		return ""
	}
	return Render(View{
		Title:     p.title,
		Width:     p.width,
		Height:    p.height,
		Selection: &p.sel,
		Config:    p.cfg,
		Err:       p.err,
		Theme:     p.theme,
		Keys:      p.keys,
	})
}
