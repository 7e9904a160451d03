package selector

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feed(p Picker, keys ...string) (Picker, tea.Cmd) {
	var m tea.Model = p
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(press(k))
	}
	return m.(Picker), cmd
}

func TestPicker_NavigatesFocusedPanel(t *testing.T) {
	p := NewPicker("sssh", alphaBeta(), "", NoTheme())

	p, cmd := feed(p, "down")
	assert.Nil(t, cmd)
	sel := p.Selection()
	idx, _ := sel.ServerIndex()
	assert.Equal(t, 1, idx)

	p, _ = feed(p, "right", "down")
	sel = p.Selection()
	assert.Equal(t, PanelUsernames, sel.Focus())
	idx, _ = sel.ServerIndex()
	assert.Equal(t, 1, idx, "down moves the username, not the server")
	uidx, _ := sel.UsernameIndex()
	assert.Equal(t, 1, uidx)

	p, _ = feed(p, "backspace")
	sel = p.Selection()
	assert.Equal(t, PanelServers, sel.Focus())
	_, ok := sel.UsernameIndex()
	assert.False(t, ok)
	assert.False(t, p.Done())
}

func TestPicker_TerminalOutcomes(t *testing.T) {
	cases := map[string]struct {
		keys []string
		want OutcomeKind
	}{
		"quit":    {[]string{"q"}, OutcomeStop},
		"edit":    {[]string{"down", "e"}, OutcomeEdit},
		"reload":  {[]string{"right", "r"}, OutcomeReload},
		"confirm": {[]string{"enter", "enter"}, OutcomeChosen},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p, cmd := feed(NewPicker("sssh", alphaBeta(), "", NoTheme()), tc.keys...)
			require.True(t, p.Done())
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())

			out, err := p.Outcome()
			require.NoError(t, err)
			assert.Equal(t, tc.want, out.Kind)
			assert.Empty(t, p.View())
		})
	}
}

func TestPicker_ConfirmCarriesChoice(t *testing.T) {
	p, _ := feed(NewPicker("sssh", alphaBeta(), "", NoTheme()), "up", "right", "down", "enter")
	out, err := p.Outcome()
	require.NoError(t, err)
	assert.Equal(t, OutcomeChosen, out.Kind)
	assert.Equal(t, "beta", out.Server.Name)
	assert.Equal(t, "ci", out.Username)
}

func TestPicker_KeysAfterDoneAreIgnored(t *testing.T) {
	p, _ := feed(NewPicker("sssh", alphaBeta(), "", NoTheme()), "e", "q")
	out, _ := p.Outcome()
	assert.Equal(t, OutcomeEdit, out.Kind)
}

func TestPicker_UnfinishedStops(t *testing.T) {
	out, err := NewPicker("sssh", alphaBeta(), "", NoTheme()).Outcome()
	require.NoError(t, err)
	assert.Equal(t, OutcomeStop, out.Kind)
}

func TestPicker_ConfirmWithoutUsernameIsFault(t *testing.T) {
	p := NewPicker("sssh", alphaBeta(), "", NoTheme())
	p.sel.focus = PanelUsernames

	p, _ = feed(p, "enter")
	_, err := p.Outcome()
	assert.ErrorIs(t, err, errNoUsername)
}

func TestPicker_WindowSizeAndView(t *testing.T) {
	var m tea.Model = NewPicker("sssh", alphaBeta(), "", NoTheme())
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := m.View()
	assert.Len(t, splitLines(view), 40)
	assert.Contains(t, view, "alpha")
	assert.Nil(t, m.Init())
}

func TestPicker_OverlayBlocksNavigation(t *testing.T) {
	p, _ := feed(NewPicker("sssh", alphaBeta(), "broken", NoTheme()), "down", "right")
	sel := p.Selection()
	idx, _ := sel.ServerIndex()
	assert.Equal(t, 0, idx)
	assert.Equal(t, PanelServers, sel.Focus())
	assert.Contains(t, p.View(), "broken")
}
