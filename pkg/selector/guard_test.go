package selector

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sssh/pkg/crash"
)

type brokenModel struct {
	inUpdate bool
}

func (brokenModel) Init() tea.Cmd { return nil }

func (m brokenModel) Update(tea.Msg) (tea.Model, tea.Cmd) {
	if m.inUpdate {
		panic("update exploded")
	}
	return m, nil
}

func (m brokenModel) View() string {
	if !m.inUpdate {
		panic("view exploded")
	}
	return "ok"
}

func TestGuard_UpdatePanicStopsProgram(t *testing.T) {
	g := guard{model: brokenModel{inUpdate: true}, caught: &crash.Error{}, quit: func() {}}

	m, cmd := g.Update(press("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "update exploded", g.caught.Value)
	assert.Contains(t, string(g.caught.Stack), "brokenModel")

	_, cmd = m.Update(press("q"))
	require.NotNil(t, cmd, "later messages keep quitting")
	assert.Empty(t, m.View())
}

func TestGuard_ViewPanicStopsProgram(t *testing.T) {
	quit := make(chan struct{}, 1)
	g := guard{model: brokenModel{}, caught: &crash.Error{}, quit: func() { quit <- struct{}{} }}

	assert.Empty(t, g.View())
	assert.Equal(t, "view exploded", g.caught.Value)
	select {
	case <-quit:
	case <-time.After(time.Second):
		t.Fatal("program was not asked to quit")
	}
}

func TestGuard_PassesThrough(t *testing.T) {
	g := guard{model: NewPicker("sssh", alphaBeta(), "", NoTheme()), caught: &crash.Error{}, quit: func() {}}

	m, cmd := g.Update(press("q"))
	require.NotNil(t, cmd)
	p, ok := m.(guard).model.(Picker)
	require.True(t, ok)
	assert.True(t, p.Done())
	assert.Nil(t, g.caught.Value)
}
