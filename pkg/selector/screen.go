package selector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"sssh/pkg/crash"
)

// Screen runs one interactive pass of a Picker and returns it in its final state.
// The terminal must be restored before Run returns, whatever the result.
type Screen interface {
	Run(ctx context.Context, p Picker) (Picker, error)
}

// UIError reports a failure of the terminal session itself. It is always fatal.
type UIError struct {
	Err error
}

func (e *UIError) Error() string {
	return fmt.Sprintf("could not run terminal session: %v", e.Err)
}

func (e *UIError) Unwrap() error { return e.Err }

// TeaScreen runs the picker as a bubbletea program on the alternate screen.
// Nil Input and Output default to the controlling terminal.
//
// A panic inside the picker is returned as *crash.Error once the terminal is restored.
type TeaScreen struct {
	Input  io.Reader
	Output io.Writer
}

func (s TeaScreen) Run(ctx context.Context, p Picker) (Picker, error) {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if s.Input != nil {
		opts = append(opts, tea.WithInput(s.Input))
	}
	if s.Output != nil {
		opts = append(opts, tea.WithOutput(s.Output))
	}

	var prog *tea.Program
	g := guard{model: p, caught: &crash.Error{}, quit: func() { prog.Quit() }}
	prog = tea.NewProgram(g, opts...)

	final, err := prog.Run()
	switch {
	case g.caught.Value != nil:
		return p, g.caught
	case errors.Is(err, tea.ErrProgramPanic):
		return p, &crash.Error{Value: err}
	case err != nil:
		return p, &UIError{Err: err}
	}
	out, ok := final.(guard)
	if !ok {
		return p, &UIError{Err: fmt.Errorf("unexpected model %T", final)}
	}
	picker, ok := out.model.(Picker)
	if !ok {
		return p, &UIError{Err: fmt.Errorf("unexpected model %T", out.model)}
	}
	return picker, nil
}

// guard records the first panic of the wrapped model with its stack and stops the
// program, so the terminal is restored before the crash is reported.
type guard struct {
	model  tea.Model
	caught *crash.Error
	quit   func()
}

func (g guard) Init() tea.Cmd {
	return g.model.Init()
}

func (g guard) Update(msg tea.Msg) (m tea.Model, cmd tea.Cmd) {
	if g.caught.Value != nil {
		return g, tea.Quit
	}
	defer func() {
		if r := recover(); r != nil {
			g.record(r)
			m, cmd = g, tea.Quit
		}
	}()
	next, c := g.model.Update(msg)
	g.model = next
	return g, c
}

func (g guard) View() (view string) {
	if g.caught.Value != nil {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			g.record(r)
			// View runs on the event loop, which Quit would block on.
			go g.quit()
			view = ""
		}
	}()
	return g.model.View()
}

func (g guard) record(r any) {
	*g.caught = crash.Error{Value: r, Stack: debug.Stack()}
}
