package selector

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"sssh/pkg/config"
)

func testConfig(servers ...config.Server) *config.Config {
	cfg := config.Empty("test.toml")
	for _, s := range servers {
		if s.Port == 0 {
			s.Port = config.DefaultPort
		}
		cfg.Servers[s.Name] = s
	}
	return cfg
}

func alphaBeta() *config.Config {
	return testConfig(
		config.Server{Name: "beta", Hostname: "beta.example.com", Usernames: []string{"root", "ci"}},
		config.Server{Name: "alpha", Hostname: "alpha.example.com", Usernames: []string{"root"}},
	)
}

// press builds the key message bubbletea delivers for a key name.
func press(name string) tea.KeyMsg {
	switch name {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
	}
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}
