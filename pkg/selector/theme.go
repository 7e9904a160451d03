package selector

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the fixed styles of the picker.
// The zero value renders plain text, which is what NoTheme returns.
type Theme struct {
	Border       lipgloss.Style
	Title        lipgloss.Style
	Instruction  lipgloss.Style
	Hint         lipgloss.Style
	HintKey      lipgloss.Style
	HeaderError  lipgloss.Style
	Overlay      lipgloss.Style
	PanelBorder  lipgloss.Style
	PanelActive  lipgloss.Style
	PanelTitle   lipgloss.Style
	ColumnHeader lipgloss.Style
	Name         lipgloss.Style
	Host         lipgloss.Style
	Description  lipgloss.Style
	Username     lipgloss.Style
	Selected     lipgloss.Style
	KeyOn        lipgloss.Style
	KeyOff       lipgloss.Style
	GuideOn      lipgloss.Style
	GuideOff     lipgloss.Style
}

// DefaultTheme returns DarkTheme, or NoTheme when NO_COLOR is set.
func DefaultTheme() Theme {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return NoTheme()
	}
	return DarkTheme()
}

// NoTheme disables all styling.
func NoTheme() Theme {
	return Theme{}
}

// DarkTheme is the palette for dark terminals.
func DarkTheme() Theme {
	s := lipgloss.NewStyle
	return Theme{
		Border:       s().Foreground(lipgloss.Color("7")),
		Title:        s().Foreground(lipgloss.Color("15")).Bold(true),
		Instruction:  s().Foreground(lipgloss.Color("15")).Bold(true),
		Hint:         s().Foreground(lipgloss.Color("7")).Faint(true),
		HintKey:      s().Foreground(lipgloss.Color("7")).Faint(true).Bold(true).Blink(true),
		HeaderError:  s().Foreground(lipgloss.Color("1")).Bold(true),
		Overlay:      s().Foreground(lipgloss.Color("9")).Bold(true),
		PanelBorder:  s().Foreground(lipgloss.Color("3")),
		PanelActive:  s().Foreground(lipgloss.Color("11")),
		PanelTitle:   s().Foreground(lipgloss.Color("15")).Bold(true),
		ColumnHeader: s().Foreground(lipgloss.Color("14")).Bold(true),
		Name:         s().Foreground(lipgloss.Color("15")),
		Host:         s().Foreground(lipgloss.Color("7")),
		Description:  s().Foreground(lipgloss.Color("8")),
		Username:     s().Foreground(lipgloss.Color("15")).Bold(true),
		Selected:     s().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15")).Bold(true),
		KeyOn:        s().Foreground(lipgloss.Color("10")).Bold(true),
		KeyOff:       s().Foreground(lipgloss.Color("8")).Bold(true),
		GuideOn:      s().Foreground(lipgloss.Color("15")),
		GuideOff:     s().Foreground(lipgloss.Color("8")).Strikethrough(true),
	}
}

// panelBorder picks the border style of a panel by focus.
func (t Theme) panelBorder(active bool) lipgloss.Style {
	if active {
		return t.PanelActive
	}
	return t.PanelBorder
}

// key renders one footer entry.
func (t Theme) key(name, guide string, enabled bool) string {
	if enabled {
		return "[" + t.KeyOn.Render(name) + "] " + t.GuideOn.Render(guide)
	}
	return "[" + t.KeyOff.Render(name) + "] " + t.GuideOff.Render(guide)
}
