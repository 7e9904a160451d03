package selector

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"sssh/pkg/config"
)

const (
	// Size used until the terminal reports its dimensions.
	fallbackWidth  = 80
	fallbackHeight = 24

	minWidth  = 40
	minHeight = 14

	marginX = 2
	marginY = 1

	footerColumns = 4

	instructionText = "Select Your SSH server to connect."
	noServerText    = "There is no server to choose..."
)

// View is everything the renderer reads to draw one frame.
type View struct {
	Title     string
	Width     int
	Height    int
	Selection *Selection
	Config    *config.Config
	// Err replaces the server and username panels when non-empty.
	Err   string
	Theme Theme
	Keys  KeyMap
}

// Render composes one frame: a titled frame around the header, the body and the key footer.
// It only reads v.
func Render(v View) string {
	w, h := v.Width, v.Height
	if w <= 0 || h <= 0 {
		w, h = fallbackWidth, fallbackHeight
	}
	w, h = max(w, minWidth), max(h, minHeight)

	cw := w - 2 - 2*marginX
	ch := h - 2 - 2*marginY

	header := renderHeader(v, cw)
	footer := renderFooter(v, cw)
	bodyH := max(ch-len(header)-len(footer)-2, 3)

	var body []string
	if v.Err != "" {
		body = renderOverlay(v.Err, v.Theme, cw, bodyH)
	} else {
		body = renderPanels(v, cw, bodyH)
	}

	content := make([]string, 0, ch)
	content = append(content, header...)
	content = append(content, "")
	content = append(content, body...)
	content = append(content, "")
	content = append(content, footer...)

	inner := make([]string, 0, h-2)
	for range marginY {
		inner = append(inner, "")
	}
	pad := strings.Repeat(" ", marginX)
	for _, line := range content {
		inner = append(inner, pad+fit(line, cw)+pad)
	}
	for len(inner) < h-2 {
		inner = append(inner, "")
	}

	return strings.Join(box(v.Title, inner, w, h, v.Theme.Border, v.Theme.Title), "\n")
}

func renderHeader(v View, width int) []string {
	t := v.Theme
	if v.Err != "" {
		return []string{center(t.HeaderError.Render(runewidth.Truncate(noServerText, width, "…")), width), ""}
	}
	lines := []string{center(t.Instruction.Render(runewidth.Truncate(instructionText, width, "…")), width)}
	if v.Config.IsDefaultServers() {
		hint := t.Hint.Render("Hint: Press ") + t.HintKey.Render("e") + t.Hint.Render(" key to edit configuration file")
		lines = append(lines, center(hint, width))
	} else {
		lines = append(lines, "")
	}
	return lines
}

// renderOverlay centers the error block in the body area. Lines stay left aligned.
func renderOverlay(text string, t Theme, width, height int) []string {
	raw := strings.Split(expandTabs(strings.TrimRight(text, "\n")), "\n")
	blockW := 0
	for _, l := range raw {
		blockW = max(blockW, runewidth.StringWidth(l))
	}
	blockW = min(blockW, width)

	block := make([]string, len(raw))
	for i, l := range raw {
		block[i] = t.Overlay.Render(clip(l, blockW))
	}
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(block, "\n"))
	lines := strings.Split(placed, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return lines
}

func renderPanels(v View, width, height int) []string {
	sel := v.Selection
	if sel == nil {
		empty := NewSelection(nil)
		sel = &empty
	}
	leftW := width * 80 / 100
	rightW := width - leftW
	focusUsers := sel.Focus() == PanelUsernames

	left := box("Servers", serverTable(sel, v.Theme, leftW-2, height-2), leftW, height,
		v.Theme.panelBorder(!focusUsers), v.Theme.PanelTitle)
	right := box("Usernames", usernameList(sel, v.Theme, rightW-2, height-2), rightW, height,
		v.Theme.panelBorder(focusUsers), v.Theme.PanelTitle)

	lines := make([]string, height)
	for i := range lines {
		lines[i] = left[i] + right[i]
	}
	return lines
}

func serverTable(sel *Selection, t Theme, width, height int) []string {
	nameW := max(width*15/100, 1)
	hostW := max(width*20/100, 1)
	descW := max(width-nameW-hostW-2, 1)

	lines := []string{
		t.ColumnHeader.Render(clip("Name", nameW)) + " " +
			t.ColumnHeader.Render(clip("Host:Port", hostW)) + " " +
			t.ColumnHeader.Render(clip("Description", descW)),
		"",
	}
	avail := height - len(lines)

	servers := sel.Servers()
	heights := make([]int, len(servers))
	for i, s := range servers {
		heights[i] = len(descriptionLines(s.Description))
	}
	selected, ok := sel.ServerIndex()
	if !ok {
		selected = 0
	}
	start := scrollStart(heights, 1, selected, avail)

	var rows []string
	for i := start; i < len(servers) && len(rows) < avail; i++ {
		if i > start {
			rows = append(rows, "")
		}
		s := servers[i]
		highlight := ok && i == selected
		for j, d := range descriptionLines(s.Description) {
			name, host := "", ""
			if j == 0 {
				name, host = s.Name, s.HostPort()
			}
			if highlight {
				rows = append(rows, t.Selected.Render(clip(name, nameW)+" "+clip(host, hostW)+" "+clip(d, descW)))
				continue
			}
			rows = append(rows, t.Name.Render(clip(name, nameW))+" "+
				t.Host.Render(clip(host, hostW))+" "+
				t.Description.Render(clip(d, descW)))
		}
	}
	if len(rows) > avail {
		rows = rows[:avail]
	}
	return append(lines, rows...)
}

func usernameList(sel *Selection, t Theme, width, height int) []string {
	srv, ok := sel.Current()
	if !ok {
		return nil
	}
	selected, has := sel.UsernameIndex()
	highlight := has && sel.Focus() == PanelUsernames
	if !highlight {
		selected = 0
	}
	heights := make([]int, len(srv.Usernames))
	for i := range heights {
		heights[i] = 1
	}
	start := scrollStart(heights, 0, selected, height)

	var lines []string
	for i := start; i < len(srv.Usernames) && len(lines) < height; i++ {
		if highlight && i == selected {
			lines = append(lines, t.Selected.Render(clip(srv.Usernames[i], width)))
			continue
		}
		lines = append(lines, t.Username.Render(clip(srv.Usernames[i], width)))
	}
	return lines
}

func renderFooter(v View, width int) []string {
	cellW := width / footerColumns
	enabled := ActionSet(0)
	if v.Selection != nil {
		enabled = v.Selection.Enabled()
	}

	var lines []string
	var row strings.Builder
	for i, b := range v.Keys.Bindings() {
		help := b.Binding.Help()
		guide := ""
		if guideW := cellW - runewidth.StringWidth(help.Key) - 3; guideW > 0 {
			guide = runewidth.Truncate(help.Desc, guideW, "…")
		}
		entry := v.Theme.key(help.Key, guide, enabled.Has(b.Action))
		row.WriteString(fit(entry, cellW))
		if (i+1)%footerColumns == 0 {
			lines = append(lines, row.String())
			row.Reset()
		}
	}
	if row.Len() > 0 {
		lines = append(lines, row.String())
	}
	return lines
}

// scrollStart returns the first row to draw so that the selected row fits in avail lines.
// Rows are separated by gap blank lines.
func scrollStart(heights []int, gap, selected, avail int) int {
	if selected >= len(heights) {
		return 0
	}
	start := 0
	for start < selected {
		used := 0
		for i := start; i <= selected; i++ {
			used += heights[i]
			if i > start {
				used += gap
			}
		}
		if used <= avail {
			break
		}
		start++
	}
	return start
}

// box draws a rounded frame of size w x h around lines, with title centered in the top edge.
func box(title string, lines []string, w, h int, border, titleStyle lipgloss.Style) []string {
	b := lipgloss.RoundedBorder()
	iw := max(w-2, 0)

	title = runewidth.Truncate(title, iw, "")
	tw := runewidth.StringWidth(title)
	left := (iw - tw) / 2
	top := border.Render(b.TopLeft+strings.Repeat(b.Top, left)) +
		titleStyle.Render(title) +
		border.Render(strings.Repeat(b.Top, iw-tw-left)+b.TopRight)

	out := make([]string, 0, h)
	out = append(out, top)
	for i := 0; i < h-2; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out = append(out, border.Render(b.Left)+fit(line, iw)+border.Render(b.Right))
	}
	out = append(out, border.Render(b.BottomLeft+strings.Repeat(b.Bottom, iw)+b.BottomRight))
	return out
}

func descriptionLines(desc string) []string {
	return strings.Split(strings.TrimRight(expandTabs(desc), "\n"), "\n")
}

// expandTabs replaces tabs the way lipgloss renders them. runewidth counts a tab
// as zero cells, so it must be gone before measuring.
func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

// clip truncates plain text to exactly w cells.
func clip(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(expandTabs(s), w, "…"), w)
}

// fit pads a possibly styled line to w cells.
func fit(s string, w int) string {
	if d := w - lipgloss.Width(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

func center(s string, w int) string {
	return lipgloss.PlaceHorizontal(w, lipgloss.Center, s)
}
