package tabstrip

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/grovetools/core/tui/theme"

	"github.com/grovetools/pagenav/pkg/gesture"
)

// stripHeight is the number of rows a tab occupies, borders included.
const stripHeight = 3

const (
	menuHandle = "⋮"
	addLabel   = "[+ Add page]"
)

var (
	tabStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	focusedTabStyle = tabStyle.BorderForeground(lipgloss.Color("39"))
	overTabStyle    = tabStyle.Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("42"))
	draggedTabStyle = tabStyle.BorderForeground(lipgloss.Color("238")).Faint(true)
	ghostStyle      = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(0, 1)
	connectorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type segmentKind int

const (
	segTab segmentKind = iota
	segConnector
	segAdd
)

// segment is one horizontally placed piece of the strip. For connectors id
// is the page to the left.
type segment struct {
	kind segmentKind
	id   string
	view string
	x, w int
}

func (s segment) contains(x int) bool { return x >= s.x && x < s.x+s.w }

// onHandle reports whether column x is on the tab's menu handle or the
// padding just after it.
func (s segment) onHandle(x int) bool {
	return s.kind == segTab && x >= s.x+s.w-3 && x < s.x+s.w-1
}

func (m Model) layout() []segment {
	var segs []segment
	x := 0
	add := func(kind segmentKind, id, view string) {
		w := lipgloss.Width(view)
		segs = append(segs, segment{kind: kind, id: id, view: view, x: x, w: w})
		x += w
	}

	ps := m.nav.Pages()
	for i, p := range ps {
		if i > 0 {
			add(segConnector, ps[i-1].ID, connectorStyle.Render("\n╌+╌\n"))
		}
		add(segTab, p.ID, m.renderTab(p.ID, p.Title))
	}
	add(segAdd, "", lipgloss.NewStyle().PaddingLeft(1).Render("\n"+theme.DefaultTheme.Muted.Render(addLabel)+"\n"))
	return segs
}

func (m Model) renderTab(id, title string) string {
	var label string
	if m.nav.IsEditing(id) {
		w := m.settings.MaxTitleWidth + 1
		label = lipgloss.NewStyle().Width(w).MaxWidth(w).Render(m.input.View())
	} else {
		label = ansi.Truncate(title, m.settings.MaxTitleWidth, "…")
		switch {
		case id == m.nav.Active():
			label = theme.DefaultTheme.Selected.Render(label)
		case id == m.focusID:
			label = theme.DefaultTheme.Highlight.Render(label)
		}
	}
	content := theme.IconNote + " " + label + " " + theme.DefaultTheme.Muted.Render(menuHandle)

	style := tabStyle
	st, dragging := m.nav.DragState()
	switch {
	case dragging && st.DraggedID == id:
		style = draggedTabStyle
	case dragging && st.OverID == id:
		style = overTabStyle
	case id == m.focusID:
		style = focusedTabStyle
	}
	return style.Render(content)
}

// slots converts tab segments to logical pixel rectangles, in list order.
func (m Model) slots(segs []segment) []gesture.Slot {
	cw, ch := float64(m.settings.CellWidth), float64(m.settings.CellHeight)
	var out []gesture.Slot
	for _, s := range segs {
		if s.kind != segTab {
			continue
		}
		out = append(out, gesture.Slot{
			ID:   s.id,
			Rect: gesture.Rect{X: float64(s.x) * cw, Y: 0, W: float64(s.w) * cw, H: stripHeight * ch},
		})
	}
	return out
}

// point maps a screen cell to the logical pixel at its center.
func (m Model) point(x, y int) gesture.Point {
	cw, ch := float64(m.settings.CellWidth), float64(m.settings.CellHeight)
	return gesture.Point{
		X: float64(x-m.originX)*cw + cw/2,
		Y: float64(y-m.originY)*ch + ch/2,
	}
}

// hit returns the segment under a screen cell of the strip row.
func (m Model) hit(segs []segment, x, y int) (segment, bool) {
	lx, ly := x-m.originX, y-m.originY
	if ly < 0 || ly >= stripHeight {
		return segment{}, false
	}
	for _, s := range segs {
		if s.contains(lx) {
			return s, true
		}
	}
	return segment{}, false
}

func findTab(segs []segment, id string) (segment, bool) {
	for _, s := range segs {
		if s.kind == segTab && s.id == id {
			return s, true
		}
	}
	return segment{}, false
}

// View renders the strip followed by the drag ghost or the open menu.
func (m Model) View() string {
	segs := m.layout()
	views := make([]string, len(segs))
	for i, s := range segs {
		views[i] = s.view
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, views...)

	if below := m.renderBelow(segs); below != "" {
		return row + "\n" + below
	}
	return row
}

func (m Model) renderBelow(segs []segment) string {
	if st, ok := m.nav.DragState(); ok {
		return m.renderGhost(st)
	}
	if m.menu.open {
		if s, ok := findTab(segs, m.menu.pageID); ok {
			return indent(m.menu.view(), s.x)
		}
	}
	return ""
}

func (m Model) renderGhost(st gesture.DragState) string {
	title := ansi.Truncate(st.Snapshot.Title, m.settings.MaxTitleWidth, "…")
	ghost := ghostStyle.Render(theme.IconNote + " " + title)

	col := m.pointerX - m.originX
	if st.Modality == gesture.Keyboard {
		col = int(st.Position.X) / m.settings.CellWidth
	}
	col -= lipgloss.Width(ghost) / 2
	if col < 0 {
		col = 0
	}
	return indent(ghost, col)
}

func indent(block string, n int) string {
	if n <= 0 {
		return block
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
