package tabstrip

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/core/tui/theme"
	"github.com/sirupsen/logrus"
)

type menuItem int

const (
	menuRename menuItem = iota
	menuCopy
	menuDuplicate
	menuSetFirst
	menuDelete
)

var menuItems = []menuItem{menuRename, menuCopy, menuDuplicate, menuSetFirst, menuDelete}

func (i menuItem) String() string {
	switch i {
	case menuRename:
		return "Rename"
	case menuCopy:
		return "Copy"
	case menuDuplicate:
		return "Duplicate"
	case menuSetFirst:
		return "Set as first page"
	case menuDelete:
		return "Delete"
	}
	return ""
}

var menuStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// menuState is the settings menu of a single page.
type menuState struct {
	open   bool
	pageID string
	cursor int
}

func (s *menuState) close() { *s = menuState{} }

func (s menuState) view() string {
	lines := make([]string, len(menuItems))
	for i, item := range menuItems {
		label := item.String()
		switch {
		case i == s.cursor:
			label = theme.DefaultTheme.Selected.Render(label)
		case item == menuDelete:
			label = theme.DefaultTheme.Error.Render(label)
		}
		lines[i] = label
	}
	return menuStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) openMenu(id string) {
	if m.nav.IndexOf(id) < 0 {
		return
	}
	m.focusID = id
	m.menu = menuState{open: true, pageID: id}
}

// menuHit maps a screen cell to a menu item. The menu sits below the strip,
// aligned with its tab, one item per row inside a one-cell border.
func (m Model) menuHit(x, y int) (menuItem, bool) {
	s, ok := findTab(m.layout(), m.menu.pageID)
	if !ok {
		return 0, false
	}
	lx, ly := x-m.originX, y-m.originY
	w := lipgloss.Width(m.menu.view())
	row := ly - stripHeight - 1
	if lx < s.x || lx >= s.x+w || row < 0 || row >= len(menuItems) {
		return 0, false
	}
	return menuItems[row], true
}

func (m *Model) menuKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.menu.cursor > 0 {
			m.menu.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.menu.cursor < len(menuItems)-1 {
			m.menu.cursor++
		}
	case key.Matches(msg, m.keys.Confirm):
		return m.runMenuItem(menuItems[m.menu.cursor])
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Menu):
		m.menu.close()
	}
	return nil
}

func (m *Model) runMenuItem(item menuItem) tea.Cmd {
	id := m.menu.pageID
	m.menu.close()
	if item == menuRename {
		return m.beginRename(id)
	}
	m.log.WithFields(logrus.Fields{
		"page":   id,
		"action": item.String(),
	}).Info("Page action is not available")
	return nil
}
