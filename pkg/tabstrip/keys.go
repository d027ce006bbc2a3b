package tabstrip

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/pagenav/pkg/gesture"
)

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if _, editing := m.nav.Editing(); editing {
		return m.renameKey(msg)
	}
	if m.menu.open {
		return m.menuKey(msg)
	}
	if m.nav.Phase() != gesture.Idle {
		m.dragKey(msg)
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Select):
		m.nav.Click(m.focusID)
	case key.Matches(msg, m.keys.Grab):
		m.nav.KeyPickUp(m.focusID)
	case key.Matches(msg, m.keys.MoveLeft):
		m.nav.KeyMove(m.focusID, -1)
	case key.Matches(msg, m.keys.MoveRight):
		m.nav.KeyMove(m.focusID, 1)
	case key.Matches(msg, m.keys.Rename):
		return m.beginRename(m.focusID)
	case key.Matches(msg, m.keys.AddAfter):
		if p, err := m.nav.AddAfter(m.focusID); err == nil {
			m.focusID = p.ID
		}
	case key.Matches(msg, m.keys.Append):
		if p, err := m.nav.Append(); err == nil {
			m.focusID = p.ID
		}
	case key.Matches(msg, m.keys.Menu):
		m.openMenu(m.focusID)
	}
	return nil
}

func (m *Model) renameKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.nav.CommitRename()
		return nil
	case key.Matches(msg, m.keys.Cancel):
		m.nav.CancelRename()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.nav.SetDraft(m.input.Value())
	return cmd
}

// dragKey steps, drops or cancels a keyboard drag. Pointer drags only
// respond to cancel.
func (m *Model) dragKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.pressed = false
		m.nav.CancelDrag()
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.MoveLeft):
		m.nav.KeyStep(-1)
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.MoveRight):
		m.nav.KeyStep(1)
	case key.Matches(msg, m.keys.Grab), key.Matches(msg, m.keys.Select):
		if res := m.nav.KeyDrop(); res.Kind == gesture.ResultDrop {
			m.focusID = res.ID
		}
	}
}

func (m *Model) moveFocus(dir int) {
	ps := m.nav.Pages()
	i := m.nav.IndexOf(m.focusID) + dir
	if i < 0 || i >= len(ps) {
		return
	}
	m.focusID = ps[i].ID
}
