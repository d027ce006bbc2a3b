package tabstrip

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/pagenav/pkg/gesture"
)

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	m.pointerX = msg.X

	// A pressed pointer owns every event until it is released.
	if m.pressed {
		switch msg.Action {
		case tea.MouseActionMotion:
			m.nav.PointerMove(m.point(msg.X, msg.Y))
		case tea.MouseActionRelease:
			m.pressed = false
			return m.release(m.nav.PointerUp(m.point(msg.X, msg.Y)))
		}
		return nil
	}

	if msg.Action != tea.MouseActionPress {
		return nil
	}

	if m.menu.open {
		if item, ok := m.menuHit(msg.X, msg.Y); ok {
			return m.runMenuItem(item)
		}
		m.menu.close()
	}

	segs := m.layout()
	s, ok := m.hit(segs, msg.X, msg.Y)
	if !ok {
		if msg.Button == tea.MouseButtonLeft {
			m.nav.BlurRename()
		}
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		return m.leftPress(s, msg)
	case tea.MouseButtonRight:
		if s.kind == segTab {
			m.nav.BlurRename()
			m.openMenu(s.id)
		}
	}
	return nil
}

func (m *Model) leftPress(s segment, msg tea.MouseMsg) tea.Cmd {
	switch s.kind {
	case segConnector:
		m.nav.BlurRename()
		if p, err := m.nav.AddAfter(s.id); err == nil {
			m.focusID = p.ID
		}
	case segAdd:
		m.nav.BlurRename()
		if p, err := m.nav.Append(); err == nil {
			m.focusID = p.ID
		}
	case segTab:
		if s.onHandle(msg.X-m.originX) && !m.nav.IsEditing(s.id) {
			m.nav.BlurRename()
			m.openMenu(s.id)
			return nil
		}
		m.pressed = m.nav.PointerDown(s.id, m.point(msg.X, msg.Y))
	}
	return nil
}

// release turns a finished pointer gesture into focus changes and detects
// double clicks.
func (m *Model) release(res gesture.Result) tea.Cmd {
	switch res.Kind {
	case gesture.ResultDrop:
		m.focusID = res.ID
		m.lastClick = click{}
	case gesture.ResultClick:
		m.focusID = res.ID
		now := m.now()
		if m.lastClick.id == res.ID && now.Sub(m.lastClick.at) <= m.settings.DoubleClick {
			// Reset so a third click does not count as another double click.
			m.lastClick = click{}
			return m.beginRename(res.ID)
		}
		m.lastClick = click{id: res.ID, at: now}
	}
	return nil
}
