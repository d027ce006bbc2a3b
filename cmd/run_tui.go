package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/core/tui/components/help"
	"github.com/grovetools/core/tui/theme"

	"github.com/grovetools/pagenav/pkg/keymap"
	"github.com/grovetools/pagenav/pkg/navconfig"
	"github.com/grovetools/pagenav/pkg/navigator"
	"github.com/grovetools/pagenav/pkg/tabstrip"
)

const (
	// headerHeight is the number of rows above the strip.
	headerHeight = 2
	// stripArea reserves room for the strip plus its menu or drag ghost.
	stripArea = 10
)

// configReloadMsg is sent when the watched config file changes.
type configReloadMsg struct {
	cfg *navconfig.Config
}

// listenForReload waits for the next reloaded config.
func listenForReload(ch <-chan *navconfig.Config) tea.Cmd {
	return func() tea.Msg {
		if ch == nil {
			return nil
		}
		cfg, ok := <-ch
		if !ok {
			return nil // Watcher stopped
		}
		return configReloadMsg{cfg: cfg}
	}
}

// hostModel embeds the tab strip and shows the active page and an event log.
type hostModel struct {
	strip  tabstrip.Model
	keys   keymap.PageNavKeyMap
	help   help.Model
	vp     viewport.Model
	events []string
	reload <-chan *navconfig.Config

	width  int
	height int
}

func newHostModel(strip tabstrip.Model, km keymap.PageNavKeyMap, reload <-chan *navconfig.Config) hostModel {
	strip.SetOrigin(0, headerHeight)

	helpModel := help.New(km)
	helpModel.Title = "Page Navigator Help"

	return hostModel{
		strip:  strip,
		keys:   km,
		help:   helpModel,
		vp:     viewport.New(80, 10),
		reload: reload,
	}
}

func (m hostModel) Init() tea.Cmd {
	if m.reload != nil {
		return listenForReload(m.reload)
	}
	return nil
}

func (m hostModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-headerHeight-stripArea-3, 1)
		m.help.SetSize(msg.Width, msg.Height)
		return m, nil

	case configReloadMsg:
		m.strip.ApplySettings(stripSettings(msg.cfg))
		m.logEvent(theme.DefaultTheme.Info.Render("config reloaded"))
		return m, listenForReload(m.reload)

	case tabstrip.ChangedMsg:
		m.logEvent(describeUpdate(msg.Update))
		return m, nil

	case tea.KeyMsg:
		if m.help.ShowAll {
			if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Cancel) || key.Matches(msg, m.keys.Quit) {
				m.help.Toggle()
				return m, nil
			}
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}

		// Keys belong to the rename input while a title is being edited.
		if _, editing := m.strip.Navigator().Editing(); !editing {
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			if key.Matches(msg, m.keys.Help) {
				m.help.Toggle()
				return m, nil
			}
		} else if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}

	m.strip, cmd = m.strip.Update(msg)
	return m, cmd
}

func (m *hostModel) logEvent(line string) {
	m.events = append(m.events, line)
	m.vp.SetContent(strings.Join(m.events, "\n"))
	m.vp.GotoBottom()
}

func describeUpdate(u navigator.Update) string {
	t := theme.DefaultTheme
	var title string
	for _, p := range u.Pages {
		if p.ID == u.PageID {
			title = p.Title
		}
	}
	return fmt.Sprintf("%s %s %s  %s",
		t.Highlight.Render(string(u.Reason)),
		title,
		t.Muted.Render("("+u.PageID+")"),
		t.Muted.Render("active: "+u.ActiveID),
	)
}

func (m hostModel) View() string {
	if m.help.ShowAll {
		return m.help.View()
	}

	t := theme.DefaultTheme
	var s strings.Builder

	s.WriteString(t.Header.Render(theme.IconNotebook+" Pages") + "\n\n")
	s.WriteString(lipgloss.NewStyle().Height(stripArea).Render(m.strip.View()) + "\n")

	nav := m.strip.Navigator()
	active, _ := nav.Page(nav.Active())
	s.WriteString(t.Bold.Render("Active: ") + active.Title + "\n")
	s.WriteString(t.Muted.Render(strings.Repeat("─", max(m.width, 20))) + "\n")
	s.WriteString(m.vp.View() + "\n")
	s.WriteString(t.Muted.Render("? help • q quit"))
	return s.String()
}
