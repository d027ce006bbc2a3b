// Package tabstrip renders a row of reorderable page tabs as a bubbletea
// component. All interaction is delegated to a navigator; the strip maps
// terminal cells to logical pixels, recognizes double clicks and draws the
// drag ghost, the inline rename input and the page menu.
package tabstrip

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/core/logging"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/pagenav/pkg/gesture"
	"github.com/grovetools/pagenav/pkg/keymap"
	"github.com/grovetools/pagenav/pkg/navigator"
	"github.com/grovetools/pagenav/pkg/pages"
)

// ChangedMsg is emitted after every reorder, rename, insert and selection change.
type ChangedMsg struct {
	navigator.Update
}

// Settings are the tuning values that can change while the strip is running.
type Settings struct {
	Threshold     float64
	CellWidth     int
	CellHeight    int
	DoubleClick   time.Duration
	MaxTitleWidth int
}

// DefaultSettings maps one terminal cell to 10x20 logical pixels, so moving
// the pointer by a single column starts a drag.
func DefaultSettings() Settings {
	return Settings{
		Threshold:     gesture.DefaultThreshold,
		CellWidth:     10,
		CellHeight:    20,
		DoubleClick:   400 * time.Millisecond,
		MaxTitleWidth: 16,
	}
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.Threshold <= 0 {
		s.Threshold = d.Threshold
	}
	if s.CellWidth <= 0 {
		s.CellWidth = d.CellWidth
	}
	if s.CellHeight <= 0 {
		s.CellHeight = d.CellHeight
	}
	if s.DoubleClick <= 0 {
		s.DoubleClick = d.DoubleClick
	}
	if s.MaxTitleWidth <= 0 {
		s.MaxTitleWidth = d.MaxTitleWidth
	}
	return s
}

// Options configure a Model.
type Options struct {
	Settings Settings
	ActiveID string
	IDs      pages.IDGenerator
	Logger   *logrus.Entry
}

// outbox collects navigator updates until Update turns them into commands.
type outbox struct {
	updates []navigator.Update
}

func (o *outbox) push(u navigator.Update) { o.updates = append(o.updates, u) }

func (o *outbox) drain() []navigator.Update {
	out := o.updates
	o.updates = nil
	return out
}

type click struct {
	id string
	at time.Time
}

// Model is the tab strip component.
type Model struct {
	nav      *navigator.Navigator
	keys     keymap.PageNavKeyMap
	settings Settings
	log      *logrus.Entry
	out      *outbox

	// Screen position of the strip's top-left cell.
	originX, originY int

	focusID string
	input   textinput.Model
	menu    menuState

	pressed   bool
	pointerX  int
	lastClick click
	now       func() time.Time
}

// New builds a strip over initial pages.
func New(initial []pages.Page, keys keymap.PageNavKeyMap, opts Options) (Model, error) {
	log := opts.Logger
	if log == nil {
		log = logging.NewLogger("pagenav")
	}
	settings := opts.Settings.withDefaults()
	out := &outbox{}

	nav, err := navigator.New(initial, navigator.Options{
		ActiveID:  opts.ActiveID,
		IDs:       opts.IDs,
		Threshold: settings.Threshold,
		OnChange:  out.push,
		Logger:    log,
	})
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Prompt = ""
	// Titles have no maximum length.
	ti.CharLimit = 0
	ti.Width = settings.MaxTitleWidth

	m := Model{
		nav:      nav,
		keys:     keys,
		settings: settings,
		log:      log,
		out:      out,
		focusID:  nav.Active(),
		input:    ti,
		now:      time.Now,
	}
	m.sync()
	return m, nil
}

// Navigator exposes the interaction core for hosts that need to read state.
func (m Model) Navigator() *navigator.Navigator { return m.nav }

// Focused returns the id of the tab with keyboard focus.
func (m Model) Focused() string { return m.focusID }

// Settings returns the current tuning values.
func (m Model) Settings() Settings { return m.settings }

// SetOrigin tells the strip where its top-left cell is on screen.
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// ApplySettings replaces the tuning values, e.g. after a config reload.
func (m *Model) ApplySettings(s Settings) {
	m.settings = s.withDefaults()
	m.nav.SetThreshold(m.settings.Threshold)
	m.input.Width = m.settings.MaxTitleWidth
	m.sync()
}

// Close releases the navigator.
func (m Model) Close() { m.nav.Close() }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles mouse, keyboard and focus messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.BlurMsg:
		m.pressed = false
		m.menu.close()
		m.nav.Blur()
	}

	m.sync()
	return m, m.flush(cmd)
}

// sync realigns derived state with the navigator after every message.
func (m *Model) sync() {
	m.nav.SetSlots(m.slots(m.layout()))
	if _, editing := m.nav.Editing(); !editing && m.input.Focused() {
		m.input.Blur()
		m.input.SetValue("")
	}
	if m.nav.IndexOf(m.focusID) < 0 {
		m.focusID = m.nav.Active()
	}
}

func (m *Model) flush(cmd tea.Cmd) tea.Cmd {
	cmds := []tea.Cmd{cmd}
	for _, u := range m.out.drain() {
		u := u
		cmds = append(cmds, func() tea.Msg { return ChangedMsg{Update: u} })
	}
	return tea.Batch(cmds...)
}

func (m *Model) beginRename(id string) tea.Cmd {
	m.menu.close()
	if !m.nav.BeginRename(id) {
		return nil
	}
	sess, _ := m.nav.Editing()
	m.focusID = id
	m.input.SetValue(sess.Draft)
	m.input.CursorEnd()
	return m.input.Focus()
}
