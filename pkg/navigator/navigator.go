// Package navigator wires the page store, selection, insertion, rename
// editor and gesture recognizer into the single surface a view talks to.
// It owns the policies that span components, such as committing an open
// rename before another page is clicked or dragged.
package navigator

import (
	"github.com/grovetools/core/logging"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/pagenav/pkg/gesture"
	"github.com/grovetools/pagenav/pkg/pages"
	"github.com/grovetools/pagenav/pkg/rename"
)

// Reason says why the host is being notified.
type Reason string

const (
	ReasonReordered Reason = Reason(pages.ChangeReordered)
	ReasonRenamed   Reason = Reason(pages.ChangeRenamed)
	ReasonInserted  Reason = Reason(pages.ChangeInserted)
	ReasonSelected  Reason = "selected"
)

// Update is delivered to the host after every mutation and selection change.
type Update struct {
	Reason   Reason
	PageID   string
	Pages    []pages.Page
	ActiveID string
}

// Options configure a Navigator.
type Options struct {
	// ActiveID defaults to the first page.
	ActiveID string
	// IDs defaults to pages.UUIDGenerator.
	IDs       pages.IDGenerator
	Threshold float64
	Collision gesture.CollisionFunc
	// OnChange is called synchronously; it must not call back into mutations.
	OnChange func(Update)
	Logger   *logrus.Entry
}

// Navigator is the interaction core behind a tab strip.
type Navigator struct {
	store     *pages.Store
	selection *pages.Selection
	inserter  *pages.Inserter
	editor    *rename.Editor
	gestures  *gesture.Recognizer
	// rowSlots is set while the slots are the list-order fallback rather
	// than geometry from a view.
	rowSlots bool

	onChange func(Update)
	log      *logrus.Entry
	unsub    func()
}

// New builds a navigator over initial, which must be non-empty with unique ids.
func New(initial []pages.Page, opts Options) (*Navigator, error) {
	store, err := pages.New(initial)
	if err != nil {
		return nil, err
	}

	n := &Navigator{
		store:    store,
		onChange: opts.OnChange,
		log:      opts.Logger,
	}
	if n.log == nil {
		n.log = logging.NewLogger("pagenav")
	}

	// Selection subscribes first so hosts always see a validated active id.
	n.selection = pages.NewSelection(store, opts.ActiveID)
	n.unsub = store.Subscribe(pages.ListenerFunc(n.pagesChanged))
	n.inserter = pages.NewInserter(store, opts.IDs)
	n.editor = rename.NewEditor(store)
	n.gestures = gesture.NewRecognizer(store, gesture.Options{
		Threshold: opts.Threshold,
		Collision: opts.Collision,
		Suppress:  n.editor.SuppressesDrag,
		Hooks:     n.dragHooks(),
	})
	return n, nil
}

// Close detaches the navigator from its store.
func (n *Navigator) Close() {
	if n.unsub != nil {
		n.unsub()
		n.unsub = nil
	}
	n.selection.Close()
}

func (n *Navigator) pagesChanged(c pages.Change) {
	n.log.WithFields(logrus.Fields{
		"change": c.Kind,
		"page":   c.PageID,
		"count":  len(c.Pages),
	}).Debug("Page collection changed")
	n.relabelSlots(c.Pages)
	n.emit(Update{Reason: Reason(c.Kind), PageID: c.PageID, Pages: c.Pages})
}

// relabelSlots keeps slot ids aligned with list order until the view lays the
// row out again.
func (n *Navigator) relabelSlots(ps []pages.Page) {
	slots := n.gestures.Slots()
	if len(slots) != len(ps) {
		return
	}
	for i := range slots {
		slots[i].ID = ps[i].ID
	}
	n.gestures.SetSlots(slots)
}

func (n *Navigator) emit(u Update) {
	if n.onChange == nil {
		return
	}
	if u.Pages == nil {
		u.Pages = n.store.Pages()
	}
	u.ActiveID = n.selection.Active()
	n.onChange(u)
}

// Pages returns the current order.
func (n *Navigator) Pages() []pages.Page { return n.store.Pages() }

// Page returns the page with id.
func (n *Navigator) Page(id string) (pages.Page, bool) { return n.store.Get(id) }

// IndexOf returns the position of id, or -1.
func (n *Navigator) IndexOf(id string) int { return n.store.IndexOf(id) }

// Len returns the number of pages.
func (n *Navigator) Len() int { return n.store.Len() }

// Active returns the active page id.
func (n *Navigator) Active() string { return n.selection.Active() }

// Select makes id active.
func (n *Navigator) Select(id string) bool {
	if !n.selection.Select(id) {
		return false
	}
	n.log.WithField("page", id).Debug("Page selected")
	n.emit(Update{Reason: ReasonSelected, PageID: id})
	return true
}

// Click is a single activation of id. A page that is being edited keeps its
// edit and the selection stays as it is; any other open edit is committed
// before id is selected.
func (n *Navigator) Click(id string) bool {
	if n.editor.IsEditing(id) {
		return false
	}
	n.BlurRename()
	return n.Select(id)
}

// AddAfter inserts a new page after afterID.
func (n *Navigator) AddAfter(afterID string) (pages.Page, error) {
	p, err := n.inserter.AddAfter(afterID)
	if err != nil {
		n.log.WithError(err).WithField("after", afterID).Warn("Page insertion rejected")
		return pages.Page{}, err
	}
	return p, nil
}

// Append inserts a new page at the end.
func (n *Navigator) Append() (pages.Page, error) {
	return n.AddAfter(n.store.Last().ID)
}

// NextTitle is the title the next inserted page will get.
func (n *Navigator) NextTitle() string { return n.inserter.DefaultTitle() }
