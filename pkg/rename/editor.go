// Package rename implements inline title editing: one page at a time moves
// from viewing to editing and back, either committing or discarding a draft.
package rename

import (
	"strings"

	"github.com/grovetools/pagenav/pkg/pages"
)

// State is the editor state for a page.
type State int

const (
	Viewing State = iota
	Editing
)

// Result classifies how an edit ended.
type Result int

const (
	// NoEdit means there was no edit in progress.
	NoEdit Result = iota
	Renamed
	// Blank means the trimmed draft was empty and the stored title was kept.
	Blank
	// Unchanged means the trimmed draft equalled the stored title.
	Unchanged
	// Missing means the page disappeared while it was being edited.
	Missing
	Cancelled
)

func (r Result) String() string {
	switch r {
	case Renamed:
		return "renamed"
	case Blank:
		return "blank"
	case Unchanged:
		return "unchanged"
	case Missing:
		return "missing"
	case Cancelled:
		return "cancelled"
	default:
		return "none"
	}
}

// Outcome is returned whenever an edit leaves the Editing state.
type Outcome struct {
	ID string
	// Title is the stored title once the edit is over.
	Title  string
	Result Result
}

// Session is the transient state of the page being edited.
type Session struct {
	ID       string
	Draft    string
	Original string
	// InputFocused is true while the text input owns keyboard focus.
	InputFocused bool
}

// Titles is the store surface the editor needs. *pages.Store satisfies it.
type Titles interface {
	Get(id string) (pages.Page, bool)
	Rename(id, title string) bool
}

// Editor holds at most one Session. Starting an edit while another page is
// being edited commits the other page first, the same as if its input had
// lost focus.
type Editor struct {
	titles  Titles
	session *Session
}

// NewEditor returns an editor in the Viewing state.
func NewEditor(titles Titles) *Editor {
	return &Editor{titles: titles}
}

// State returns the editor state for id.
func (e *Editor) State(id string) State {
	if e.IsEditing(id) {
		return Editing
	}
	return Viewing
}

// IsEditing reports whether id is the page being edited.
func (e *Editor) IsEditing(id string) bool {
	return e.session != nil && e.session.ID == id
}

// Active reports whether any page is being edited.
func (e *Editor) Active() bool { return e.session != nil }

// Session returns a copy of the current session.
func (e *Editor) Session() (Session, bool) {
	if e.session == nil {
		return Session{}, false
	}
	return *e.session, true
}

// Begin puts id into the Editing state with its current title as the draft.
// If a different page was being edited, that edit is committed and its
// outcome returned with prev set to true.
func (e *Editor) Begin(id string) (prevOutcome Outcome, prev bool) {
	p, ok := e.titles.Get(id)
	if !ok {
		return Outcome{}, false
	}
	if e.session != nil {
		if e.session.ID == id {
			return Outcome{}, false
		}
		prevOutcome, prev = e.Commit(), true
	}
	e.session = &Session{ID: id, Draft: p.Title, Original: p.Title, InputFocused: true}
	return prevOutcome, prev
}

// SetDraft replaces the draft text.
func (e *Editor) SetDraft(text string) {
	if e.session != nil {
		e.session.Draft = text
	}
}

// SetInputFocused records whether the edit input currently has focus.
func (e *Editor) SetInputFocused(focused bool) {
	if e.session != nil {
		e.session.InputFocused = focused
	}
}

// SuppressesDrag reports whether drags on id must be ignored so that
// pointer input goes to the text input instead.
func (e *Editor) SuppressesDrag(id string) bool {
	return e.IsEditing(id) && e.session.InputFocused
}

// Commit ends the edit and applies the trimmed draft when it is non-blank and
// differs from the stored title.
func (e *Editor) Commit() Outcome {
	if e.session == nil {
		return Outcome{Result: NoEdit}
	}
	s := *e.session
	e.session = nil

	current, ok := e.titles.Get(s.ID)
	if !ok {
		return Outcome{ID: s.ID, Result: Missing}
	}
	draft := strings.TrimSpace(s.Draft)
	switch {
	case draft == "":
		return Outcome{ID: s.ID, Title: current.Title, Result: Blank}
	case draft == current.Title:
		return Outcome{ID: s.ID, Title: current.Title, Result: Unchanged}
	}
	if !e.titles.Rename(s.ID, draft) {
		// The store refused, e.g. during a change notification.
		return Outcome{ID: s.ID, Title: current.Title, Result: Unchanged}
	}
	return Outcome{ID: s.ID, Title: draft, Result: Renamed}
}

// Cancel ends the edit and discards the draft.
func (e *Editor) Cancel() Outcome {
	if e.session == nil {
		return Outcome{Result: NoEdit}
	}
	s := *e.session
	e.session = nil
	title := s.Original
	if p, ok := e.titles.Get(s.ID); ok {
		title = p.Title
	}
	return Outcome{ID: s.ID, Title: title, Result: Cancelled}
}
