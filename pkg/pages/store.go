package pages

import (
	"fmt"
)

// ChangeKind identifies which store operation produced a Change.
type ChangeKind string

const (
	ChangeReordered ChangeKind = "reordered"
	ChangeRenamed   ChangeKind = "renamed"
	ChangeInserted  ChangeKind = "inserted"
)

// Change describes a successful mutation of the collection.
type Change struct {
	Kind ChangeKind
	// PageID is the page that was moved, renamed or inserted.
	PageID string
	// Pages is the resulting order. Listeners receive their own copy.
	Pages []Page
}

// Listener is notified synchronously after every successful mutation.
type Listener interface {
	PagesChanged(Change)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Change)

func (f ListenerFunc) PagesChanged(c Change) { f(c) }

// Store owns the ordered page list. It is the only place the list is mutated.
// A Store is not safe for concurrent use; it is driven from a single UI loop.
type Store struct {
	pages     []Page
	listeners []*subscription
	notifying bool
}

type subscription struct {
	l Listener
}

// New initializes a store with the caller's pages. The slice is copied.
func New(initial []Page) (*Store, error) {
	if len(initial) == 0 {
		return nil, ErrNoPages
	}
	seen := make(map[string]struct{}, len(initial))
	for i, p := range initial {
		if p.ID == "" {
			return nil, fmt.Errorf("page at index %d: %w", i, ErrEmptyID)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("page %q: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = struct{}{}
	}
	return &Store{pages: clonePages(initial)}, nil
}

// Subscribe registers a listener and returns a function that removes it.
func (s *Store) Subscribe(l Listener) func() {
	sub := &subscription{l: l}
	s.listeners = append(s.listeners, sub)
	return func() {
		for i, existing := range s.listeners {
			if existing == sub {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Pages returns a copy of the current order.
func (s *Store) Pages() []Page { return clonePages(s.pages) }

// Len returns the number of pages.
func (s *Store) Len() int { return len(s.pages) }

// IndexOf returns the position of id, or -1.
func (s *Store) IndexOf(id string) int {
	for i, p := range s.pages {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether id is in the collection.
func (s *Store) Contains(id string) bool { return s.IndexOf(id) >= 0 }

// Get returns the page with the given id.
func (s *Store) Get(id string) (Page, bool) {
	if i := s.IndexOf(id); i >= 0 {
		return s.pages[i], true
	}
	return Page{}, false
}

// First returns the page at the head of the collection.
func (s *Store) First() Page { return s.pages[0] }

// Last returns the page at the tail of the collection.
func (s *Store) Last() Page { return s.pages[len(s.pages)-1] }

// Reorder moves movedID into the slot currently held by targetID, shifting
// the pages in between by one. It reports whether the order changed.
func (s *Store) Reorder(movedID, targetID string) bool {
	if s.notifying || movedID == targetID {
		return false
	}
	from, to := s.IndexOf(movedID), s.IndexOf(targetID)
	if from < 0 || to < 0 {
		return false
	}

	moved := s.pages[from]
	if from < to {
		copy(s.pages[from:to], s.pages[from+1:to+1])
	} else {
		copy(s.pages[to+1:from+1], s.pages[to:from])
	}
	s.pages[to] = moved

	s.notify(Change{Kind: ChangeReordered, PageID: movedID})
	return true
}

// Rename sets the title of id. Titles are taken as given; trimming and blank
// checks belong to the rename editor. An empty or unchanged title is a no-op.
func (s *Store) Rename(id, title string) bool {
	if s.notifying || title == "" {
		return false
	}
	i := s.IndexOf(id)
	if i < 0 || s.pages[i].Title == title {
		return false
	}
	s.pages[i].Title = title
	s.notify(Change{Kind: ChangeRenamed, PageID: id})
	return true
}

// InsertAfter places p immediately after afterID.
func (s *Store) InsertAfter(afterID string, p Page) error {
	if s.notifying {
		return ErrReentrant
	}
	if p.ID == "" {
		return ErrEmptyID
	}
	if s.Contains(p.ID) {
		return fmt.Errorf("page %q: %w", p.ID, ErrDuplicateID)
	}
	i := s.IndexOf(afterID)
	if i < 0 {
		return fmt.Errorf("insert after %q: %w", afterID, ErrPageNotFound)
	}

	s.pages = append(s.pages, Page{})
	copy(s.pages[i+2:], s.pages[i+1:])
	s.pages[i+1] = p

	s.notify(Change{Kind: ChangeInserted, PageID: p.ID})
	return nil
}

func (s *Store) notify(c Change) {
	s.notifying = true
	defer func() { s.notifying = false }()

	// Listeners may unsubscribe while being notified.
	subs := append([]*subscription(nil), s.listeners...)
	for _, sub := range subs {
		c.Pages = clonePages(s.pages)
		sub.l.PagesChanged(c)
	}
}
