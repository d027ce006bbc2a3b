package pages

// Selection tracks the active page. It listens to the store so the active id
// always references a page that exists.
type Selection struct {
	store  *Store
	active string
	unsub  func()
}

// NewSelection starts with activeID selected, or the first page when
// activeID is empty or unknown.
func NewSelection(store *Store, activeID string) *Selection {
	sel := &Selection{store: store, active: activeID}
	if !store.Contains(activeID) {
		sel.active = store.First().ID
	}
	sel.unsub = store.Subscribe(sel)
	return sel
}

// Active returns the id of the active page.
func (s *Selection) Active() string { return s.active }

// Select makes id active. It reports whether the selection changed.
func (s *Selection) Select(id string) bool {
	if id == s.active || !s.store.Contains(id) {
		return false
	}
	s.active = id
	return true
}

// PagesChanged re-validates the active id after a mutation. No operation in
// this package removes pages, so the redirect only fires if one is added.
func (s *Selection) PagesChanged(c Change) {
	for _, p := range c.Pages {
		if p.ID == s.active {
			return
		}
	}
	if len(c.Pages) > 0 {
		s.active = c.Pages[0].ID
	}
}

// Close detaches the selection from its store.
func (s *Selection) Close() {
	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}
}
