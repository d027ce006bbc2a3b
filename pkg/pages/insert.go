package pages

import "strconv"

// Inserter creates new pages and places them in the store.
type Inserter struct {
	store *Store
	ids   IDGenerator
}

// NewInserter returns an Inserter. A nil generator falls back to UUIDGenerator.
func NewInserter(store *Store, ids IDGenerator) *Inserter {
	if ids == nil {
		ids = UUIDGenerator
	}
	return &Inserter{store: store, ids: ids}
}

// DefaultTitle is the title given to the next inserted page. It counts the
// current pages, so titles can repeat after renames and insertions.
func (in *Inserter) DefaultTitle() string {
	return "Page " + strconv.Itoa(in.store.Len()+1)
}

// AddAfter inserts a fresh page right after afterID. Selection and rename
// state are left alone.
func (in *Inserter) AddAfter(afterID string) (Page, error) {
	p := Page{ID: in.ids.NewID(), Title: in.DefaultTitle()}
	if err := in.store.InsertAfter(afterID, p); err != nil {
		return Page{}, err
	}
	return p, nil
}

// Append inserts a fresh page after the last one.
func (in *Inserter) Append() (Page, error) {
	return in.AddAfter(in.store.Last().ID)
}
