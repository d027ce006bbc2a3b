package rename_test

import (
	"testing"

	"github.com/grovetools/pagenav/pkg/pages"
	"github.com/grovetools/pagenav/pkg/rename"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *pages.Store {
	t.Helper()
	s, err := pages.New([]pages.Page{
		{ID: "1", Title: "Info"},
		{ID: "2", Title: "Details"},
		{ID: "3", Title: "Other"},
	})
	require.NoError(t, err)
	return s
}

func title(s *pages.Store, id string) string {
	p, _ := s.Get(id)
	return p.Title
}

func TestEditor_Commit(t *testing.T) {
	tests := []struct {
		name       string
		draft      string
		wantResult rename.Result
		wantTitle  string
	}{
		{"new title", "Overview", rename.Renamed, "Overview"},
		{"trimmed", "  Overview \t", rename.Renamed, "Overview"},
		{"empty", "", rename.Blank, "Info"},
		{"whitespace", "   ", rename.Blank, "Info"},
		{"same title", "Info", rename.Unchanged, "Info"},
		{"same title after trim", " Info ", rename.Unchanged, "Info"},
		{"title of another page", "Details", rename.Renamed, "Details"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t)
			changes := 0
			s.Subscribe(pages.ListenerFunc(func(pages.Change) { changes++ }))
			e := rename.NewEditor(s)

			e.Begin("1")
			e.SetDraft(tt.draft)
			out := e.Commit()

			assert.Equal(t, tt.wantResult, out.Result)
			assert.Equal(t, "1", out.ID)
			assert.Equal(t, tt.wantTitle, out.Title)
			assert.Equal(t, tt.wantTitle, title(s, "1"))
			if tt.wantResult == rename.Renamed {
				assert.Equal(t, 1, changes)
			} else {
				assert.Zero(t, changes, "no observable mutation")
			}
			assert.False(t, e.Active())
			assert.Equal(t, rename.Viewing, e.State("1"))
		})
	}
}

func TestEditor_Cancel(t *testing.T) {
	s := newStore(t)
	e := rename.NewEditor(s)

	e.Begin("1")
	e.SetDraft("Overview")
	out := e.Cancel()

	assert.Equal(t, rename.Cancelled, out.Result)
	assert.Equal(t, "Info", out.Title)
	assert.Equal(t, "Info", title(s, "1"))
	assert.False(t, e.Active())

	assert.Equal(t, rename.NoEdit, e.Cancel().Result)
	assert.Equal(t, rename.NoEdit, e.Commit().Result)
}

func TestEditor_BeginInitializesDraft(t *testing.T) {
	s := newStore(t)
	e := rename.NewEditor(s)

	_, prev := e.Begin("2")
	assert.False(t, prev)
	sess, ok := e.Session()
	require.True(t, ok)
	assert.Equal(t, rename.Session{ID: "2", Draft: "Details", Original: "Details", InputFocused: true}, sess)
	assert.Equal(t, rename.Editing, e.State("2"))
	assert.Equal(t, rename.Viewing, e.State("1"))

	_, prev = e.Begin("2")
	assert.False(t, prev, "re-entering the same edit keeps the draft")

	_, prev = e.Begin("missing")
	assert.False(t, prev)
	assert.True(t, e.IsEditing("2"))
}

func TestEditor_BeginOtherPageCommitsFirst(t *testing.T) {
	s := newStore(t)
	e := rename.NewEditor(s)

	e.Begin("1")
	e.SetDraft("Overview")
	out, prev := e.Begin("2")

	require.True(t, prev)
	assert.Equal(t, rename.Outcome{ID: "1", Title: "Overview", Result: rename.Renamed}, out)
	assert.Equal(t, "Overview", title(s, "1"))
	assert.True(t, e.IsEditing("2"))
	assert.False(t, e.IsEditing("1"))
}

func TestEditor_SuppressesDragOnlyWhileInputFocused(t *testing.T) {
	s := newStore(t)
	e := rename.NewEditor(s)

	assert.False(t, e.SuppressesDrag("1"))
	e.Begin("1")
	assert.True(t, e.SuppressesDrag("1"))
	assert.False(t, e.SuppressesDrag("2"))

	e.SetInputFocused(false)
	assert.False(t, e.SuppressesDrag("1"))
}

func TestEditor_PageReorderedDuringEdit(t *testing.T) {
	s := newStore(t)
	e := rename.NewEditor(s)

	e.Begin("3")
	e.SetDraft("Ending")
	s.Reorder("3", "1")
	out := e.Commit()

	assert.Equal(t, rename.Renamed, out.Result)
	assert.Equal(t, "Ending", title(s, "3"))
	assert.Equal(t, 0, s.IndexOf("3"))
}

// fakeTitles lets a test remove a page mid-edit, which the real store cannot.
type fakeTitles map[string]string

func (f fakeTitles) Get(id string) (pages.Page, bool) {
	t, ok := f[id]
	return pages.Page{ID: id, Title: t}, ok
}

func (f fakeTitles) Rename(id, title string) bool {
	if _, ok := f[id]; !ok {
		return false
	}
	f[id] = title
	return true
}

func TestEditor_MissingPage(t *testing.T) {
	titles := fakeTitles{"1": "Info"}
	e := rename.NewEditor(titles)

	e.Begin("1")
	e.SetDraft("Overview")
	delete(titles, "1")

	out := e.Commit()
	assert.Equal(t, rename.Missing, out.Result)
	assert.Equal(t, "missing", out.Result.String())
	assert.False(t, e.Active())
}
