package navigator_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/pagenav/pkg/gesture"
	"github.com/grovetools/pagenav/pkg/navigator"
	"github.com/grovetools/pagenav/pkg/pages"
	"github.com/grovetools/pagenav/pkg/rename"
)

func quietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

type fixture struct {
	nav     *navigator.Navigator
	updates []navigator.Update
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{}
	n := 0
	nav, err := navigator.New([]pages.Page{
		{ID: "1", Title: "Info"},
		{ID: "2", Title: "Details"},
		{ID: "3", Title: "Other"},
		{ID: "4", Title: "Ending"},
	}, navigator.Options{
		IDs: pages.IDGeneratorFunc(func() string {
			n++
			return "new-" + string(rune('a'+n-1))
		}),
		OnChange: func(u navigator.Update) { f.updates = append(f.updates, u) },
		Logger:   quietLogger(),
	})
	require.NoError(t, err)
	t.Cleanup(nav.Close)

	slots := make([]gesture.Slot, 0, 4)
	for i, p := range nav.Pages() {
		slots = append(slots, gesture.Slot{ID: p.ID, Rect: gesture.Rect{X: float64(i * 100), W: 100, H: 40}})
	}
	nav.SetSlots(slots)
	f.nav = nav
	return f
}

func (f *fixture) order() []string {
	var out []string
	for _, p := range f.nav.Pages() {
		out = append(out, p.ID)
	}
	return out
}

func (f *fixture) title(id string) string {
	p, _ := f.nav.Page(id)
	return p.Title
}

func (f *fixture) last() navigator.Update {
	if len(f.updates) == 0 {
		return navigator.Update{}
	}
	return f.updates[len(f.updates)-1]
}

func TestNew_RejectsInvalidPages(t *testing.T) {
	_, err := navigator.New(nil, navigator.Options{Logger: quietLogger()})
	assert.ErrorIs(t, err, pages.ErrNoPages)
}

func TestNew_DefaultsActiveToFirstPage(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, "1", f.nav.Active())
	assert.Equal(t, 4, f.nav.Len())
}

func TestDragReorderKeepsSelection(t *testing.T) {
	f := newFixture(t)

	require.True(t, f.nav.PointerDown("1", gesture.Point{X: 50, Y: 20}))
	f.nav.PointerMove(gesture.Point{X: 70, Y: 20})
	require.True(t, f.nav.Dragging())
	f.nav.PointerMove(gesture.Point{X: 250, Y: 20})
	res := f.nav.PointerUp(gesture.Point{X: 250, Y: 20})

	assert.True(t, res.Reordered)
	assert.Equal(t, []string{"2", "3", "1", "4"}, f.order())
	assert.Equal(t, "1", f.nav.Active())
	assert.Equal(t, navigator.ReasonReordered, f.last().Reason)
	assert.Equal(t, "1", f.last().ActiveID)
	assert.Len(t, f.last().Pages, 4)
}

func TestWhitespaceRenameKeepsTitle(t *testing.T) {
	f := newFixture(t)

	require.True(t, f.nav.BeginRename("2"))
	f.nav.SetDraft("  ")
	out := f.nav.CommitRename()

	assert.Equal(t, rename.Blank, out.Result)
	assert.Equal(t, "Details", f.title("2"))
	assert.Empty(t, f.updates)
}

func TestAddAfterLastPage(t *testing.T) {
	f := newFixture(t)
	f.nav.KeyMove("1", 1)
	f.nav.KeyMove("1", 1)
	require.Equal(t, []string{"2", "3", "1", "4"}, f.order())

	p, err := f.nav.AddAfter("4")
	require.NoError(t, err)

	assert.Equal(t, "Page 5", p.Title)
	assert.Equal(t, 5, f.nav.Len())
	assert.Equal(t, 4, f.nav.IndexOf(p.ID))
	assert.Equal(t, "1", f.nav.Active())
	assert.Equal(t, navigator.ReasonInserted, f.last().Reason)
	assert.Equal(t, p.ID, f.last().PageID)
	assert.Equal(t, "Page 6", f.nav.NextTitle())
}

func TestAppendAndUnknownAnchor(t *testing.T) {
	f := newFixture(t)

	p, err := f.nav.Append()
	require.NoError(t, err)
	assert.Equal(t, p.ID, f.order()[4])

	_, err = f.nav.AddAfter("missing")
	assert.ErrorIs(t, err, pages.ErrPageNotFound)
	assert.Equal(t, 5, f.nav.Len())
}

func TestRenameEnterAndEscape(t *testing.T) {
	t.Run("enter commits", func(t *testing.T) {
		f := newFixture(t)
		f.nav.BeginRename("1")
		f.nav.SetDraft("Overview")
		out := f.nav.CommitRename()

		assert.Equal(t, rename.Renamed, out.Result)
		assert.Equal(t, "Overview", f.title("1"))
		assert.Equal(t, navigator.ReasonRenamed, f.last().Reason)
	})

	t.Run("escape discards", func(t *testing.T) {
		f := newFixture(t)
		f.nav.BeginRename("1")
		f.nav.SetDraft("Overview")
		out := f.nav.CancelRename()

		assert.Equal(t, rename.Cancelled, out.Result)
		assert.Equal(t, "Info", f.title("1"))
		_, editing := f.nav.Editing()
		assert.False(t, editing)
	})
}

func TestClick(t *testing.T) {
	t.Run("selects", func(t *testing.T) {
		f := newFixture(t)
		assert.True(t, f.nav.Click("3"))
		assert.Equal(t, "3", f.nav.Active())
		assert.Equal(t, navigator.ReasonSelected, f.last().Reason)
		assert.False(t, f.nav.Click("3"), "already active")
	})

	t.Run("on the editing page does nothing", func(t *testing.T) {
		f := newFixture(t)
		f.nav.BeginRename("2")
		assert.False(t, f.nav.Click("2"))
		assert.Equal(t, "1", f.nav.Active())
		assert.True(t, f.nav.IsEditing("2"))
	})

	t.Run("elsewhere commits then selects", func(t *testing.T) {
		f := newFixture(t)
		f.nav.BeginRename("2")
		f.nav.SetDraft("Specs")
		assert.True(t, f.nav.Click("4"))

		assert.Equal(t, "Specs", f.title("2"))
		assert.Equal(t, "4", f.nav.Active())
		assert.False(t, f.nav.IsEditing("2"))
		require.Len(t, f.updates, 2)
		assert.Equal(t, navigator.ReasonRenamed, f.updates[0].Reason)
		assert.Equal(t, navigator.ReasonSelected, f.updates[1].Reason)
	})
}

func TestPointerClickSelects(t *testing.T) {
	f := newFixture(t)

	require.True(t, f.nav.PointerDown("2", gesture.Point{X: 150, Y: 20}))
	f.nav.PointerMove(gesture.Point{X: 155, Y: 22})
	res := f.nav.PointerUp(gesture.Point{X: 155, Y: 22})

	assert.Equal(t, gesture.ResultClick, res.Kind)
	assert.Equal(t, "2", f.nav.Active())
}

func TestPointerOnEditingPageIsSuppressed(t *testing.T) {
	f := newFixture(t)
	f.nav.BeginRename("2")
	f.nav.SetDraft("Specs")

	assert.False(t, f.nav.PointerDown("2", gesture.Point{X: 150, Y: 20}))
	assert.True(t, f.nav.IsEditing("2"))

	require.True(t, f.nav.PointerDown("3", gesture.Point{X: 250, Y: 20}))
	assert.False(t, f.nav.IsEditing("2"), "pressing another page commits the edit")
	assert.Equal(t, "Specs", f.title("2"))
}

func TestBeginRenameDuringDragIsRejected(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.nav.KeyPickUp("1"))
	assert.False(t, f.nav.BeginRename("1"))

	f.nav.KeyStep(1)
	res := f.nav.KeyDrop()
	assert.True(t, res.Reordered)
	assert.Equal(t, []string{"2", "1", "3", "4"}, f.order())
	assert.True(t, f.nav.BeginRename("1"))
}

func TestKeyboardDragDisabledWhileEditing(t *testing.T) {
	f := newFixture(t)
	f.nav.BeginRename("1")

	assert.False(t, f.nav.KeyPickUp("2"))
	assert.Equal(t, gesture.ResultNone, f.nav.KeyMove("2", 1).Kind)
	assert.Equal(t, []string{"1", "2", "3", "4"}, f.order())
}

func TestBlur(t *testing.T) {
	f := newFixture(t)
	f.nav.BeginRename("3")
	f.nav.SetDraft("Misc")
	f.nav.Blur()

	assert.Equal(t, "Misc", f.title("3"))
	_, editing := f.nav.Editing()
	assert.False(t, editing)

	require.True(t, f.nav.PointerDown("1", gesture.Point{X: 50, Y: 20}))
	f.nav.PointerMove(gesture.Point{X: 350, Y: 20})
	st, ok := f.nav.DragState()
	require.True(t, ok)
	assert.Equal(t, "Info", st.Snapshot.Title)

	f.nav.Blur()
	assert.False(t, f.nav.Dragging())
	assert.Equal(t, gesture.Idle, f.nav.Phase())
	assert.Equal(t, []string{"1", "2", "3", "4"}, f.order())
}

func TestUpdatesAreCopies(t *testing.T) {
	f := newFixture(t)
	f.nav.Click("2")
	require.NotEmpty(t, f.updates)

	f.updates[0].Pages[0].Title = "mutated"
	assert.Equal(t, "Info", f.title("1"))
}

func TestKeyboardReorderWithoutSlots(t *testing.T) {
	nav, err := navigator.New([]pages.Page{
		{ID: "1", Title: "Info"},
		{ID: "2", Title: "Details"},
		{ID: "3", Title: "Other"},
	}, navigator.Options{Logger: quietLogger()})
	require.NoError(t, err)
	t.Cleanup(nav.Close)
	require.Empty(t, nav.Slots())

	res := nav.KeyMove("1", 1)
	assert.Equal(t, gesture.ResultDrop, res.Kind)

	require.True(t, nav.KeyPickUp("1"))
	nav.KeyStep(1)
	nav.KeyDrop()

	var order []string
	for _, p := range nav.Pages() {
		order = append(order, p.ID)
	}
	assert.Equal(t, []string{"2", "3", "1"}, order)

	// Inserting a page regrows the fallback row.
	added, err := nav.Append()
	require.NoError(t, err)
	assert.Equal(t, gesture.ResultDrop, nav.KeyMove(added.ID, -1).Kind)
	assert.Equal(t, added.ID, nav.Pages()[2].ID)

	// Geometry from a view replaces the fallback.
	nav.SetSlots(gesture.Row([]string{"2", "3", added.ID, "1"}, 100, 40))
	assert.Equal(t, 100.0, nav.Slots()[1].Rect.X)
}
