package pages_test

import (
	"fmt"
	"testing"

	"github.com/grovetools/pagenav/pkg/pages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs(prefix string) pages.IDGenerator {
	n := 0
	return pages.IDGeneratorFunc(func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	})
}

func TestSelection(t *testing.T) {
	s, err := pages.New(defaultPages())
	require.NoError(t, err)

	sel := pages.NewSelection(s, "1")
	assert.Equal(t, "1", sel.Active())

	assert.True(t, sel.Select("3"))
	assert.Equal(t, "3", sel.Active())
	assert.False(t, sel.Select("3"), "re-selecting is not a change")
	assert.False(t, sel.Select("missing"))
	assert.Equal(t, "3", sel.Active())
}

func TestSelection_DefaultsToFirstPage(t *testing.T) {
	s, err := pages.New(defaultPages())
	require.NoError(t, err)

	assert.Equal(t, "1", pages.NewSelection(s, "").Active())
	assert.Equal(t, "1", pages.NewSelection(s, "unknown").Active())
}

func TestSelection_StaysValidAcrossMutations(t *testing.T) {
	s, err := pages.New(defaultPages())
	require.NoError(t, err)
	sel := pages.NewSelection(s, "2")
	in := pages.NewInserter(s, sequentialIDs("n"))

	s.Reorder("2", "4")
	_, err = in.AddAfter("2")
	require.NoError(t, err)
	s.Reorder("1", "2")
	_, err = in.Append()
	require.NoError(t, err)

	assert.Equal(t, "2", sel.Active())
	assert.True(t, s.Contains(sel.Active()))
}

func TestSelection_RedirectsWhenActivePageVanishes(t *testing.T) {
	s, err := pages.New(defaultPages())
	require.NoError(t, err)
	sel := pages.NewSelection(s, "3")

	sel.PagesChanged(pages.Change{Pages: []pages.Page{{ID: "1"}, {ID: "2"}}})
	assert.Equal(t, "1", sel.Active())
}

func TestSelection_Close(t *testing.T) {
	s, err := pages.New(defaultPages())
	require.NoError(t, err)
	sel := pages.NewSelection(s, "1")
	sel.Close()
	sel.Close()

	s.Reorder("1", "2")
	assert.Equal(t, "1", sel.Active())
}
