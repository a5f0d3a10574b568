package treeview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func paths(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Path)
	}
	return out
}

func TestVisibleListFollowsCollapseState(t *testing.T) {
	m := New(80, 20)
	m.SetValue(parse(t, `{"a":{"x":1},"b":2}`))
	require.Equal(t, []string{"root", "root.a", "root.a.x", "root.b"}, paths(m.Visible))

	// Collapse "a": its subtree disappears but keeps its own flags.
	m.Cursor = 1
	m.Toggle()
	require.Equal(t, []string{"root", "root.a", "root.b"}, paths(m.Visible))
	require.False(t, m.Root.Children[0].Children[0].Collapsed)

	m.Cursor = 1
	m.Toggle()
	require.Equal(t, []string{"root", "root.a", "root.a.x", "root.b"}, paths(m.Visible))
}

func TestToggleLeafIsNoop(t *testing.T) {
	m := New(80, 20)
	m.SetValue(parse(t, `{"b":2}`))
	m.Cursor = 1
	m.Toggle()
	require.Equal(t, []string{"root", "root.b"}, paths(m.Visible))
}

func TestToggleIndependence(t *testing.T) {
	m := New(80, 20)
	m.SetValue(parse(t, `{"a":{"x":1},"b":{"y":2}}`))
	m.Cursor = 1 // root.a
	m.Toggle()

	// Sibling "b" is untouched.
	require.False(t, m.Root.Children[1].Collapsed)
	require.Equal(t, []string{"root", "root.a", "root.b", "root.b.y"}, paths(m.Visible))
}

func TestLargeArrayHiddenUntilExpanded(t *testing.T) {
	m := New(80, 20)
	m.SetValue(parse(t, `{"big":[1,2,3,4,5,6]}`))
	require.Equal(t, []string{"root", "root.big"}, paths(m.Visible))

	m.Cursor = 1
	m.Toggle()
	require.Len(t, m.Visible, 8)
}

func TestExpandAndCollapseAll(t *testing.T) {
	m := New(80, 20)
	m.SetValue(parse(t, `{"big":[1,2,3,4,5,6],"o":{"x":1}}`))

	m.ExpandAll()
	require.Len(t, m.Visible, 10)

	m.CollapseAll()
	require.Equal(t, []string{"root", "root.big", "root.o"}, paths(m.Visible))
	require.False(t, m.Root.Collapsed)
}

func TestMoveCursorClamps(t *testing.T) {
	m := New(80, 20)
	m.SetValue(parse(t, `{"a":1,"b":2}`))
	m.MoveCursor(-5)
	require.Equal(t, 0, m.Cursor)
	m.MoveCursor(99)
	require.Equal(t, 2, m.Cursor)
}

func TestSearchFiltersAndExpands(t *testing.T) {
	m := New(80, 20)
	m.SetValue(parse(t, `{"big":[1,2,3,4,5,6],"user":{"name":"ada"},"other":7}`))

	m.applySearch("ada")
	require.Equal(t, []string{"root", "root.user", "root.user.name"}, paths(m.Visible))

	// Searching inside a collapsed array expands its ancestors.
	m.applySearch("6")
	require.Contains(t, paths(m.Visible), "root.big[5]")

	m.clearSearch()
	require.Equal(t, "", m.SearchTerm)
	require.Contains(t, paths(m.Visible), "root.other")
}

func TestSetValueResetsSearchAndCursor(t *testing.T) {
	m := New(80, 20)
	m.SetValue(parse(t, `{"user":{"name":"ada"}}`))
	m.applySearch("ada")
	m.Cursor = 2

	m.SetValue(parse(t, `{"x":1}`))
	require.Equal(t, "", m.SearchTerm)
	require.Equal(t, 0, m.Cursor)
	require.Equal(t, []string{"root", "root.x"}, paths(m.Visible))
}

func TestClear(t *testing.T) {
	m := New(80, 20)
	m.SetValue(parse(t, `{"x":1}`))
	m.Clear()
	require.Nil(t, m.Root)
	require.Empty(t, m.Visible)
}
