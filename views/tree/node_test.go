package treeview

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valyala/fastjson"
)

func parse(t *testing.T, s string) *fastjson.Value {
	t.Helper()
	v, err := fastjson.Parse(s)
	require.NoError(t, err)
	return v
}

func TestBuildObjectKeyOrder(t *testing.T) {
	root := Build(parse(t, `{"z":1,"a":2,"m":3}`))
	require.Len(t, root.Children, 3)
	require.Equal(t, "z", root.Children[0].Key)
	require.Equal(t, "a", root.Children[1].Key)
	require.Equal(t, "m", root.Children[2].Key)
}

func TestBuildPaths(t *testing.T) {
	root := Build(parse(t, `{"a":{"b":[10,20]}}`))
	a := root.Children[0]
	b := a.Children[0]
	require.Equal(t, "root.a", a.Path)
	require.Equal(t, "root.a.b", b.Path)
	require.Equal(t, "root.a.b[0]", b.Children[0].Path)
	require.Equal(t, "root.a.b[1]", b.Children[1].Path)
}

func TestBuildDepth(t *testing.T) {
	root := Build(parse(t, `{"a":[1]}`))
	require.Equal(t, 0, root.Depth)
	require.Equal(t, 1, root.Children[0].Depth)
	require.Equal(t, 2, root.Children[0].Children[0].Depth)
}

func TestDefaultCollapsedRule(t *testing.T) {
	require.False(t, DefaultCollapsed(parse(t, `[1,2,3,4,5]`)))
	require.True(t, DefaultCollapsed(parse(t, `[1,2,3,4,5,6]`)))
	require.False(t, DefaultCollapsed(parse(t, `{"a":1,"b":2,"c":3,"d":4,"e":5,"f":6,"g":7}`)))
	require.False(t, DefaultCollapsed(parse(t, `"text"`)))
	require.False(t, DefaultCollapsed(parse(t, `null`)))
}

func TestBuildAppliesCollapseRuleEverywhere(t *testing.T) {
	root := Build(parse(t, `{"big":[1,2,3,4,5,6],"small":[1,2],"obj":{"x":1}}`))
	require.False(t, root.Collapsed)
	require.True(t, root.Children[0].Collapsed)
	require.False(t, root.Children[1].Collapsed)
	require.False(t, root.Children[2].Collapsed)
}

func TestBuildRootCollapseRule(t *testing.T) {
	require.True(t, Build(parse(t, `[1,2,3,4,5,6]`)).Collapsed)
	require.False(t, Build(parse(t, `[1,2,3]`)).Collapsed)
	require.False(t, Build(parse(t, `{"a":1}`)).Collapsed)
}

func TestLeafFormatting(t *testing.T) {
	root := Build(parse(t, `{"s":"a \"q\" b","n":1e3,"b":true,"z":null}`))
	require.Equal(t, `"a "q" b"`, root.Children[0].ValueStr)
	require.Equal(t, "1e3", root.Children[1].ValueStr)
	require.Equal(t, "true", root.Children[2].ValueStr)
	require.Equal(t, "null", root.Children[3].ValueStr)
}

func TestLabels(t *testing.T) {
	root := Build(parse(t, `{"arr":[1,2,3],"obj":{},"n":7}`))
	require.Equal(t, "arr [3 items]", root.Children[0].Label())
	require.Equal(t, "obj", root.Children[1].Label())
	require.Equal(t, "n: 7", root.Children[2].Label())
}

func TestRebuildResetsCollapseState(t *testing.T) {
	v := parse(t, `{"big":[1,2,3,4,5,6]}`)
	root := Build(v)
	root.Children[0].Collapsed = false

	again := Build(v)
	require.True(t, again.Children[0].Collapsed)
}
