package workbenchview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	statusbarview "jsonpeek/views/statusbar"
)

func newTestModel(t *testing.T, repair bool) *Model {
	t.Helper()
	return New(120, 30, Options{Repair: repair})
}

// runStatus drains a returned command until the statusbar result surfaces.
func runStatus(t *testing.T, cmd tea.Cmd) statusbarview.ResultMsg {
	t.Helper()
	require.NotNil(t, cmd)
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case statusbarview.ResultMsg:
			return msg
		case tea.BatchMsg:
			queue = append(queue, msg...)
		}
	}
	t.Fatal("no ResultMsg produced")
	return statusbarview.ResultMsg{}
}

func TestLoadTextParsesImmediately(t *testing.T) {
	m := newTestModel(t, false)
	_, cmd := m.Update(LoadTextMsg{Text: `{"x":1}`})
	res := runStatus(t, cmd)
	require.Empty(t, res.Err)
	require.Equal(t, "object, 1 keys", res.Summary)
	require.NotNil(t, m.tree.Root)
}

func TestParseFailureClearsTree(t *testing.T) {
	m := newTestModel(t, false)
	_, _ = m.Update(LoadTextMsg{Text: `{"x":1}`})
	_, cmd := m.Update(LoadTextMsg{Text: `{bad`})
	res := runStatus(t, cmd)
	require.NotEmpty(t, res.Err)
	require.Nil(t, m.tree.Root)
}

func TestRepairToggleReparses(t *testing.T) {
	m := newTestModel(t, false)
	_, cmd := m.Update(LoadTextMsg{Text: `{"a":1,}`})
	res := runStatus(t, cmd)
	require.NotEmpty(t, res.Err)

	on := true
	_, cmd = m.Update(SetRepairMsg{Enable: &on})
	res = runStatus(t, cmd)
	require.Empty(t, res.Err)
	require.Equal(t, "object, 1 keys", res.Summary)
	require.True(t, res.Repair)

	// Enabling again is a no-op.
	_, cmd = m.Update(SetRepairMsg{Enable: &on})
	require.Nil(t, cmd)
}

func TestDebounceDropsStaleGeneration(t *testing.T) {
	m := newTestModel(t, false)
	m.editor.SetValue(`{"x":1}`)

	// Two schedules in a row: only the newest generation may evaluate.
	_ = m.schedule()
	stale := m.gen
	_ = m.schedule()
	require.True(t, m.pending)

	_, cmd := m.Update(debounceMsg{gen: stale})
	require.Nil(t, cmd)
	require.False(t, m.hasResult)
	require.True(t, m.pending)

	_, cmd = m.Update(debounceMsg{gen: m.gen})
	res := runStatus(t, cmd)
	require.Empty(t, res.Err)
	require.True(t, m.hasResult)
	require.False(t, m.pending)
}

func TestUnchangedContentSkipsReparse(t *testing.T) {
	m := newTestModel(t, false)
	_, _ = m.Update(LoadTextMsg{Text: `{"x":1}`})
	firstRoot := m.tree.Root

	// Re-evaluating identical content must not rebuild the tree.
	_, cmd := m.Update(debounceMsg{gen: m.gen})
	res := runStatus(t, cmd)
	require.Empty(t, res.Err)
	require.Same(t, firstRoot, m.tree.Root)
}

func TestClearGoesIdle(t *testing.T) {
	m := newTestModel(t, false)
	_, _ = m.Update(LoadTextMsg{Text: `{"x":1}`})
	_, cmd := m.Update(ClearMsg{})
	res := runStatus(t, cmd)
	require.Empty(t, res.Err)
	require.Empty(t, res.Summary)
	require.Nil(t, m.tree.Root)
	require.Equal(t, "", m.editor.Value())
}

func TestToggleRawMovesFocusOut(t *testing.T) {
	m := newTestModel(t, false)
	m.setFocus(focusRaw)
	_, _ = m.Update(ToggleRawMsg{})
	require.False(t, m.showRaw)
	require.Equal(t, focusEditor, m.focus)

	_, _ = m.Update(ToggleRawMsg{})
	require.True(t, m.showRaw)
}

func TestJSONLinesEndToEnd(t *testing.T) {
	m := newTestModel(t, false)
	_, cmd := m.Update(LoadTextMsg{Text: "{\"a\":1}\n{\"a\":2}"})
	res := runStatus(t, cmd)
	require.Empty(t, res.Err)
	require.Equal(t, "array, 2 items", res.Summary)

	// Tree root is the synthesized array with one child per line.
	require.Len(t, m.tree.Root.Children, 2)
}
