package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/rowdrawer/internal/drawer"
)

func testOptions() DrawerTableOptions {
	return DrawerTableOptions{
		CollapsedHeight: 3,
		ExpandedHeight:  20,
		MarkdownStyle:   "notty",
		Width:           100,
		Height:          60,
	}
}

func newTestModel(t *testing.T, n int) DrawerTableModel {
	t.Helper()
	m, err := NewDrawerTableModel(context.Background(), GenerateRows(n, 1), testOptions())
	require.NoError(t, err)
	return m
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m DrawerTableModel, msg tea.Msg) (DrawerTableModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	dm, ok := next.(DrawerTableModel)
	require.True(t, ok)
	return dm, cmd
}

// TestNewDrawerTableModel verifies the initial view lists rows collapsed.
func TestNewDrawerTableModel(t *testing.T) {
	m := newTestModel(t, 3)

	assert.Nil(t, m.Init())
	view := m.View()
	assert.Contains(t, view, "Row drawer demo")
	assert.Contains(t, view, "Toggle")
	assert.Contains(t, view, "Name")
	assert.Contains(t, view, m.rows[0].Name)
	assert.Contains(t, view, "0 of 3 rows expanded")
	assert.Contains(t, view, IconCollapsed+" open")
	assert.NotContains(t, view, m.rows[0].ID.String())
}

// TestNewDrawerTableModel_InvalidDimensions verifies bad heights are rejected.
func TestNewDrawerTableModel_InvalidDimensions(t *testing.T) {
	opts := testOptions()
	opts.CollapsedHeight = 10
	opts.ExpandedHeight = 5

	_, err := NewDrawerTableModel(context.Background(), GenerateRows(2, 1), opts)
	require.ErrorIs(t, err, drawer.ErrInvalidDimensions)
}

// TestDrawerTableModel_InstantToggle verifies enter opens and closes the selected drawer.
func TestDrawerTableModel_InstantToggle(t *testing.T) {
	m := newTestModel(t, 3)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.True(t, m.Controller().Expanded(0))
	assert.Equal(t, 20, m.list.RowOffset(1))

	view := m.View()
	assert.Contains(t, view, "1 of 3 rows expanded")
	assert.Contains(t, view, IconExpanded+" close")
	assert.Contains(t, view, m.rows[0].ID.String())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Controller().Expanded(0))
	assert.Equal(t, 3, m.list.RowOffset(1))
}

// TestDrawerTableModel_NavigateThenToggle verifies toggles follow the selection.
func TestDrawerTableModel_NavigateThenToggle(t *testing.T) {
	m := newTestModel(t, 3)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.list.Selected())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Controller().Expanded(0))
	assert.True(t, m.Controller().Expanded(1))
}

// TestDrawerTableModel_AnimatedToggle verifies the frame loop runs the animation to completion.
func TestDrawerTableModel_AnimatedToggle(t *testing.T) {
	m := newTestModel(t, 3)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.NotNil(t, cmd)
	assert.True(t, m.Controller().Animating())
	assert.True(t, m.Controller().Expanded(0))
	assert.Contains(t, m.View(), "animating")

	frame := drawer.FrameMsg{ID: m.Controller().Scheduler().ID(), Time: time.Now().Add(time.Second)}
	m, cmd = update(t, m, frame)
	assert.Nil(t, cmd)
	assert.False(t, m.Controller().Animating())
	assert.Equal(t, 20, m.Controller().RowHeight(0))
	assert.Equal(t, 20, m.list.RowOffset(1))
	assert.NotContains(t, m.View(), "animating")
}

// TestDrawerTableModel_AnimateKeyAlias verifies "a" also animates.
func TestDrawerTableModel_AnimateKeyAlias(t *testing.T) {
	m := newTestModel(t, 2)

	m, cmd := update(t, m, runeKey("a"))
	assert.NotNil(t, cmd)
	assert.True(t, m.Controller().AnimatingRow(0))
}

// TestDrawerTableModel_ExpandCollapseAll verifies the bulk toggles.
func TestDrawerTableModel_ExpandCollapseAll(t *testing.T) {
	m := newTestModel(t, 5)

	m, _ = update(t, m, runeKey("e"))
	assert.Equal(t, 5, m.Controller().ExpandedCount())
	assert.Contains(t, m.View(), "5 of 5 rows expanded")

	m, _ = update(t, m, runeKey("c"))
	assert.Equal(t, 0, m.Controller().ExpandedCount())
	assert.Equal(t, 3, m.list.RowOffset(1))
}

// TestDrawerTableModel_CollapseAllDuringAnimation verifies a row animating open is collapsed.
func TestDrawerTableModel_CollapseAllDuringAnimation(t *testing.T) {
	m := newTestModel(t, 2)

	m, _ = update(t, m, runeKey(" "))
	require.True(t, m.Controller().Animating())

	m, _ = update(t, m, runeKey("c"))
	assert.False(t, m.Controller().Animating())
	assert.False(t, m.Controller().Expanded(0))
	assert.Equal(t, 3, m.Controller().RowHeight(0))
}

// TestDrawerTableModel_StatusFormatsCounts verifies thousands separators in the status line.
func TestDrawerTableModel_StatusFormatsCounts(t *testing.T) {
	opts := testOptions()
	opts.MarkdownStyle = "notty"
	m, err := NewDrawerTableModel(context.Background(), GenerateRows(1200, 1), opts)
	require.NoError(t, err)

	assert.Contains(t, m.View(), "0 of 1,200 rows expanded")
}

// TestDrawerTableModel_Help verifies ? switches between short and full help.
func TestDrawerTableModel_Help(t *testing.T) {
	m := newTestModel(t, 2)
	short := m.View()
	assert.NotContains(t, short, "collapse all")

	m, _ = update(t, m, runeKey("?"))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "collapse all")
}

// TestDrawerTableModel_WindowSize verifies resizing shrinks the list by the chrome height.
func TestDrawerTableModel_WindowSize(t *testing.T) {
	m := newTestModel(t, 10)

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
	assert.Nil(t, cmd)
	assert.Equal(t, 80, m.list.Width())
	assert.Equal(t, 20-2-lineCount(m.help.View(m.keys)), m.list.Height())
	assert.LessOrEqual(t, len(strings.Split(m.View(), "\n")), 20)
}

// TestDrawerTableModel_Quit verifies q quits and clears the view.
func TestDrawerTableModel_Quit(t *testing.T) {
	m := newTestModel(t, 2)

	m, cmd := update(t, m, runeKey("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

// TestDrawerTableModel_Empty verifies an empty table ignores toggles.
func TestDrawerTableModel_Empty(t *testing.T) {
	m := newTestModel(t, 0)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	require.NoError(t, m.err)
	assert.Contains(t, m.View(), "0 of 0 rows expanded")
	assert.Contains(t, m.View(), "No rows to display")
}

// TestDrawerTableModel_ForeignFrame verifies frames of another scheduler are ignored.
func TestDrawerTableModel_ForeignFrame(t *testing.T) {
	m := newTestModel(t, 2)

	m, _ = update(t, m, runeKey(" "))
	frame := drawer.FrameMsg{ID: m.Controller().Scheduler().ID() + 1000, Time: time.Now().Add(time.Second)}
	m, cmd := update(t, m, frame)
	assert.Nil(t, cmd)
	assert.True(t, m.Controller().Animating())
}

// TestDrawerTableModel_MarkdownFallback verifies an unknown style shows the markdown source.
func TestDrawerTableModel_MarkdownFallback(t *testing.T) {
	opts := testOptions()
	opts.MarkdownStyle = "/nonexistent/style.json"
	m, err := NewDrawerTableModel(context.Background(), GenerateRows(1, 1), opts)
	require.NoError(t, err)
	assert.Nil(t, m.content.markdown)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "**"+m.rows[0].Name+"**")
}

// TestRenderSnapshot verifies snapshots render the requested rows expanded.
func TestRenderSnapshot(t *testing.T) {
	rows := GenerateRows(4, 7)

	out, err := RenderSnapshot(context.Background(), rows, testOptions(), []int{1})
	require.NoError(t, err)
	assert.NotContains(t, out, "Row drawer demo")
	assert.NotContains(t, out, rows[0].ID.String())
	assert.Contains(t, out, rows[1].ID.String())
	assert.Contains(t, out, IconExpanded+" close")
}

// TestRenderSnapshot_OutOfRange verifies a bad row index is reported.
func TestRenderSnapshot_OutOfRange(t *testing.T) {
	_, err := RenderSnapshot(context.Background(), GenerateRows(2, 1), testOptions(), []int{5})
	require.ErrorIs(t, err, drawer.ErrIndexOutOfRange)
}
