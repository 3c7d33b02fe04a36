package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/rowdrawer/internal/drawer"
)

// TestDrawerTable_LargeDataset verifies only the visible rows are rendered for a large table.
func TestDrawerTable_LargeDataset(t *testing.T) {
	opts := testOptions()
	opts.Height = 40
	m, err := NewDrawerTableModel(context.Background(), GenerateRows(10000, 1), opts)
	require.NoError(t, err)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	assert.Contains(t, view, "0 of 10,000 rows expanded")
	assert.Contains(t, view, m.rows[0].Name)
	assert.NotContains(t, view, m.rows[9999].ID.String())
	assert.Less(t, len(view), 50000, "view should not render all rows")
	// Rendered drawer content is cached only for rows that were drawn.
	assert.Less(t, len(m.content.cache), 40)
}

// TestDrawerTable_AnimateDeepRow verifies an animation far down the list keeps the
// selection visible and the offsets of later rows in step with its height.
func TestDrawerTable_AnimateDeepRow(t *testing.T) {
	opts := testOptions()
	opts.Height = 30
	m, err := NewDrawerTableModel(context.Background(), GenerateRows(500, 2), opts)
	require.NoError(t, err)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	require.Equal(t, 499, m.list.Selected())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 498, m.list.Selected())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.NotNil(t, cmd)

	ctrl := m.Controller()
	base := m.list.RowOffset(498)
	frame := drawer.FrameMsg{ID: ctrl.Scheduler().ID(), Time: time.Now().Add(drawer.AnimationDuration / 2)}
	m, cmd = update(t, m, frame)
	assert.NotNil(t, cmd, "frame loop continues mid-animation")

	h := ctrl.RowHeight(498)
	assert.Greater(t, h, 3)
	assert.Less(t, h, 20)
	assert.Equal(t, base+h, m.list.RowOffset(499))
	assert.GreaterOrEqual(t, m.list.VisibleTo(), 498)

	frame.Time = time.Now().Add(time.Second)
	m, cmd = update(t, m, frame)
	assert.Nil(t, cmd)
	assert.Equal(t, base+20, m.list.RowOffset(499))
	assert.Contains(t, m.View(), m.rows[498].ID.String())
}
