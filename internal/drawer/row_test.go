package drawer

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}

// TestRenderRow verifies head and drawer regions for both expansion states.
func TestRenderRow(t *testing.T) {
	tests := []struct {
		name        string
		view        RowView[string]
		wantLines   int
		wantContent bool
	}{
		{
			name: "collapsed keeps blank drawer region",
			view: RowView[string]{
				Columns: "name | quote", Content: "more info",
				CollapsedHeight: 2, ExpandedHeight: 5, Style: lipgloss.NewStyle(),
			},
			wantLines: 5,
		},
		{
			name: "expanded shows drawer content",
			view: RowView[string]{
				Columns: "name | quote", Content: "more info", Expanded: true,
				CollapsedHeight: 2, ExpandedHeight: 5, Style: lipgloss.NewStyle(),
			},
			wantLines:   5,
			wantContent: true,
		},
		{
			name: "no drawer region when heights match",
			view: RowView[string]{
				Columns: "name | quote", Content: "more info", Expanded: true,
				CollapsedHeight: 1, ExpandedHeight: 1, Style: lipgloss.NewStyle(),
			},
			wantLines: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderRow(tt.view)
			assert.Equal(t, tt.wantLines, lineCount(out))
			assert.True(t, strings.HasPrefix(out, "name | quote"))
			if tt.wantContent {
				assert.Contains(t, out, "more info")
			} else {
				assert.NotContains(t, out, "more info")
			}
		})
	}
}

// TestRenderRow_ClipsDrawerContent verifies content taller than the drawer is truncated.
func TestRenderRow_ClipsDrawerContent(t *testing.T) {
	out := RenderRow(RowView[string]{
		Columns:         "head",
		Content:         "one\ntwo\nthree\nfour",
		Expanded:        true,
		CollapsedHeight: 1,
		ExpandedHeight:  3,
		Style:           lipgloss.NewStyle(),
	})

	assert.Equal(t, 3, lineCount(out))
	assert.Contains(t, out, "two")
	assert.NotContains(t, out, "three")
}

// TestRenderRow_OuterStyleClips verifies the list style limits the snapshot height.
func TestRenderRow_OuterStyleClips(t *testing.T) {
	out := RenderRow(RowView[string]{
		Columns:         "head",
		Content:         "drawer",
		Expanded:        true,
		CollapsedHeight: 1,
		ExpandedHeight:  4,
		Style:           lipgloss.NewStyle().MaxHeight(2),
	})

	assert.Equal(t, 2, lineCount(out))
	assert.Contains(t, out, "drawer")
}
