package drawer

import "github.com/charmbracelet/lipgloss"

// RowView is the snapshot RenderRow draws.
type RowView[T any] struct {
	Item T

	// Columns is the rendered head content.
	Columns string

	// Content is the drawer content. It is shown only when Expanded is set.
	Content string

	CollapsedHeight int
	ExpandedHeight  int
	Expanded        bool

	// Style is the outer row style supplied by the list; it clips the block to
	// the row height of the current render pass.
	Style lipgloss.Style
}

// RenderRow draws a fixed-height head holding the columns and, below it, a
// drawer region of ExpandedHeight-CollapsedHeight lines. The drawer region is
// blank unless the row is expanded.
func RenderRow[T any](v RowView[T]) string {
	parts := make([]string, 0, 2)

	if v.CollapsedHeight > 0 {
		parts = append(parts, fixedHeight(v.CollapsedHeight).Render(v.Columns))
	}

	dims := RowDimensions{CollapsedHeight: v.CollapsedHeight, ExpandedHeight: v.ExpandedHeight}
	if drawerHeight := dims.DrawerHeight(); drawerHeight > 0 {
		body := ""
		if v.Expanded {
			body = v.Content
		}
		parts = append(parts, fixedHeight(drawerHeight).Render(body))
	}

	return v.Style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func fixedHeight(h int) lipgloss.Style {
	return lipgloss.NewStyle().Height(h).MaxHeight(h)
}
