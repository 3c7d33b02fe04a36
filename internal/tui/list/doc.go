// Package listview provides a virtual scrolling table for Bubble Tea TUI applications.
//
// Rows may have different heights, measured in terminal lines. The model asks a
// RowHeightFunc for each row's height and caches the resulting line offsets, so
// rendering stays proportional to the viewport rather than the row count. Key features:
//   - Variable row heights with cached offsets
//   - RecomputeRowHeights to invalidate offsets when a row changes height
//   - Column layout with fixed and flexible widths
//   - Keyboard navigation (up/down, pgup/pgdn, home/end, j/k)
//
// Callers that animate row heights call RecomputeRowHeights(index) on every frame so
// rows below the animated one move with it.
package listview
