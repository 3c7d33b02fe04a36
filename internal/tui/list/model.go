package listview

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// defaultRowHeight is the row height used when no RowHeightFunc is set.
const defaultRowHeight = 1

// RowHeightFunc returns the height in lines of the row at index.
// It is called during layout and must not have side effects.
type RowHeightFunc func(index int) int

// RowRenderFunc renders a single row. The returned string is clipped or padded
// to the row's height by the list.
type RowRenderFunc[T any] func(props RowProps[T]) string

// KeyFunc returns a stable key for an item.
type KeyFunc[T any] func(item T, index int) string

// CellRenderFunc renders the content of one cell.
type CellRenderFunc[T any] func(item T, index int) string

// Column describes a table column. A column with Flex set shares the width left
// over after fixed columns are laid out.
type Column[T any] struct {
	Label string
	Width int
	Flex  bool
	Cell  CellRenderFunc[T]
}

// RowProps is what the list hands to a RowRenderFunc.
type RowProps[T any] struct {
	// Index is the row position in the list.
	Index int

	// Key identifies the row independently of its position.
	Key string

	// Item is the row data.
	Item T

	// Columns is the rendered cell content, joined horizontally.
	Columns string

	// Selected reports whether the row holds the cursor.
	Selected bool

	// Height is the row height the list laid out for this render pass.
	Height int

	// Style is sized to the row's width and height.
	Style lipgloss.Style
}

// DefaultRowRenderer renders the columns inside the row style.
func DefaultRowRenderer[T any](props RowProps[T]) string {
	return props.Style.Render(props.Columns)
}

// VirtualListModel implements virtual scrolling over rows of varying height.
// Only rows that intersect the viewport are rendered.
type VirtualListModel[T any] struct {
	// items contains all list items
	items []T

	columns []Column[T]

	rowHeight   RowHeightFunc
	rowRenderer RowRenderFunc[T]
	keyFunc     KeyFunc[T]

	// offsets[i] is the first line of row i; offsets[len(items)] is the total height.
	// Entries up to and including validTo are current.
	offsets []int
	validTo int

	// selected is the currently selected item index (0-based)
	selected int

	// scrollTop is the first body line shown in the viewport
	scrollTop int

	// height is the viewport height in lines, header included
	height int

	// width is the viewport width in columns
	width int

	headerStyle   lipgloss.Style
	selectedStyle lipgloss.Style

	recomputes int
}

// NewVirtualListModel creates a new virtual list model.
// items: the complete list of items to display.
// height: viewport height in lines.
// width: viewport width in columns.
// rowRenderer: function to render each row; nil selects DefaultRowRenderer.
func NewVirtualListModel[T any](items []T, height, width int, rowRenderer RowRenderFunc[T]) *VirtualListModel[T] {
	if rowRenderer == nil {
		rowRenderer = DefaultRowRenderer[T]
	}
	m := &VirtualListModel[T]{
		items:         items,
		rowRenderer:   rowRenderer,
		rowHeight:     func(int) int { return defaultRowHeight },
		height:        height,
		width:         width,
		offsets:       make([]int, len(items)+1),
		headerStyle:   lipgloss.NewStyle().Bold(true),
		selectedStyle: lipgloss.NewStyle().Reverse(true),
	}
	return m
}

// SetColumns replaces the column definitions.
func (m *VirtualListModel[T]) SetColumns(columns ...Column[T]) {
	m.columns = columns
}

// SetRowHeight installs the row height callback and invalidates all offsets.
func (m *VirtualListModel[T]) SetRowHeight(fn RowHeightFunc) {
	if fn == nil {
		fn = func(int) int { return defaultRowHeight }
	}
	m.rowHeight = fn
	m.invalidate(0)
}

// SetRowRenderer installs the row render callback.
func (m *VirtualListModel[T]) SetRowRenderer(fn RowRenderFunc[T]) {
	if fn == nil {
		fn = DefaultRowRenderer[T]
	}
	m.rowRenderer = fn
}

// SetKeyFunc installs the row key callback.
func (m *VirtualListModel[T]) SetKeyFunc(fn KeyFunc[T]) {
	m.keyFunc = fn
}

// SetSize updates the viewport dimensions.
func (m *VirtualListModel[T]) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.scrollToSelected()
}

// RecomputeRowHeights discards cached offsets from the given row onward, or for
// every row when no index is given. The next layout queries RowHeightFunc again.
func (m *VirtualListModel[T]) RecomputeRowHeights(from ...int) {
	m.recomputes++
	start := 0
	if len(from) > 0 {
		start = from[0]
	}
	m.invalidate(start)
	m.scrollToSelected()
}

// RecomputeCount returns how many times RecomputeRowHeights has been called.
func (m *VirtualListModel[T]) RecomputeCount() int {
	return m.recomputes
}

func (m *VirtualListModel[T]) invalidate(from int) {
	if from < 0 {
		from = 0
	}
	if from < m.validTo {
		m.validTo = from
	}
}

// extendOffsets makes offsets valid up to and including row index upTo.
func (m *VirtualListModel[T]) extendOffsets(upTo int) {
	if upTo > len(m.items) {
		upTo = len(m.items)
	}
	for i := m.validTo; i < upTo; i++ {
		m.offsets[i+1] = m.offsets[i] + m.heightOf(i)
	}
	if upTo > m.validTo {
		m.validTo = upTo
	}
}

func (m *VirtualListModel[T]) heightOf(index int) int {
	h := m.rowHeight(index)
	if h < 0 {
		return 0
	}
	return h
}

// RowOffset returns the first body line of the row at index.
func (m *VirtualListModel[T]) RowOffset(index int) int {
	m.extendOffsets(index)
	return m.offsets[index]
}

// TotalHeight returns the sum of all row heights.
func (m *VirtualListModel[T]) TotalHeight() int {
	m.extendOffsets(len(m.items))
	return m.offsets[len(m.items)]
}

// rowAtLine returns the index of the row covering the given body line.
func (m *VirtualListModel[T]) rowAtLine(line int) int {
	for m.validTo < len(m.items) && m.offsets[m.validTo] <= line {
		m.extendOffsets(m.validTo + 1)
	}
	idx := sort.Search(m.validTo+1, func(i int) bool { return m.offsets[i] > line }) - 1
	if idx < 0 {
		return 0
	}
	if idx >= len(m.items) {
		return len(m.items) - 1
	}
	return idx
}

func (m *VirtualListModel[T]) headerHeight() int {
	for _, c := range m.columns {
		if c.Label != "" {
			return 1
		}
	}
	return 0
}

func (m *VirtualListModel[T]) bodyHeight() int {
	h := m.height - m.headerHeight()
	if h < 0 {
		return 0
	}
	return h
}

// Init initializes the model (required for tea.Model interface).
func (m *VirtualListModel[T]) Init() tea.Cmd {
	return nil
}

// Update handles keyboard and resize messages.
func (m *VirtualListModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg), nil
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKeyMsg processes keyboard input for navigation.
//
//nolint:exhaustive // Only navigation keys are handled.
func (m *VirtualListModel[T]) handleKeyMsg(msg tea.KeyMsg) tea.Model {
	if len(m.items) == 0 {
		return m
	}

	switch msg.Type {
	case tea.KeyUp:
		m.SetSelected(m.selected - 1)
	case tea.KeyDown:
		m.SetSelected(m.selected + 1)
	case tea.KeyPgUp:
		m.SetSelected(m.rowAtLine(m.RowOffset(m.selected) - m.bodyHeight()))
	case tea.KeyPgDown:
		m.SetSelected(m.rowAtLine(m.RowOffset(m.selected) + m.bodyHeight()))
	case tea.KeyHome:
		m.SetSelected(0)
	case tea.KeyEnd:
		m.SetSelected(len(m.items) - 1)
	case tea.KeyRunes:
		// Handle vim-style navigation
		if len(msg.Runes) > 0 {
			switch msg.Runes[0] {
			case 'j':
				m.SetSelected(m.selected + 1)
			case 'k':
				m.SetSelected(m.selected - 1)
			}
		}
	default:
	}

	return m
}

// scrollToSelected moves the viewport the least amount needed to show the selected row.
// A row taller than the viewport is aligned to its top.
func (m *VirtualListModel[T]) scrollToSelected() {
	if len(m.items) == 0 {
		m.scrollTop = 0
		return
	}

	body := m.bodyHeight()
	top := m.RowOffset(m.selected)
	bottom := top + m.heightOf(m.selected)

	switch {
	case top < m.scrollTop:
		m.scrollTop = top
	case bottom > m.scrollTop+body:
		m.scrollTop = bottom - body
		if m.scrollTop > top {
			m.scrollTop = top
		}
	}

	maxTop := m.TotalHeight() - body
	if maxTop < 0 {
		maxTop = 0
	}
	if m.scrollTop > maxTop {
		m.scrollTop = maxTop
	}
	if m.scrollTop < 0 {
		m.scrollTop = 0
	}
}

// columnWidths resolves fixed and flexible column widths against the viewport width.
func (m *VirtualListModel[T]) columnWidths() []int {
	widths := make([]int, len(m.columns))
	fixed, flex := 0, 0
	for i, c := range m.columns {
		if c.Flex {
			flex++
			continue
		}
		widths[i] = c.Width
		fixed += c.Width
	}
	if flex == 0 {
		return widths
	}
	remaining := m.width - fixed
	share := remaining / flex
	for i, c := range m.columns {
		if !c.Flex {
			continue
		}
		widths[i] = share
		if widths[i] < c.Width {
			widths[i] = c.Width
		}
	}
	return widths
}

func (m *VirtualListModel[T]) renderColumns(widths []int, cell func(i int) string) string {
	cells := make([]string, 0, len(m.columns))
	for i := range m.columns {
		w := widths[i]
		if w <= 0 {
			continue
		}
		cells = append(cells, lipgloss.NewStyle().Width(w).MaxWidth(w).Render(cell(i)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m *VirtualListModel[T]) renderHeader(widths []int) string {
	return m.headerStyle.Render(m.renderColumns(widths, func(i int) string {
		return m.columns[i].Label
	}))
}

func (m *VirtualListModel[T]) renderRow(index int, widths []int) []string {
	h := m.heightOf(index)
	if h == 0 {
		return nil
	}

	item := m.items[index]
	key := ""
	if m.keyFunc != nil {
		key = m.keyFunc(item, index)
	}

	props := RowProps[T]{
		Index:    index,
		Key:      key,
		Item:     item,
		Selected: index == m.selected,
		Height:   h,
		Style:    lipgloss.NewStyle().Width(m.width).MaxWidth(m.width).Height(h).MaxHeight(h),
		Columns: m.renderColumns(widths, func(i int) string {
			if m.columns[i].Cell == nil {
				return ""
			}
			return m.columns[i].Cell(item, index)
		}),
	}
	if props.Selected {
		props.Style = props.Style.Inherit(m.selectedStyle)
	}

	return fitLines(m.rowRenderer(props), h)
}

// fitLines splits s into exactly n lines, truncating or padding with blanks.
func fitLines(s string, n int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		return lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}

// View renders the header and the rows intersecting the viewport.
func (m *VirtualListModel[T]) View() string {
	widths := m.columnWidths()

	var out []string
	if m.headerHeight() > 0 {
		out = append(out, m.renderHeader(widths))
	}

	body := m.bodyHeight()
	if len(m.items) == 0 || body == 0 {
		return strings.Join(out, "\n")
	}

	from := m.rowAtLine(m.scrollTop)
	skip := m.scrollTop - m.RowOffset(from)

	var lines []string
	for i := from; i < len(m.items) && len(lines) < body+skip; i++ {
		lines = append(lines, m.renderRow(i, widths)...)
	}
	if skip > len(lines) {
		skip = len(lines)
	}
	lines = lines[skip:]
	if len(lines) > body {
		lines = lines[:body]
	}

	out = append(out, lines...)
	return strings.Join(out, "\n")
}

// ItemCount returns the total number of items in the list.
func (m *VirtualListModel[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the currently selected item index.
func (m *VirtualListModel[T]) Selected() int {
	return m.selected
}

// SetSelected sets the selected item index, capping to valid bounds.
func (m *VirtualListModel[T]) SetSelected(index int) {
	if len(m.items) == 0 {
		m.selected = 0
		return
	}

	switch {
	case index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}

	m.scrollToSelected()
}

// ScrollTop returns the first body line shown in the viewport.
func (m *VirtualListModel[T]) ScrollTop() int {
	return m.scrollTop
}

// VisibleFrom returns the first visible item index (inclusive).
func (m *VirtualListModel[T]) VisibleFrom() int {
	if len(m.items) == 0 {
		return 0
	}
	return m.rowAtLine(m.scrollTop)
}

// VisibleTo returns the last visible item index (exclusive).
func (m *VirtualListModel[T]) VisibleTo() int {
	if len(m.items) == 0 || m.bodyHeight() == 0 {
		return 0
	}
	return m.rowAtLine(m.scrollTop+m.bodyHeight()-1) + 1
}

// Height returns the viewport height.
func (m *VirtualListModel[T]) Height() int {
	return m.height
}

// Width returns the viewport width.
func (m *VirtualListModel[T]) Width() int {
	return m.width
}

// GetSelectedItem returns the currently selected item.
// Returns nil if list is empty.
func (m *VirtualListModel[T]) GetSelectedItem() *T {
	if len(m.items) == 0 || m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}
