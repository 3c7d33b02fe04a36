package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/rowdrawer/internal/drawer"
	"github.com/rshade/rowdrawer/internal/logging"
	listview "github.com/rshade/rowdrawer/internal/tui/list"
)

// Column widths of the demo table.
const (
	toggleColumnWidth = 16
	nameColumnWidth   = 22
	quoteColumnWidth  = 20
	drawerIndent      = 4
	minMarkdownWidth  = 20
)

// DrawerTableOptions configures NewDrawerTableModel.
type DrawerTableOptions struct {
	CollapsedHeight int
	ExpandedHeight  int
	MarkdownStyle   string
	FPS             int
	Width           int
	Height          int
}

// DrawerTableModel is the Bubble Tea model of the demo: a virtual table of
// people whose rows open a drawer with details.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type DrawerTableModel struct {
	ctx    context.Context
	rows   []Person
	list   *listview.VirtualListModel[Person]
	drawer *drawer.Controller[Person]

	content *drawerContent
	keys    drawerKeyMap
	help    help.Model
	printer *message.Printer
	logger  zerolog.Logger

	width    int
	height   int
	quitting bool
	err      error
}

// drawerContent renders and caches the markdown shown in each row's drawer.
type drawerContent struct {
	markdown *MarkdownRenderer
	cache    map[int]string
	printer  *message.Printer
	logger   zerolog.Logger
}

func (d *drawerContent) render(props listview.RowProps[Person]) string {
	if s, ok := d.cache[props.Index]; ok {
		return s
	}

	md := personMarkdown(props.Item, d.printer.Sprintf("%d", props.Item.Words()))
	out := drawerStyle.Render(md)
	if d.markdown != nil {
		rendered, err := d.markdown.Render(md)
		if err != nil {
			d.logger.Warn().Err(err).Int("row", props.Index).Msg("markdown rendering failed, showing source")
		} else {
			out = rendered
		}
	}

	d.cache[props.Index] = out
	return out
}

func (d *drawerContent) resize(width int) {
	if d.markdown == nil {
		return
	}
	changed, err := d.markdown.UpdateWidth(width)
	if err != nil {
		d.logger.Warn().Err(err).Int("width", width).Msg("markdown renderer resize failed")
		return
	}
	if changed {
		clear(d.cache)
	}
}

// NewDrawerTableModel wires a drawer controller into a virtual list of rows.
func NewDrawerTableModel(ctx context.Context, rows []Person, opts DrawerTableOptions) (DrawerTableModel, error) {
	logger := logging.ComponentLogger(logging.FromContext(ctx), "tui")
	printer := message.NewPrinter(language.English)

	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}

	content := &drawerContent{
		cache:   make(map[int]string),
		printer: printer,
		logger:  logger,
	}
	md, err := NewMarkdownRenderer(opts.MarkdownStyle, markdownWidth(opts.Width))
	if err != nil {
		logger.Warn().Err(err).Str("style", opts.MarkdownStyle).Msg("markdown disabled")
	} else {
		content.markdown = md
	}

	dims := drawer.UniformDimensions(len(rows), drawer.RowDimensions{
		CollapsedHeight: opts.CollapsedHeight,
		ExpandedHeight:  opts.ExpandedHeight,
	})
	ctrlOpts := []drawer.Option{drawer.WithLogger(logging.ComponentLogger(logging.FromContext(ctx), "drawer"))}
	if opts.FPS > 0 {
		ctrlOpts = append(ctrlOpts, drawer.WithFrameInterval(time.Second/time.Duration(opts.FPS)))
	}
	ctrl, err := drawer.New(content.render, dims, ctrlOpts...)
	if err != nil {
		return DrawerTableModel{}, fmt.Errorf("creating drawer controller: %w", err)
	}

	list := listview.NewVirtualListModel(rows, opts.Height, opts.Width, ctrl.RowRenderer)
	list.SetRowHeight(ctrl.RowHeight)
	list.SetKeyFunc(func(p Person, _ int) string { return p.ID.String() })
	list.SetColumns(
		listview.Column[Person]{
			Label: "Toggle",
			Width: toggleColumnWidth,
			Cell: func(_ Person, i int) string {
				label := toggleStyle.Render(IconCollapsed + " open")
				if ctrl.Expanded(i) {
					label = toggleStyle.Render(IconExpanded + " close")
				}
				return label + "\n" + mutedStyle.Render("enter · space")
			},
		},
		listview.Column[Person]{
			Label: "Name",
			Width: nameColumnWidth,
			Cell:  func(p Person, _ int) string { return p.Name },
		},
		listview.Column[Person]{
			Label: "What they had to say ...",
			Width: quoteColumnWidth,
			Flex:  true,
			Cell:  func(p Person, _ int) string { return p.Quote },
		},
	)
	ctrl.SetListRef(list)

	m := DrawerTableModel{
		ctx:     ctx,
		rows:    rows,
		list:    list,
		drawer:  ctrl,
		content: content,
		keys:    newDrawerKeyMap(),
		help:    help.New(),
		printer: printer,
		logger:  logger,
	}
	m.resize(opts.Width, opts.Height)

	logger.Debug().Int("rows", len(rows)).Msg("drawer table created")
	return m, nil
}

func markdownWidth(width int) int {
	w := width - drawerIndent
	if w < minMarkdownWidth {
		return minMarkdownWidth
	}
	return w
}

// Init initializes the model (Bubble Tea interface).
func (m DrawerTableModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m DrawerTableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case drawer.FrameMsg:
		return m, m.drawer.Update(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m DrawerTableModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil
	}

	if len(m.rows) > 0 {
		switch {
		case key.Matches(msg, m.keys.Toggle):
			m.err = m.drawer.ToggleDrawer(m.list.Selected())
			return m, nil
		case key.Matches(msg, m.keys.Animate):
			var cmd tea.Cmd
			cmd, m.err = m.drawer.ToggleDrawerWithAnimation(m.list.Selected())
			return m, cmd
		case key.Matches(msg, m.keys.ExpandAll):
			m.err = m.setAll(true)
			return m, nil
		case key.Matches(msg, m.keys.CollapseAll):
			m.err = m.setAll(false)
			return m, nil
		}
	}

	_, cmd := m.list.Update(msg)
	return m, cmd
}

// setAll snaps every row to expanded or collapsed.
func (m DrawerTableModel) setAll(expanded bool) error {
	changed := 0
	for i := range m.rows {
		if m.drawer.Target(i) == expanded {
			continue
		}
		if err := m.drawer.ToggleDrawer(i); err != nil {
			return err
		}
		changed++
	}
	m.logger.Debug().Bool("expanded", expanded).Int("changed", changed).Msg("bulk toggle")
	return nil
}

// resize fits the list between the title line and the footer.
func (m *DrawerTableModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	chrome := 2 + lineCount(m.help.View(m.keys))
	listHeight := height - chrome
	if listHeight < 0 {
		listHeight = 0
	}
	m.list.SetSize(width, listHeight)
	m.content.resize(markdownWidth(width))
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// View renders the table (Bubble Tea interface).
func (m DrawerTableModel) View() string {
	if m.quitting {
		return ""
	}

	status := statusStyle.Render(m.printer.Sprintf("%d of %d rows expanded", m.drawer.ExpandedCount(), len(m.rows)))
	if m.drawer.Animating() {
		status += mutedStyle.Render(" · animating")
	}
	if m.err != nil {
		status += " " + errorStyle.Render(m.err.Error())
	}

	parts := []string{
		titleStyle.Render("Row drawer demo"),
		m.TableView(),
		status,
	}
	if h := m.help.View(m.keys); h != "" {
		parts = append(parts, h)
	}
	return strings.Join(parts, "\n")
}

// TableView renders only the table, without title, status or help.
func (m DrawerTableModel) TableView() string {
	if len(m.rows) == 0 {
		return mutedStyle.Render("No rows to display")
	}
	return m.list.View()
}

// Controller exposes the drawer controller for callers that pre-expand rows.
func (m DrawerTableModel) Controller() *drawer.Controller[Person] {
	return m.drawer
}

// RenderSnapshot renders the table once with the given rows expanded.
func RenderSnapshot(ctx context.Context, rows []Person, opts DrawerTableOptions, expand []int) (string, error) {
	m, err := NewDrawerTableModel(ctx, rows, opts)
	if err != nil {
		return "", err
	}
	for _, i := range expand {
		if m.drawer.Expanded(i) {
			continue
		}
		if err = m.drawer.ToggleDrawer(i); err != nil {
			return "", fmt.Errorf("expanding row %d: %w", i, err)
		}
	}
	// No title or footer in a snapshot, the table gets the whole height.
	m.list.SetSize(m.width, m.height)
	return m.TableView(), nil
}
