package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/rowdrawer/internal/config"
	"github.com/rshade/rowdrawer/internal/tui"
)

// demoParams holds the flags of the demo command.
type demoParams struct {
	rows            int
	collapsedHeight int
	expandedHeight  int
	seed            int64
	fps             int
	markdownStyle   string
	lines           int
	expand          []int
	plain           bool
	noColor         bool
	noTUI           bool
}

// NewDemoCmd creates the demo command, which shows generated rows in a table
// whose drawers open with enter (instantly) or space (animated).
func NewDemoCmd() *cobra.Command {
	var params demoParams

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Browse a table of generated rows with expandable drawers",
		Long: `Shows a virtual table of generated people. Each row has a drawer with the
person's details that opens below it.

In a terminal the table is interactive:
  enter      toggle the selected drawer instantly
  space, a   toggle the selected drawer with an animation
  e, c       expand or collapse every drawer
  ?          show all keys
  q          quit

When output is not a terminal, or with --plain or --no-tui, a single snapshot
of the table is printed instead. Use --expand to open drawers in the snapshot.`,
		Example: `  # Interactive table
  rowdrawer demo

  # Snapshot of ten rows with the first drawer open
  rowdrawer demo --plain --rows 10 --expand 0`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, params)
		},
	}

	cmd.Flags().IntVar(&params.rows, "rows", config.DefaultRows, "number of rows to generate")
	cmd.Flags().IntVar(&params.collapsedHeight, "collapsed-height", config.DefaultCollapsedHeight,
		"row height in lines with the drawer closed")
	cmd.Flags().IntVar(&params.expandedHeight, "expanded-height", config.DefaultExpandedHeight,
		"row height in lines with the drawer open")
	cmd.Flags().Int64Var(&params.seed, "seed", config.DefaultSeed, "seed for generated rows")
	cmd.Flags().IntVar(&params.fps, "fps", config.DefaultFPS, "animation frame rate")
	cmd.Flags().StringVar(&params.markdownStyle, "markdown-style", config.DefaultMarkdownStyle,
		"glamour style for drawer content (auto, dark, light, notty or a style file)")
	cmd.Flags().IntVar(&params.lines, "lines", 0, "snapshot height in lines (0 = terminal height)")
	cmd.Flags().IntSliceVar(&params.expand, "expand", nil, "row indexes to open in the snapshot")
	cmd.Flags().BoolVar(&params.plain, "plain", false, "print an unstyled snapshot")
	cmd.Flags().BoolVar(&params.noColor, "no-color", false, "disable colors")
	cmd.Flags().BoolVar(&params.noTUI, "no-tui", false, "print a styled snapshot instead of the interactive table")

	return cmd
}

// demoConfig returns the global configuration with explicitly set flags applied.
func demoConfig(cmd *cobra.Command, params demoParams) (config.Config, error) {
	cfg := *config.GetGlobalConfig()

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Table.Rows = params.rows
	}
	if flags.Changed("collapsed-height") {
		cfg.Table.CollapsedHeight = params.collapsedHeight
	}
	if flags.Changed("expanded-height") {
		cfg.Table.ExpandedHeight = params.expandedHeight
	}
	if flags.Changed("seed") {
		cfg.Table.Seed = params.seed
	}
	if flags.Changed("markdown-style") {
		cfg.Table.MarkdownStyle = params.markdownStyle
	}
	if flags.Changed("fps") {
		cfg.Animation.FPS = params.fps
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runDemo(cmd *cobra.Command, params demoParams) error {
	ctx := cmd.Context()

	cfg, err := demoConfig(cmd, params)
	if err != nil {
		return err
	}

	rows := tui.GenerateRows(cfg.Table.Rows, cfg.Table.Seed)
	mode := tui.DetectOutputMode(params.plain, params.noColor, params.noTUI)
	width, height := tui.TerminalSize()

	opts := tui.DrawerTableOptions{
		CollapsedHeight: cfg.Table.CollapsedHeight,
		ExpandedHeight:  cfg.Table.ExpandedHeight,
		MarkdownStyle:   cfg.Table.MarkdownStyle,
		FPS:             cfg.Animation.FPS,
		Width:           width,
		Height:          height,
	}

	logger.Debug().Ctx(ctx).
		Str("mode", mode.String()).
		Int("rows", len(rows)).
		Int("width", width).
		Int("height", height).
		Msg("starting demo")

	if mode == tui.OutputModeInteractive {
		model, modelErr := tui.NewDrawerTableModel(ctx, rows, opts)
		if modelErr != nil {
			return modelErr
		}
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err = p.Run(); err != nil {
			return fmt.Errorf("running table: %w", err)
		}
		return nil
	}

	if mode == tui.OutputModePlain {
		opts.MarkdownStyle = "notty"
	}
	if params.lines > 0 {
		opts.Height = params.lines
	}

	out, err := tui.RenderSnapshot(ctx, rows, opts, params.expand)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
