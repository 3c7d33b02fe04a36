package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/rowdrawer/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: ~/.rowdrawer/config.yaml with
environment overrides applied.

This includes:
- Row count is not negative
- Collapsed height is at least one line
- Expanded height is not below the collapsed height
- Frame rate is within range`,
		Example: `  # Validate current configuration
  rowdrawer config validate

  # Validate and show detailed information
  rowdrawer config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Println("✅ Configuration is valid")

	if verbose {
		t := cfg.Table
		cmd.Printf("\nTable: %d rows, %d lines collapsed, %d lines expanded (drawer %d lines)\n",
			t.Rows, t.CollapsedHeight, t.ExpandedHeight, t.ExpandedHeight-t.CollapsedHeight)
		cmd.Printf("Animation: %d fps\n", cfg.Animation.FPS)
		cmd.Printf("Markdown style: %s\n", t.MarkdownStyle)
		if cfg.Logging.File != "" {
			cmd.Printf("Logging: %s level to %s\n", cfg.Logging.Level, cfg.Logging.File)
		} else {
			cmd.Printf("Logging: disabled\n")
		}
	}

	return nil
}
