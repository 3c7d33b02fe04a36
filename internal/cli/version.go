package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/rowdrawer/pkg/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the rowdrawer version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "rowdrawer %s", ver)
			if commit := version.GetGitCommit(); commit != "" {
				_, _ = fmt.Fprintf(out, " (%s)", commit)
			}
			if !version.IsRelease() {
				_, _ = fmt.Fprint(out, " [development build]")
			}
			_, err := fmt.Fprintln(out)
			return err
		},
	}
}
