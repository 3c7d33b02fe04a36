package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/rowdrawer/internal/config"
	"github.com/rshade/rowdrawer/internal/logging"
)

// envDebug enables debug logging like --debug.
const envDebug = "ROWDRAWER_DEBUG"

// setupLogging configures logging based on config file, environment, and CLI flags.
func setupLogging(cmd *cobra.Command, lookupEnv func(string) (string, bool)) logging.LogPathResult {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if v, ok := lookupEnv(envDebug); ok && v != "" && v != "0" {
		debug = true
	}
	if debug {
		loggingCfg.Level = "debug"
	}

	// Ensure log directory exists after all overrides have been applied.
	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	logCfg := loggingCfg.ToLoggingConfig()
	if debug {
		logCfg = debugLoggingConfig(logCfg, isTerminal(os.Stderr))
	}

	result := logging.NewLoggerWithPath(logCfg)
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// debugLoggingConfig routes --debug output when no log file is configured.
// Console logs go to stderr only when it is redirected; a terminal stderr is
// shared with the table, so the default log file is used instead.
func debugLoggingConfig(logCfg logging.Config, stderrIsTerminal bool) logging.Config {
	if logCfg.File != "" {
		return logCfg
	}
	if stderrIsTerminal {
		logCfg.Output = logging.OutputFile
		logCfg.File = config.Default().Logging.File
		return logCfg
	}
	logCfg.Output = logging.OutputStderr
	logCfg.Format = logging.FormatConsole
	logCfg.Caller = true
	return logCfg
}

// cleanupLogging closes the log file handle.
func cleanupLogging(_ *cobra.Command, logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
