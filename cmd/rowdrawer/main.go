// Package main is the rowdrawer command.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/rowdrawer/internal/cli"
	"github.com/rshade/rowdrawer/internal/config"
	"github.com/rshade/rowdrawer/pkg/version"
)

// Exit codes.
const (
	exitOK          = 0
	exitError       = 1
	exitUsageConfig = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	if err := root.ExecuteContext(ctx); err != nil {
		return exitCode(err)
	}
	return exitOK
}

// exitCode maps a command error to the process exit code.
func exitCode(err error) int {
	if errors.Is(err, config.ErrInvalidConfig) {
		return exitUsageConfig
	}
	return exitError
}
