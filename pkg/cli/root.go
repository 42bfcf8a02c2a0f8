/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/semver/pkg/logging"
)

const name = "semver"

// Version information, embedded at build time using ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		EnableShellCompletion: true,
		Usage:                 "Parse, compare, and order Semantic Versioning 2.0.0 versions",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `Work with Semantic Versioning 2.0.0 version strings.

Without a subcommand, reads version pairs from a file argument or stdin and
prints one classification word per pair: before, after, equal, or invalid.

# Examples

Compare pairs from a file:
  semver versions.txt

Compare pairs from stdin:
  echo "1.2.3 1.3.0" | semver

Inspect a single version:
  semver parse 1.2.3-beta.11+build.42

Order versions by precedence:
  semver sort versions.txt`,
		Flags: []cli.Flag{
			logLevelFlag,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if level := cmd.String("log-level"); level != "" {
				logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
			} else {
				logging.SetDefaultStructuredLogger(name, version)
			}
			slog.Debug("starting", "version", version, "commit", commit, "args", cmd.Args().Slice())
			return ctx, nil
		},
		Commands: []*cli.Command{
			compareCmd(),
			parseCmd(),
			sortCmd(),
		},
		// Default action is batch comparison so the tool works as a
		// plain filter: semver [FILE].
		Action: runCompare,
	}
}

// Execute runs the root command with signal-aware cancellation. SIGINT and
// SIGTERM cancel the command context so in-flight batch runs stop cleanly.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Warn("received signal, shutting down", "signal", sig.String())
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
