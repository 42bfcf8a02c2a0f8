/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/semver/pkg/comparer"
	"github.com/NVIDIA/semver/pkg/errors"
	"github.com/NVIDIA/semver/pkg/serializer"
)

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Classify version pairs read line by line",
		ArgsUsage:             "[FILE]",
		Description: `Read lines of two whitespace-separated version strings and print one word
per line describing how the first orders against the second:

  before   the first version has lower precedence
  after    the first version has higher precedence
  equal    the versions have equal precedence
  invalid  the line is not exactly two valid version strings

Build metadata is ignored when ordering, so versions differing only in
build metadata are equal. Blank lines are skipped. Invalid lines never
abort the batch.

# Examples

Compare pairs from a file:
  semver compare versions.txt

Compare pairs from stdin:
  printf "1.0.0 2.0.0\n1.0.0-alpha 1.0.0\n" | semver compare

Write a run summary report next to the classifications:
  semver compare versions.txt --summary report.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "summary",
				Usage: "Write a run summary report to the given file",
			},
			formatFlag,
		},
		Action: runCompare,
	}
}

// runCompare is the action behind both the compare subcommand and the root
// command default. Classifications go to stdout only; the optional summary
// report goes to its own file so the stdout stream stays parseable.
func runCompare(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 1 {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"expected at most one input file", map[string]any{"args": cmd.Args().Slice()})
	}

	in, source, closeInput, err := openInput(cmd, cmd.Args().First())
	if err != nil {
		return err
	}
	defer func() {
		if err := closeInput(); err != nil {
			slog.Warn("failed to close input", "error", err, "source", source)
		}
	}()

	c := comparer.New(
		comparer.WithVersion(version),
	)

	report, err := c.Run(ctx, in, stdout(cmd))
	if err != nil {
		return err
	}
	report.InputSource = source

	if summaryPath := cmd.String("summary"); summaryPath != "" {
		outFormat, err := parseOutputFormat(cmd)
		if err != nil {
			return err
		}

		ser := serializer.NewFileWriterOrStdout(outFormat, summaryPath)
		defer func() {
			if err := ser.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}()

		if err := ser.Serialize(ctx, report); err != nil {
			return fmt.Errorf("failed to serialize compare report: %w", err)
		}
	}

	return nil
}
