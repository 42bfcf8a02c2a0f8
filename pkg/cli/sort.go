/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/semver/pkg/comparer"
	"github.com/NVIDIA/semver/pkg/errors"
	"github.com/NVIDIA/semver/pkg/header"
	"github.com/NVIDIA/semver/pkg/semver"
	"github.com/NVIDIA/semver/pkg/serializer"
)

// sortResult is the serialized output of the sort command when an output
// file is requested.
type sortResult struct {
	header.Header `json:",inline" yaml:",inline"`

	// InputSource is the path of the sorted file, or "stdin".
	InputSource string `json:"inputSource,omitempty" yaml:"inputSource,omitempty"`

	// Count is the number of versions in the ordered list.
	Count int `json:"count" yaml:"count"`

	// Skipped is the number of input lines dropped as invalid or blank.
	Skipped int `json:"skipped" yaml:"skipped"`

	// Versions holds the canonical version strings in precedence order.
	Versions []string `json:"versions" yaml:"versions"`
}

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:                  "sort",
		EnableShellCompletion: true,
		Usage:                 "Order versions by precedence",
		ArgsUsage:             "[FILE]",
		Description: `Read one version string per line and print them in precedence order,
lowest first. Build metadata does not affect ordering; versions that
differ only in build metadata keep their input order.

Blank lines are skipped. Invalid lines are skipped with a warning unless
--strict is set, in which case the first invalid line fails the command.

# Examples

Sort versions from a file:
  semver sort versions.txt

Sort versions from stdin, highest first:
  printf "1.0.0\n1.0.0-rc.1\n2.1.0\n" | semver sort --reverse

Write the ordered list as a structured document:
  semver sort versions.txt -o sorted.yaml --format json`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "reverse",
				Aliases: []string{"r"},
				Usage:   "Order highest precedence first",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Fail on the first line that is not a valid version",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 1 {
				return errors.NewWithContext(errors.ErrCodeInvalidRequest,
					"expected at most one input file", map[string]any{"args": cmd.Args().Slice()})
			}

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
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

			versions := make([]semver.Version, 0, 64)
			skipped := 0

			scanner := bufio.NewScanner(in)
			for scanner.Scan() {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					skipped++
					continue
				}

				v, err := semver.Parse(line)
				if err != nil {
					if cmd.Bool("strict") {
						return errors.WrapWithContext(errors.ErrCodeInvalidRequest,
							"failed to parse version", err, map[string]any{"input": line})
					}
					slog.Warn("skipping invalid version", "input", line, "error", err)
					skipped++
					continue
				}
				versions = append(versions, v)
			}
			if err := scanner.Err(); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, "failed to read input", err)
			}

			slices.SortStableFunc(versions, func(a, b semver.Version) int {
				return a.Compare(b)
			})
			if cmd.Bool("reverse") {
				slices.Reverse(versions)
			}

			ordered := make([]string, 0, len(versions))
			for _, v := range versions {
				ordered = append(ordered, v.String())
			}

			if output := cmd.String("output"); output != "" {
				result := &sortResult{
					InputSource: source,
					Count:       len(ordered),
					Skipped:     skipped,
					Versions:    ordered,
				}
				result.Init(header.KindSortResult, comparer.APIVersion, version)

				ser := serializer.NewFileWriterOrStdout(outFormat, output)
				defer func() {
					if err := ser.Close(); err != nil {
						slog.Warn("failed to close serializer", "error", err)
					}
				}()
				return ser.Serialize(ctx, result)
			}

			w := stdout(cmd)
			for _, s := range ordered {
				if _, err := fmt.Fprintln(w, s); err != nil {
					return errors.Wrap(errors.ErrCodeInternal, "failed to write version", err)
				}
			}

			slog.Debug("sort completed", "count", len(ordered), "skipped", skipped, "source", source)
			return nil
		},
	}
}
