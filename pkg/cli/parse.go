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
	"github.com/NVIDIA/semver/pkg/header"
	"github.com/NVIDIA/semver/pkg/semver"
	"github.com/NVIDIA/semver/pkg/serializer"
)

// parseResult is the serialized output of the parse command.
type parseResult struct {
	header.Header `json:",inline" yaml:",inline"`

	// Canonical is the version rendered back to its canonical string form.
	Canonical string `json:"canonical" yaml:"canonical"`

	// Fields is the flat field breakdown of the parsed version.
	Fields semver.Fields `json:"fields" yaml:"fields"`
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Parse and inspect a single version string",
		ArgsUsage:             "VERSION",
		Description: `Parse one Semantic Versioning 2.0.0 string and print its field breakdown.

The version must be of the form major.minor.patch with optional
-prerelease and +buildmetadata parts. No "v" prefix and no leading zeros
in numeric components. Invalid input exits non-zero with a parse error.

# Examples

Inspect a version:
  semver parse 1.2.3-beta.11+exp.sha.5114f85

Emit the breakdown as JSON:
  semver parse 1.2.3 --format json

Write the breakdown to a file:
  semver parse 1.2.3 -o fields.yaml`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.NewWithContext(errors.ErrCodeInvalidRequest,
					"expected exactly one version argument", map[string]any{"args": cmd.Args().Slice()})
			}

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			raw := cmd.Args().First()
			v, err := semver.Parse(raw)
			if err != nil {
				return errors.WrapWithContext(errors.ErrCodeInvalidRequest,
					"failed to parse version", err, map[string]any{"input": raw})
			}

			result := &parseResult{
				Canonical: v.String(),
				Fields:    v.Fields(),
			}
			result.Init(header.KindVersionFields, comparer.APIVersion, version)

			var ser serializer.Serializer
			if output := cmd.String("output"); output != "" {
				fw := serializer.NewFileWriterOrStdout(outFormat, output)
				defer func() {
					if err := fw.Close(); err != nil {
						slog.Warn("failed to close serializer", "error", err)
					}
				}()
				ser = fw
			} else {
				ser = serializer.NewWriter(outFormat, stdout(cmd))
			}

			if err := ser.Serialize(ctx, result); err != nil {
				return fmt.Errorf("failed to serialize version fields: %w", err)
			}

			return nil
		},
	}
}
