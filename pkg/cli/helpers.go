/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/semver/pkg/errors"
	"github.com/NVIDIA/semver/pkg/serializer"
)

// stdinSource is the reported input source when no file argument is given.
const stdinSource = "stdin"

var outputFlag = &cli.StringFlag{
	Name:    "output",
	Aliases: []string{"o"},
	Usage:   "Output file path (default: stdout)",
}

var formatFlag = &cli.StringFlag{
	Name:    "format",
	Aliases: []string{"t"},
	Value:   string(serializer.FormatYAML),
	Usage:   fmt.Sprintf("Output format: %s", strings.Join(serializer.SupportedFormats(), ", ")),
	Sources: cli.EnvVars("SEMVER_FORMAT"),
}

var logLevelFlag = &cli.StringFlag{
	Name:    "log-level",
	Usage:   "Log verbosity: debug, info, warn, error",
	Sources: cli.EnvVars("LOG_LEVEL"),
}

// parseOutputFormat reads the format flag and validates it against the
// supported serializer formats.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %s)",
			outFormat, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return outFormat, nil
}

// openInput resolves the command input. An empty path means stdin. The
// returned closer is a no-op for stdin so callers can always defer it.
func openInput(cmd *cli.Command, path string) (io.Reader, string, func() error, error) {
	if strings.TrimSpace(path) == "" {
		in := cmd.Root().Reader
		if in == nil {
			in = os.Stdin
		}
		return in, stdinSource, func() error { return nil }, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, "", nil, errors.WrapWithContext(errors.ErrCodeNotFound,
			"failed to open input file", err, map[string]any{"path": path})
	}
	return file, path, file.Close, nil
}

// stdout returns the command output stream, honoring a Writer override on
// the root command (used by tests).
func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
