// Package cli implements the command-line interface for the semver tool.
//
// # Overview
//
// The semver CLI parses, compares, and orders Semantic Versioning 2.0.0
// version strings. It is designed to work as a plain filter in pipelines:
// the default command reads version pairs and writes one classification
// word per line to stdout, with all diagnostics on stderr.
//
// # Commands
//
// compare (also the default action) - classify version pairs:
//
//	semver [compare] [FILE] [--summary report.yaml] [--format yaml|json|table]
//
// Reads lines of two whitespace-separated version strings from FILE or
// stdin and prints before, after, equal, or invalid per line. The optional
// summary report carries aggregate counts.
//
// parse - inspect a single version:
//
//	semver parse VERSION [--output FILE] [--format yaml|json|table]
//
// Prints the canonical rendering and the field breakdown (major, minor,
// patch, prerelease, build) of one version string.
//
// sort - order versions by precedence:
//
//	semver sort [FILE] [--reverse] [--strict] [--output FILE]
//
// Reads one version per line and prints them lowest precedence first.
//
// # Global Flags
//
//	--log-level    Log verbosity: debug, info, warn, error
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	LOG_LEVEL      Set logging verbosity (debug, info, warn, error)
//	SEMVER_FORMAT  Default output format for serialized results
//
// # Exit Codes
//
//	0  Success (invalid input lines still exit 0; they are classified, not errors)
//	1  General error (bad arguments, unreadable input, execution failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/semver - version parsing, rendering, and precedence
//   - pkg/comparer - line-oriented batch classification
//   - pkg/serializer - output formatting
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/semver/pkg/cli.version=1.0.0'"
package cli
