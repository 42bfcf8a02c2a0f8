// Package errors provides structured errors with classification codes for
// the tool boundary.
//
// The version value type in pkg/semver reports its own failures through
// sentinel errors (grammar mismatch, invalid field, incomplete version);
// this package wraps failures that cross the CLI surface, such as
// unreadable input files and write failures, with a code, a message, and
// the underlying cause so they log and render consistently.
package errors
