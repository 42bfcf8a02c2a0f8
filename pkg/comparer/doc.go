// Package comparer implements line-oriented batch comparison of semantic
// version pairs.
//
// # Overview
//
// Each input line is expected to hold exactly two whitespace-separated
// candidate version strings. The pair is classified as one of:
//
//   - before: the first version orders less than the second
//   - after: the first version orders greater than the second
//   - equal: the versions order equal (build metadata is not consulted)
//   - invalid: the line does not split into exactly two tokens, or either
//     token fails to parse as a Semver 2.0 version
//
// One word is printed per line. Invalid lines are an expected part of the
// input and never abort the batch; blank lines are skipped silently.
//
// # Usage
//
//	c := comparer.New(comparer.WithVersion(version))
//	report, err := c.Run(ctx, os.Stdin, os.Stdout)
//	if err != nil {
//	    // read/write failure or cancellation, not a classification outcome
//	}
//	slog.Info("done", "lines", report.Summary.Lines, "invalid", report.Summary.Invalid)
//
// The returned Report carries aggregate counts and run metadata and can be
// serialized with pkg/serializer for audit output.
package comparer
