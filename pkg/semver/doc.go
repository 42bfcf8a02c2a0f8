// Package semver provides parsing, validation, canonical rendering, and
// precedence ordering for Semantic Versioning 2.0.0 version identifiers.
//
// # Overview
//
// This package implements the full semver.org 2.0.0 value type:
//
//   - Major.Minor.Patch numeric components with no leading zeros
//   - Optional prerelease identifiers (e.g., "1.2.3-alpha.1")
//   - Optional build metadata (e.g., "1.2.3+exp.sha-5114f85")
//   - The complete precedence algorithm as a single three-way comparison
//
// The grammar is strict: there is no "v" prefix, no partial versions like
// "1.2", and no leading zeros ("01.2.3" is rejected).
//
// # Usage
//
// Parse a version string:
//
//	v, err := semver.Parse("1.2.3-rc.1+build.7")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: 1.2.3-rc.1+build.7
//
// Compare versions:
//
//	a := semver.MustParse("1.0.0-alpha")
//	b := semver.MustParse("1.0.0")
//	fmt.Println(a.LessThan(b)) // Output: true
//
// Create versions programmatically:
//
//	v, err := semver.New(1, 2, 3, semver.WithPrerelease("beta", "2"))
//
// Or assemble one field at a time:
//
//	b := semver.NewBuilder()
//	_ = b.SetMajor(1)
//	_ = b.SetMinor(2)
//	_ = b.SetPatch(3)
//	v, err := b.Version() // fails with ErrIncompleteVersion until all three are set
//
// # Precedence Semantics
//
// Compare implements the semver 2.0 precedence rules:
//
//   - Major, minor, patch compare as integers, in that order
//   - A release always outranks a prerelease of the same numeric triple
//   - Prerelease identifiers compare position by position: numeric before
//     alphanumeric, numeric pairs as integers, alphanumeric pairs in ASCII
//     order, and a strict prefix sequence orders first
//   - Build metadata never participates in ordering
//
// Because build metadata is excluded, Equals reports "1.2.3+a" and "1.2.3+b"
// as equal. StrictEquals is the explicitly separate field-exact comparison
// for callers that need to distinguish them.
//
// # Error Handling
//
// Invalid input is an expected, common case for the batch tooling built on
// this package, so Parse reports failure through its error result instead of
// panicking. Errors wrap a small set of sentinels for programmatic handling:
//
//   - ErrEmptyVersion: input string is empty
//   - ErrInvalidFormat: text does not match the semver 2.0 grammar
//   - ErrLeadingZero: numeric component or identifier has a leading zero
//   - ErrNegativeComponent: constructed component is negative
//   - ErrEmptyIdentifier: prerelease/build identifier is empty
//   - ErrInvalidIdentifier: identifier has characters outside [0-9A-Za-z-]
//   - ErrIncompleteVersion: Builder finalized before major/minor/patch set
//
// For constant initialization, use MustParse which panics on error:
//
//	var MinVersion = semver.MustParse("1.0.0")
//
// # Concurrency
//
// Version values are immutable after construction and hold no external
// resources; they may be compared from independent goroutines without
// coordination. All operations are CPU-bound and complete synchronously.
package semver
