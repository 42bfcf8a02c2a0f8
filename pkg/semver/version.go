// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package semver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version parsing and field validation failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrInvalidFormat     = errors.New("version does not match the semver 2.0 grammar")
	ErrLeadingZero       = errors.New("numeric component has a leading zero")
	ErrNegativeComponent = errors.New("version component cannot be negative")
	ErrEmptyIdentifier   = errors.New("identifier is empty")
	ErrInvalidIdentifier = errors.New("identifier contains characters outside [0-9A-Za-z-]")
	ErrIncompleteVersion = errors.New("version is incomplete")
)

// Version represents a Semantic Versioning 2.0.0 version number.
// Major, Minor, and Patch are the numeric components. Prerelease and Build
// hold the dot-separated identifier sequences following "-" and "+"
// respectively; a nil slice means the component is absent, which is a
// distinct state from an empty one (a version either carries a prerelease
// or it does not).
//
// Values produced by Parse, New, or Builder.Version are always complete and
// valid; comparing or rendering them is safe without further checks.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`

	// Prerelease holds the identifiers after "-" (e.g., ["alpha", "1"] for "-alpha.1")
	Prerelease []string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`

	// Build holds the identifiers after "+" (e.g., ["exp", "sha-5114f85"]).
	// Build metadata is carried through rendering but never consulted in ordering.
	Build []string `json:"build,omitempty" yaml:"build,omitempty"`
}

// Option is a functional option for constructing Version instances with New.
type Option func(*Version)

// WithPrerelease returns an Option that sets the prerelease identifiers.
// Identifiers are validated by New using the same rules as Parse. Calling
// the option with no identifiers means present-but-empty, which New
// rejects; an absent prerelease is expressed by omitting the option.
func WithPrerelease(ids ...string) Option {
	return func(v *Version) {
		v.Prerelease = append([]string{}, ids...)
	}
}

// WithBuild returns an Option that sets the build metadata identifiers.
// Identifiers are validated by New using the same rules as Parse. Calling
// the option with no identifiers means present-but-empty, which New
// rejects; absent build metadata is expressed by omitting the option.
func WithBuild(ids ...string) Option {
	return func(v *Version) {
		v.Build = append([]string{}, ids...)
	}
}

// New creates a Version from explicit field values, validating each field
// with the same character and leading-zero rules that Parse applies.
// Returns an error if any component is negative or any identifier is invalid;
// a rejected version is never returned in a half-valid state.
func New(major, minor, patch int, opts ...Option) (Version, error) {
	v := Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}
	for _, opt := range opts {
		opt(&v)
	}

	for _, n := range []int{major, minor, patch} {
		if n < 0 {
			return Version{}, fmt.Errorf("%w: %d", ErrNegativeComponent, n)
		}
	}
	if v.Prerelease != nil {
		if len(v.Prerelease) == 0 {
			return Version{}, fmt.Errorf("%w: prerelease requires at least one identifier", ErrEmptyIdentifier)
		}
		for _, id := range v.Prerelease {
			if err := validateIdentifier(id, true); err != nil {
				return Version{}, fmt.Errorf("prerelease %q: %w", id, err)
			}
		}
	}
	if v.Build != nil {
		if len(v.Build) == 0 {
			return Version{}, fmt.Errorf("%w: build metadata requires at least one identifier", ErrEmptyIdentifier)
		}
		for _, id := range v.Build {
			if err := validateIdentifier(id, false); err != nil {
				return Version{}, fmt.Errorf("build metadata %q: %w", id, err)
			}
		}
	}

	return v, nil
}

// Parse parses a version string into a Version struct.
// The input must match the canonical Semver 2.0 grammar
// "major.minor.patch[-prerelease][+buildmetadata]": numeric components with
// no leading zeros, identifiers restricted to [0-9A-Za-z-], numeric
// prerelease identifiers likewise free of leading zeros. There is no "v"
// prefix in the grammar; "v1.2.3" is rejected. Major, minor, and patch
// must each fit in an int; a component beyond that range fails with
// ErrInvalidFormat. Prerelease identifiers carry no such bound because
// they are kept as strings and ordered without integer conversion.
//
// A malformed string is an expected, common input for the batch tooling, so
// failure is reported through the error result rather than a panic.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	var v Version

	// Split off build metadata first: the "+" separator cannot appear in
	// any identifier, so everything after the first one is build metadata.
	core := s
	build := ""
	hasBuild := false
	if i := strings.IndexByte(core, '+'); i >= 0 {
		core, build = core[:i], core[i+1:]
		hasBuild = true
	}

	// The first "-" after the numeric triple starts the prerelease; the
	// numeric components themselves cannot contain one.
	pre := ""
	hasPre := false
	if i := strings.IndexByte(core, '-'); i >= 0 {
		core, pre = core[:i], core[i+1:]
		hasPre = true
	}

	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q has %d numeric component(s), want 3", ErrInvalidFormat, s, len(parts))
	}

	for i, part := range parts {
		num, err := parseNumericComponent(part)
		if err != nil {
			return Version{}, fmt.Errorf("%q: %w", s, err)
		}
		switch i {
		case 0:
			v.Major = num
		case 1:
			v.Minor = num
		case 2:
			v.Patch = num
		}
	}

	if hasPre {
		ids, err := parseIdentifiers(pre, true)
		if err != nil {
			return Version{}, fmt.Errorf("%q: prerelease: %w", s, err)
		}
		v.Prerelease = ids
	}
	if hasBuild {
		ids, err := parseIdentifiers(build, false)
		if err != nil {
			return Version{}, fmt.Errorf("%q: build metadata: %w", s, err)
		}
		v.Build = ids
	}

	return v, nil
}

// MustParse parses a version string and panics if parsing fails.
// Use only for hardcoded strings or in tests; for user input or runtime
// data, always use Parse and handle errors explicitly.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// String returns the canonical rendering of the version:
// "major.minor.patch", suffixed with "-" and the dot-joined prerelease
// identifiers when present, then "+" and the dot-joined build metadata
// identifiers when present. For any value produced by Parse, String is the
// exact inverse of the parse.
func (v Version) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(v.Major))
	b.WriteByte('.')
	b.WriteString(strconv.Itoa(v.Minor))
	b.WriteByte('.')
	b.WriteString(strconv.Itoa(v.Patch))
	if len(v.Prerelease) > 0 {
		b.WriteByte('-')
		b.WriteString(strings.Join(v.Prerelease, "."))
	}
	if len(v.Build) > 0 {
		b.WriteByte('+')
		b.WriteString(strings.Join(v.Build, "."))
	}
	return b.String()
}

// Fields is a flat projection of a Version used for inspection and
// serialized output. Prerelease and Build carry the canonical dot-joined
// form, empty when the component is absent.
type Fields struct {
	Major      int    `json:"major" yaml:"major"`
	Minor      int    `json:"minor" yaml:"minor"`
	Patch      int    `json:"patch" yaml:"patch"`
	Prerelease string `json:"prerelease" yaml:"prerelease"`
	Build      string `json:"build" yaml:"build"`
}

// Fields returns the flat projection of the version. It is intended for
// inspection and output formatting; ordering logic operates on the
// structured identifiers directly.
func (v Version) Fields() Fields {
	return Fields{
		Major:      v.Major,
		Minor:      v.Minor,
		Patch:      v.Patch,
		Prerelease: strings.Join(v.Prerelease, "."),
		Build:      strings.Join(v.Build, "."),
	}
}

// parseNumericComponent parses major, minor, or patch: digits only,
// non-negative, no leading zero unless the component is exactly "0".
func parseNumericComponent(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty numeric component", ErrInvalidFormat)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: %q is not a digit sequence", ErrInvalidFormat, s)
		}
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, fmt.Errorf("%w: %q", ErrLeadingZero, s)
	}
	num, err := strconv.Atoi(s)
	if err != nil {
		// The digit check above already passed, so the only remaining
		// failure is a value outside the int range.
		return 0, fmt.Errorf("%w: %q overflows the numeric component range", ErrInvalidFormat, s)
	}
	return num, nil
}

// parseIdentifiers splits a prerelease or build metadata sequence on dots
// and validates each identifier. numericRule enables the leading-zero
// restriction that applies to numeric prerelease identifiers only.
func parseIdentifiers(s string, numericRule bool) ([]string, error) {
	ids := strings.Split(s, ".")
	for _, id := range ids {
		if err := validateIdentifier(id, numericRule); err != nil {
			return nil, fmt.Errorf("%q: %w", id, err)
		}
	}
	return ids, nil
}

// validateIdentifier checks a single identifier against the [0-9A-Za-z-]+
// rule. With numericRule set, an all-digit identifier must not have a
// leading zero unless it is the single digit "0".
func validateIdentifier(id string, numericRule bool) error {
	if id == "" {
		return ErrEmptyIdentifier
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c == '-':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidIdentifier, c)
		}
	}
	if numericRule && len(id) > 1 && id[0] == '0' && isNumeric(id) {
		return ErrLeadingZero
	}
	return nil
}
