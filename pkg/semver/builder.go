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

import "fmt"

// Builder assembles a Version one field at a time. It is the incremental
// construction mode: a fresh Builder has no fields assigned, each setter
// validates its field with the same rules Parse applies, and Version
// refuses to produce a value until major, minor, and patch are all set.
//
// The incomplete state lives entirely inside the Builder; a Version value
// obtained from Version() is always complete, so rendering and comparison
// never have to check for partially assigned data.
type Builder struct {
	major, minor, patch *int
	prerelease, build   []string
}

// NewBuilder returns a Builder with no fields assigned.
func NewBuilder() *Builder {
	return &Builder{}
}

// SetMajor assigns the major component. Fails on negative values.
func (b *Builder) SetMajor(n int) error {
	if n < 0 {
		return fmt.Errorf("major: %w: %d", ErrNegativeComponent, n)
	}
	b.major = &n
	return nil
}

// SetMinor assigns the minor component. Fails on negative values.
func (b *Builder) SetMinor(n int) error {
	if n < 0 {
		return fmt.Errorf("minor: %w: %d", ErrNegativeComponent, n)
	}
	b.minor = &n
	return nil
}

// SetPatch assigns the patch component. Fails on negative values.
func (b *Builder) SetPatch(n int) error {
	if n < 0 {
		return fmt.Errorf("patch: %w: %d", ErrNegativeComponent, n)
	}
	b.patch = &n
	return nil
}

// SetPrerelease assigns the prerelease identifiers, validating each one.
// The builder is left unchanged when any identifier is rejected.
func (b *Builder) SetPrerelease(ids ...string) error {
	if len(ids) == 0 {
		return fmt.Errorf("prerelease: %w", ErrEmptyIdentifier)
	}
	for _, id := range ids {
		if err := validateIdentifier(id, true); err != nil {
			return fmt.Errorf("prerelease %q: %w", id, err)
		}
	}
	b.prerelease = ids
	return nil
}

// SetBuild assigns the build metadata identifiers, validating each one.
// The builder is left unchanged when any identifier is rejected.
func (b *Builder) SetBuild(ids ...string) error {
	if len(ids) == 0 {
		return fmt.Errorf("build metadata: %w", ErrEmptyIdentifier)
	}
	for _, id := range ids {
		if err := validateIdentifier(id, false); err != nil {
			return fmt.Errorf("build metadata %q: %w", id, err)
		}
	}
	b.build = ids
	return nil
}

// Complete returns true once major, minor, and patch are all assigned.
// Prerelease and build metadata are optional and do not affect completeness.
func (b *Builder) Complete() bool {
	return b.major != nil && b.minor != nil && b.patch != nil
}

// Version finalizes the builder into a complete Version. It fails with
// ErrIncompleteVersion while any of major, minor, or patch is unassigned;
// calling it early indicates a caller bug, not bad user input.
func (b *Builder) Version() (Version, error) {
	if !b.Complete() {
		return Version{}, fmt.Errorf("%w: missing%s%s%s", ErrIncompleteVersion,
			missing(" major", b.major), missing(" minor", b.minor), missing(" patch", b.patch))
	}
	return Version{
		Major:      *b.major,
		Minor:      *b.minor,
		Patch:      *b.patch,
		Prerelease: b.prerelease,
		Build:      b.build,
	}, nil
}

func missing(name string, field *int) string {
	if field == nil {
		return name
	}
	return ""
}
