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

import "strings"

// Compare returns an integer comparing two versions by Semver 2.0
// precedence: -1 if v < other, 0 if v == other, 1 if v > other.
//
// Major, minor, and patch are compared as integers in that order. When the
// numeric triples are equal, a version without a prerelease is greater than
// one with a prerelease. Two prerelease sequences are compared identifier
// by identifier: numeric identifiers order below alphanumeric ones, numeric
// pairs compare as integers, alphanumeric pairs compare lexically in ASCII
// order, and when one sequence is a strict prefix of the other the shorter
// one is less. Build metadata is never consulted.
//
// Useful directly for sorting; the named relational methods are all derived
// from it.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		return intCompare(v.Major, other.Major)
	}
	if v.Minor != other.Minor {
		return intCompare(v.Minor, other.Minor)
	}
	if v.Patch != other.Patch {
		return intCompare(v.Patch, other.Patch)
	}
	return comparePrerelease(v.Prerelease, other.Prerelease)
}

// Equals returns true if v and other are equal by precedence.
// Build metadata is excluded, so "1.2.3+a" equals "1.2.3+b"; use
// StrictEquals when that distinction matters.
func (v Version) Equals(other Version) bool {
	return v.Compare(other) == 0
}

// NotEquals returns true if v and other differ by precedence.
func (v Version) NotEquals(other Version) bool {
	return v.Compare(other) != 0
}

// LessThan returns true if v orders before other.
func (v Version) LessThan(other Version) bool {
	return v.Compare(other) < 0
}

// GreaterThan returns true if v orders after other.
func (v Version) GreaterThan(other Version) bool {
	return v.Compare(other) > 0
}

// LessOrEqual returns true if v orders before or equal to other.
func (v Version) LessOrEqual(other Version) bool {
	return v.Compare(other) <= 0
}

// GreaterOrEqual returns true if v orders after or equal to other.
func (v Version) GreaterOrEqual(other Version) bool {
	return v.Compare(other) >= 0
}

// StrictEquals returns true if every field matches exactly, including build
// metadata. This is a deliberately separate operation from Equals: the
// semver precedence rules define equality without build metadata, and the
// two notions differ only in that field.
func (v Version) StrictEquals(other Version) bool {
	if v.Compare(other) != 0 {
		return false
	}
	if len(v.Build) != len(other.Build) {
		return false
	}
	for i := range v.Build {
		if v.Build[i] != other.Build[i] {
			return false
		}
	}
	return true
}

// comparePrerelease orders two prerelease sequences. An absent (nil)
// sequence marks a release, which takes precedence over any prerelease.
func comparePrerelease(a, b []string) int {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	if len(a) == 0 {
		return 1
	}
	if len(b) == 0 {
		return -1
	}

	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareIdentifier(a[i], b[i]); c != 0 {
			return c
		}
	}

	// All shared positions equal: the shorter sequence is less.
	return intCompare(len(a), len(b))
}

// compareIdentifier orders a single pair of prerelease identifiers.
// Numeric identifiers always have lower precedence than alphanumeric ones.
func compareIdentifier(a, b string) int {
	aNum, bNum := isNumeric(a), isNumeric(b)
	switch {
	case aNum && bNum:
		return compareNumeric(a, b)
	case aNum:
		return -1
	case bNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// compareNumeric orders two all-digit identifiers as integers. Neither can
// carry a leading zero, so the longer digit sequence is the larger number
// and equal lengths reduce to a lexical comparison. This avoids integer
// overflow on oversized identifiers.
func compareNumeric(a, b string) int {
	if len(a) != len(b) {
		return intCompare(len(a), len(b))
	}
	return strings.Compare(a, b)
}

// isNumeric returns true if the identifier consists solely of digits.
func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func intCompare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
