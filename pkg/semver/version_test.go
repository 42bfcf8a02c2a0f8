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
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      Version
		expectedError bool
	}{
		{
			name:  "plain release",
			input: "1.2.3",
			expected: Version{
				Major: 1,
				Minor: 2,
				Patch: 3,
			},
		},
		{
			name:  "zero version",
			input: "0.0.0",
			expected: Version{
				Major: 0,
				Minor: 0,
				Patch: 0,
			},
		},
		{
			name:  "single prerelease identifier",
			input: "1.0.0-alpha",
			expected: Version{
				Major:      1,
				Minor:      0,
				Patch:      0,
				Prerelease: []string{"alpha"},
			},
		},
		{
			name:  "mixed prerelease identifiers",
			input: "1.0.0-alpha.1",
			expected: Version{
				Major:      1,
				Minor:      0,
				Patch:      0,
				Prerelease: []string{"alpha", "1"},
			},
		},
		{
			name:  "prerelease with hyphens",
			input: "1.0.0-x-y-z.--1",
			expected: Version{
				Major:      1,
				Minor:      0,
				Patch:      0,
				Prerelease: []string{"x-y-z", "--1"},
			},
		},
		{
			name:  "build metadata only",
			input: "1.2.3+build.001",
			expected: Version{
				Major: 1,
				Minor: 2,
				Patch: 3,
				Build: []string{"build", "001"},
			},
		},
		{
			name:  "prerelease and build metadata",
			input: "1.2.3-rc.1+exp.sha-5114f85",
			expected: Version{
				Major:      1,
				Minor:      2,
				Patch:      3,
				Prerelease: []string{"rc", "1"},
				Build:      []string{"exp", "sha-5114f85"},
			},
		},
		{
			name:  "numeric zero prerelease identifier",
			input: "1.0.0-0.alpha",
			expected: Version{
				Major:      1,
				Minor:      0,
				Patch:      0,
				Prerelease: []string{"0", "alpha"},
			},
		},
		{
			name:  "oversized numeric prerelease identifier",
			input: "1.0.0-99999999999999999999",
			expected: Version{
				Major:      1,
				Minor:      0,
				Patch:      0,
				Prerelease: []string{"99999999999999999999"},
			},
		},
		{
			name:  "large components",
			input: "999.999.999",
			expected: Version{
				Major: 999,
				Minor: 999,
				Patch: 999,
			},
		},
		{
			name:          "invalid - empty string",
			input:         "",
			expectedError: true,
		},
		{
			name:          "invalid - v prefix",
			input:         "v1.2.3",
			expectedError: true,
		},
		{
			name:          "invalid - two components",
			input:         "1.2",
			expectedError: true,
		},
		{
			name:          "invalid - four components",
			input:         "1.2.3.4",
			expectedError: true,
		},
		{
			name:          "invalid - leading zero in major",
			input:         "01.2.3",
			expectedError: true,
		},
		{
			name:          "invalid - leading zero in patch",
			input:         "1.2.03",
			expectedError: true,
		},
		{
			name:          "invalid - leading zero in numeric prerelease",
			input:         "1.2.3-01",
			expectedError: true,
		},
		{
			name:          "invalid - empty prerelease identifier",
			input:         "1.2.3-alpha..1",
			expectedError: true,
		},
		{
			name:          "invalid - trailing dash",
			input:         "1.2.3-",
			expectedError: true,
		},
		{
			name:          "invalid - trailing plus",
			input:         "1.2.3+",
			expectedError: true,
		},
		{
			name:          "invalid - disallowed character in prerelease",
			input:         "1.2.3-alpha_1",
			expectedError: true,
		},
		{
			name:          "invalid - non-numeric component",
			input:         "1.a.3",
			expectedError: true,
		},
		{
			name:          "invalid - negative component",
			input:         "-1.2.3",
			expectedError: true,
		},
		{
			name:          "invalid - whitespace",
			input:         " 1.2.3",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.input)
			if tt.expectedError {
				if err == nil {
					t.Errorf("expected error but got none (result: %+v)", result)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("got %+v, want %+v", result, tt.expected)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedErr error
	}{
		{
			name:        "empty string",
			input:       "",
			expectedErr: ErrEmptyVersion,
		},
		{
			name:        "grammar mismatch",
			input:       "1.2",
			expectedErr: ErrInvalidFormat,
		},
		{
			name:        "leading zero component",
			input:       "01.2.3",
			expectedErr: ErrLeadingZero,
		},
		{
			name:        "leading zero numeric prerelease",
			input:       "1.2.3-01",
			expectedErr: ErrLeadingZero,
		},
		{
			name:        "empty identifier",
			input:       "1.2.3-a..b",
			expectedErr: ErrEmptyIdentifier,
		},
		{
			name:        "bad identifier character",
			input:       "1.2.3+meta$",
			expectedErr: ErrInvalidIdentifier,
		},
		{
			name:        "component overflows int range",
			input:       "99999999999999999999.0.0",
			expectedErr: ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected error wrapping %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []string{
		"0.0.0",
		"1.2.3",
		"10.20.30",
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-0.3.7",
		"1.0.0-x.7.z.92",
		"1.0.0-x-y-z.--1",
		"1.2.3+build",
		"1.2.3+build.001.meta",
		"1.0.0-alpha+001",
		"1.0.0-beta+exp.sha.5114f85",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			v, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got := v.String(); got != input {
				t.Errorf("round-trip mismatch: got %q, want %q", got, input)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		version  Version
		expected string
	}{
		{
			name:     "release only",
			version:  Version{Major: 1, Minor: 2, Patch: 3},
			expected: "1.2.3",
		},
		{
			name:     "with prerelease",
			version:  Version{Major: 1, Minor: 2, Patch: 3, Prerelease: []string{"rc", "1"}},
			expected: "1.2.3-rc.1",
		},
		{
			name:     "with build metadata",
			version:  Version{Major: 1, Minor: 2, Patch: 3, Build: []string{"b", "7"}},
			expected: "1.2.3+b.7",
		},
		{
			name: "with both",
			version: Version{
				Major: 1, Minor: 2, Patch: 3,
				Prerelease: []string{"alpha"},
				Build:      []string{"somebuild"},
			},
			expected: "1.2.3-alpha+somebuild",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.version.String(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		major         int
		minor         int
		patch         int
		opts          []Option
		expected      string
		expectedError error
	}{
		{
			name:  "plain release",
			major: 1, minor: 2, patch: 3,
			expected: "1.2.3",
		},
		{
			name:  "with prerelease and build",
			major: 1, minor: 0, patch: 0,
			opts:     []Option{WithPrerelease("rc", "1"), WithBuild("build", "42")},
			expected: "1.0.0-rc.1+build.42",
		},
		{
			name:  "negative major",
			major: -1, minor: 0, patch: 0,
			expectedError: ErrNegativeComponent,
		},
		{
			name:  "negative patch",
			major: 1, minor: 0, patch: -3,
			expectedError: ErrNegativeComponent,
		},
		{
			name:  "invalid prerelease identifier",
			major: 1, minor: 0, patch: 0,
			opts:          []Option{WithPrerelease("alpha", "be ta")},
			expectedError: ErrInvalidIdentifier,
		},
		{
			name:  "leading zero numeric prerelease",
			major: 1, minor: 0, patch: 0,
			opts:          []Option{WithPrerelease("007")},
			expectedError: ErrLeadingZero,
		},
		{
			name:  "empty build identifier",
			major: 1, minor: 0, patch: 0,
			opts:          []Option{WithBuild("meta", "")},
			expectedError: ErrEmptyIdentifier,
		},
		{
			name:  "no prerelease identifiers at all",
			major: 1, minor: 0, patch: 0,
			opts:          []Option{WithPrerelease()},
			expectedError: ErrEmptyIdentifier,
		},
		{
			name:  "no build identifiers at all",
			major: 1, minor: 0, patch: 0,
			opts:          []Option{WithBuild()},
			expectedError: ErrEmptyIdentifier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New(tt.major, tt.minor, tt.patch, tt.opts...)
			if tt.expectedError != nil {
				if err == nil {
					t.Fatalf("expected error, got version %+v", v)
				}
				if !errors.Is(err, tt.expectedError) {
					t.Errorf("expected error wrapping %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := v.String(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewMatchesParse(t *testing.T) {
	built, err := New(2, 4, 6, WithPrerelease("beta", "11"), WithBuild("linux", "amd64"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	parsed, err := Parse("2.4.6-beta.11+linux.amd64")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !built.StrictEquals(parsed) {
		t.Errorf("constructed %+v differs from parsed %+v", built, parsed)
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Fields
	}{
		{
			name:  "release only",
			input: "1.2.3",
			expected: Fields{
				Major: 1, Minor: 2, Patch: 3,
			},
		},
		{
			name:  "all components",
			input: "1.2.3-rc.1+build.7",
			expected: Fields{
				Major: 1, Minor: 2, Patch: 3,
				Prerelease: "rc.1",
				Build:      "build.7",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := MustParse(tt.input)
			if got := v.Fields(); got != tt.expected {
				t.Errorf("got %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestMustParse(t *testing.T) {
	// Should not panic on valid input
	v := MustParse("1.2.3-alpha")
	if v.Major != 1 || v.Minor != 2 || v.Patch != 3 {
		t.Errorf("MustParse failed: got %+v", v)
	}

	// Should panic on invalid input
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse did not panic on invalid input")
		}
	}()
	MustParse("not-a-version")
}

// ExampleParse demonstrates parsing a full version string
func ExampleParse() {
	v, _ := Parse("1.2.3-rc.1+build.7")
	fmt.Println(v.Major)
	fmt.Println(v.Prerelease)
	fmt.Println(v.String())
	// Output:
	// 1
	// [rc 1]
	// 1.2.3-rc.1+build.7
}

// ExampleVersion_Fields demonstrates the flat projection of a version
func ExampleVersion_Fields() {
	v := MustParse("1.2.3-beta.2+linux")
	f := v.Fields()
	fmt.Printf("%d.%d.%d prerelease=%q build=%q\n", f.Major, f.Minor, f.Patch, f.Prerelease, f.Build)
	// Output:
	// 1.2.3 prerelease="beta.2" build="linux"
}
