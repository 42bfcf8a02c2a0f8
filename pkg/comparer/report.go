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

package comparer

import (
	"time"

	"github.com/NVIDIA/semver/pkg/header"
)

// Relation classifies how the first version of a pair orders against the
// second.
type Relation string

const (
	// RelationBefore indicates the first version orders less than the second.
	RelationBefore Relation = "before"

	// RelationAfter indicates the first version orders greater than the second.
	RelationAfter Relation = "after"

	// RelationEqual indicates the versions order equal. Build metadata is
	// excluded from ordering, so pairs differing only there are equal.
	RelationEqual Relation = "equal"

	// RelationInvalid indicates the line did not contain exactly two tokens
	// or a token failed to parse as a semantic version.
	RelationInvalid Relation = "invalid"
)

// String returns the output word for the relation.
func (r Relation) String() string {
	return string(r)
}

// Report represents the outcome of one batch comparison run.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// InputSource is the path of the compared file, or "stdin".
	InputSource string `json:"inputSource,omitempty" yaml:"inputSource,omitempty"`

	// Summary contains aggregate classification counts.
	Summary Summary `json:"summary" yaml:"summary"`
}

// Summary contains aggregate statistics about a batch comparison run.
type Summary struct {
	// Lines is the number of classified (non-blank) lines.
	Lines int `json:"lines" yaml:"lines"`

	// Before is the count of pairs where the first version orders less.
	Before int `json:"before" yaml:"before"`

	// After is the count of pairs where the first version orders greater.
	After int `json:"after" yaml:"after"`

	// Equal is the count of pairs that order equal.
	Equal int `json:"equal" yaml:"equal"`

	// Invalid is the count of lines that could not be classified.
	Invalid int `json:"invalid" yaml:"invalid"`

	// Skipped is the count of blank lines passed over silently.
	Skipped int `json:"skipped" yaml:"skipped"`

	// Duration is how long the batch run took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// NewReport creates an empty Report.
func NewReport() *Report {
	return &Report{}
}
