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

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/semver/pkg/header"
)

func TestSortByPrecedence(t *testing.T) {
	path := writeInputFile(t, "1.0.0\n1.0.0-rc.1\n2.1.0\n1.0.0-alpha\n")

	out, err := runRoot(t, "", "sort", path)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0-alpha\n1.0.0-rc.1\n1.0.0\n2.1.0\n", out)
}

func TestSortReverse(t *testing.T) {
	out, err := runRoot(t, "1.0.0\n0.9.0\n1.1.0\n", "sort", "--reverse")
	require.NoError(t, err)
	assert.Equal(t, "1.1.0\n1.0.0\n0.9.0\n", out)
}

func TestSortSkipsInvalidLines(t *testing.T) {
	path := writeInputFile(t, "1.0.0\nnot-a-version\n\n0.1.0\n")

	out, err := runRoot(t, "", "sort", path)
	require.NoError(t, err)
	assert.Equal(t, "0.1.0\n1.0.0\n", out)
}

func TestSortStrictFailsOnInvalid(t *testing.T) {
	path := writeInputFile(t, "1.0.0\nnot-a-version\n")

	_, err := runRoot(t, "", "sort", path, "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse version")
}

func TestSortStableForEqualPrecedence(t *testing.T) {
	// Build metadata does not participate in ordering, so input order wins.
	out, err := runRoot(t, "1.0.0+bbb\n1.0.0+aaa\n", "sort")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0+bbb\n1.0.0+aaa\n", out)
}

func TestSortOutputFile(t *testing.T) {
	input := writeInputFile(t, "2.0.0\n1.0.0\nbogus\n")
	output := filepath.Join(t.TempDir(), "sorted.yaml")

	out, err := runRoot(t, "", "sort", input, "-o", output)
	require.NoError(t, err)
	assert.Empty(t, out)

	content, err := os.ReadFile(output)
	require.NoError(t, err)

	var result sortResult
	require.NoError(t, yaml.Unmarshal(content, &result))
	assert.Equal(t, header.KindSortResult, result.Kind)
	assert.Equal(t, input, result.InputSource)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, []string{"1.0.0", "2.0.0"}, result.Versions)
}
