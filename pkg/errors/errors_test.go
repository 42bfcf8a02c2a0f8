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

package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	e := New(ErrCodeInvalidRequest, "bad input")
	if got, want := e.Error(), "[INVALID_REQUEST] bad input"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestErrorFormatWithCause(t *testing.T) {
	cause := stderrors.New("boom")
	e := Wrap(ErrCodeInternal, "failed to read input", cause)
	if got, want := e.Error(), "[INTERNAL] failed to read input: boom"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUnwrap(t *testing.T) {
	e := Wrap(ErrCodeNotFound, "missing file", fs.ErrNotExist)
	if !stderrors.Is(e, fs.ErrNotExist) {
		t.Error("errors.Is failed to find wrapped cause")
	}

	var se *StructuredError
	if !stderrors.As(error(e), &se) {
		t.Error("errors.As failed to find StructuredError")
	}
	if se.Code != ErrCodeNotFound {
		t.Errorf("got code %s, want %s", se.Code, ErrCodeNotFound)
	}
}

func TestContext(t *testing.T) {
	e := NewWithContext(ErrCodeInvalidRequest, "bad line", map[string]any{"line": 3})
	if e.Context["line"] != 3 {
		t.Errorf("context not preserved: %+v", e.Context)
	}

	we := WrapWithContext(ErrCodeInternal, "write failed", stderrors.New("pipe"), map[string]any{"path": "out.yaml"})
	if we.Context["path"] != "out.yaml" {
		t.Errorf("context not preserved: %+v", we.Context)
	}
}
