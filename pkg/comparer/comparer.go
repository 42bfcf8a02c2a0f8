/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package comparer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/NVIDIA/semver/pkg/errors"
	"github.com/NVIDIA/semver/pkg/header"
	"github.com/NVIDIA/semver/pkg/semver"
)

const (
	// APIVersion is the API version for compare reports.
	APIVersion = "semver.nvidia.com/v1alpha1"

	// maxLineBytes bounds how much of a single input line is buffered for
	// classification. Longer lines are reported as invalid rather than
	// failing the batch; the unread remainder is discarded up to the next
	// newline.
	maxLineBytes = 1024 * 1024
)

// Classify compares two candidate version strings and returns their
// relation. Either string failing to parse yields RelationInvalid; parse
// failure is an expected outcome here, never an error.
func Classify(a, b string) Relation {
	va, err := semver.Parse(a)
	if err != nil {
		return RelationInvalid
	}
	vb, err := semver.Parse(b)
	if err != nil {
		return RelationInvalid
	}

	switch va.Compare(vb) {
	case -1:
		return RelationBefore
	case 1:
		return RelationAfter
	default:
		return RelationEqual
	}
}

// ClassifyLine splits an input line into whitespace-separated tokens and
// classifies the pair. The second return is false for blank lines, which
// are skipped silently rather than reported. A line with any token count
// other than two is invalid.
func ClassifyLine(line string) (Relation, bool) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return RelationInvalid, false
	}
	if len(tokens) != 2 {
		return RelationInvalid, true
	}
	return Classify(tokens[0], tokens[1]), true
}

// readLine returns the next input line without its terminator. A line
// longer than maxLineBytes sets tooLong; its content is dropped and the
// reader is advanced past the terminating newline, so the caller resumes
// cleanly on the following line. At end of input readLine returns the
// final unterminated line, if any, together with io.EOF.
func readLine(r *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			return string(buf), tooLong, err
		}
		if !tooLong {
			if len(buf)+len(chunk) > maxLineBytes {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

// Comparer runs line-oriented batch comparison of version pairs.
type Comparer struct {
	// Version is the comparer version (typically the CLI version).
	Version string
}

// Option is a functional option for configuring Comparer instances.
type Option func(*Comparer)

// WithVersion returns an Option that sets the Comparer version string.
func WithVersion(version string) Option {
	return func(c *Comparer) {
		c.Version = version
	}
}

// New creates a new Comparer with the provided options.
func New(opts ...Option) *Comparer {
	c := &Comparer{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run reads lines from r, classifies each as before, after, equal, or
// invalid, and writes one word per line to w. Invalid lines are reported
// and processing continues; no line failure aborts the batch. Blank lines
// are skipped, and lines exceeding the buffering bound are reported as
// invalid. Returns a Report with per-relation counts.
//
// Only a read/write failure or context cancellation produces an error.
func (c *Comparer) Run(ctx context.Context, r io.Reader, w io.Writer) (*Report, error) {
	start := time.Now()

	result := NewReport()
	result.Init(header.KindCompareReport, APIVersion, c.Version)

	reader := bufio.NewReaderSize(r, 64*1024)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line, tooLong, readErr := readLine(reader)
		if readErr != nil && readErr != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInternal, "failed to read input", readErr)
		}
		if readErr == io.EOF && line == "" && !tooLong {
			break
		}

		var rel Relation
		counted := true
		if tooLong {
			rel = RelationInvalid
		} else {
			rel, counted = ClassifyLine(line)
		}

		if counted {
			if _, err := fmt.Fprintln(w, rel); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, "failed to write classification", err)
			}

			result.Summary.Lines++
			switch rel {
			case RelationBefore:
				result.Summary.Before++
			case RelationAfter:
				result.Summary.After++
			case RelationEqual:
				result.Summary.Equal++
			case RelationInvalid:
				result.Summary.Invalid++
			}
		} else {
			result.Summary.Skipped++
		}

		if readErr == io.EOF {
			break
		}
	}

	result.Summary.Duration = time.Since(start)

	slog.Debug("batch comparison completed",
		"lines", result.Summary.Lines,
		"before", result.Summary.Before,
		"after", result.Summary.After,
		"equal", result.Summary.Equal,
		"invalid", result.Summary.Invalid,
		"skipped", result.Summary.Skipped,
		"duration", result.Summary.Duration)

	return result, nil
}
