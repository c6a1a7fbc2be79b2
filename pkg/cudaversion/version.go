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

package cudaversion

import (
	"log/slog"
	"regexp"
	"strings"
)

// Fallback is the fixed, always-valid version used when no real version
// can be recovered from the input.
const Fallback = "0.0.0"

// Source classifies how a sanitized value was produced.
type Source string

const (
	// SourceEmpty indicates the input was empty; the caller must treat the
	// empty value as "no version available", distinct from the fallback.
	SourceEmpty Source = "empty"
	// SourceExtracted indicates the value is the first contiguous
	// dotted-numeric run found in the input.
	SourceExtracted Source = "extracted"
	// SourceStripped indicates the whole input matched after removing
	// whitespace.
	SourceStripped Source = "stripped"
	// SourceFallback indicates nothing usable was found and the fixed
	// Fallback value was substituted.
	SourceFallback Source = "fallback"
)

// Result is the outcome of sanitizing a raw version string. The Value is
// always safe for numeric-version comparison (or empty for empty input);
// Source records which path produced it so degraded results stay visible
// in diagnostics without ever surfacing as errors.
type Result struct {
	Value  string `json:"value" yaml:"value"`
	Source Source `json:"source" yaml:"source"`
}

// OrFallback returns the sanitized value, substituting Fallback when the
// input was empty. Use this when a downstream consumer requires a
// well-formed version unconditionally (e.g. an env var override).
func (r Result) OrFallback() string {
	if r.Value == "" {
		return Fallback
	}
	return r.Value
}

var (
	// First contiguous dotted-numeric run. The scan stops at the first
	// non-digit, non-dot character after it starts, so digit groups
	// separated by interior whitespace are not merged.
	runPattern = regexp.MustCompile(`\d+(\.\d+)*`)

	// Entire-string match used after whitespace stripping.
	fullPattern = regexp.MustCompile(`^\d+(\.\d+)*$`)

	wellFormedPattern = regexp.MustCompile(`^\d+(\.\d+)+$`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Sanitize converts an arbitrary, possibly malformed, raw string (embedded
// whitespace, newlines, trailing junk) into a version string suitable for
// numeric comparison. It is total: every input maps to a Result, never an
// error. Empty input yields an empty value; unrecoverable input yields the
// Fallback constant.
func Sanitize(raw string) Result {
	if raw == "" {
		slog.Debug("sanitize: empty input")
		return Result{Source: SourceEmpty}
	}

	if run := runPattern.FindString(raw); run != "" {
		value := ensureMinor(run)
		slog.Debug("sanitize: extracted version run",
			"raw", raw,
			"value", value)
		sanitizeTotal.WithLabelValues(string(SourceExtracted)).Inc()
		return Result{Value: value, Source: SourceExtracted}
	}

	stripped := whitespacePattern.ReplaceAllString(raw, "")
	if stripped != "" && fullPattern.MatchString(stripped) {
		value := ensureMinor(stripped)
		slog.Debug("sanitize: matched after whitespace strip",
			"raw", raw,
			"value", value)
		sanitizeTotal.WithLabelValues(string(SourceStripped)).Inc()
		return Result{Value: value, Source: SourceStripped}
	}

	slog.Debug("sanitize: no version recoverable, using fallback",
		"raw", raw,
		"fallback", Fallback)
	sanitizeTotal.WithLabelValues(string(SourceFallback)).Inc()
	return Result{Value: Fallback, Source: SourceFallback}
}

// Clean returns just the sanitized value for callers that do not care how
// it was produced.
func Clean(raw string) string {
	return Sanitize(raw).Value
}

// IsWellFormed reports whether s is a dotted-numeric version with at least
// two components (major.minor), the shape required by downstream consumers.
func IsWellFormed(s string) bool {
	return wellFormedPattern.MatchString(s)
}

// ensureMinor forces major.minor shape on a bare integer.
func ensureMinor(v string) string {
	if !strings.Contains(v, ".") {
		return v + ".0"
	}
	return v
}
