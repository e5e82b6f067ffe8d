// Copyright (c) 2024 John Millikin <john@john-millikin.com>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package testutil

import (
	"fmt"
	"io/fs"
	"iter"
	"regexp"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Diagnostic is a registered error or warning code, as listed in a
// testdata catalog such as diagnostics/errors.json.
type Diagnostic struct {
	Key     string
	Code    uint32
	Message string
	Pattern *regexp.Regexp
}

// LoadDiagnostics reads a catalog keyed by diagnostic name. Keys starting
// with '_' reserve a code without describing it.
func LoadDiagnostics(testdata fs.FS, path string) (map[string]*Diagnostic, error) {
	type raw struct {
		Code    uint32 `json:"code"`
		Message string `json:"message"`
		Pattern string `json:"message_pattern"`
	}

	jsonData, err := fs.ReadFile(testdata, path)
	if err != nil {
		return nil, err
	}

	var rawDiags map[string]raw
	if err := json.Unmarshal(jsonData, &rawDiags); err != nil {
		return nil, err
	}

	out := make(map[string]*Diagnostic, len(rawDiags))
	codes := make(map[uint32]struct{}, len(rawDiags))
	for key, raw := range rawDiags {
		if raw.Code != 0 {
			if _, conflict := codes[raw.Code]; conflict {
				return nil, fmt.Errorf("%s: duplicate code %d", path, raw.Code)
			}
			codes[raw.Code] = struct{}{}
		}
		if key[0] == '_' {
			continue
		}
		if raw.Code == 0 {
			return nil, fmt.Errorf("%s: %q has no code", path, key)
		}

		var pattern *regexp.Regexp
		if raw.Pattern != "" {
			pattern, err = regexp.Compile("(?i)" + raw.Pattern)
			if err != nil {
				return nil, err
			}
		}
		out[key] = &Diagnostic{
			Key:     key,
			Code:    raw.Code,
			Message: raw.Message,
			Pattern: pattern,
		}
	}
	return out, nil
}

// LoadExpected reads a per-case list of diagnostic names, such as
// {"errors": ["unsupported_primitive"]}, resolving each against the catalog.
func LoadExpected(
	t *testing.T,
	catalog map[string]*Diagnostic,
	testdata fs.FS,
	jsonPath string,
	listKey string,
) []*Diagnostic {
	t.Helper()

	jsonData, err := fs.ReadFile(testdata, jsonPath)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string][]string
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		t.Fatal(err)
	}

	var out []*Diagnostic
	for _, name := range raw[listKey] {
		diag, ok := catalog[name]
		if !ok {
			t.Fatalf("%s: unknown diagnostic name %q", jsonPath, name)
		}
		out = append(out, diag)
	}
	return out
}

// CodedMessage is implemented by the error and warning types that carry a
// stable diagnostic code.
type CodedMessage interface {
	Code() uint32
	Message() string
}

// ExpectDiagnostics matches got against want pairwise, by code and then by
// message or message pattern.
func ExpectDiagnostics[D CodedMessage](t *testing.T, kind string, want []*Diagnostic, got []D) {
	t.Helper()
	for ii := 0; ii < max(len(want), len(got)); ii++ {
		if ii >= len(got) {
			t.Errorf("expected %s %q (code %d)", kind, want[ii].Key, want[ii].Code)
			continue
		}
		if ii >= len(want) {
			t.Errorf("unexpected %s %q (code %d)", kind, got[ii].Message(), got[ii].Code())
			continue
		}
		ExpectEq(t, want[ii].Code, got[ii].Code())
		if want[ii].Pattern != nil {
			ExpectMatch(t, want[ii].Pattern, got[ii].Message())
		} else if want[ii].Message != "" {
			ExpectEq(t, want[ii].Message, got[ii].Message())
		}
	}
}

func Zip[X any, Y any](xs []X, ys []Y) iter.Seq2[*X, *Y] {
	maxLen := max(len(xs), len(ys))
	return func(yield func(x *X, y *Y) bool) {
		for ii := 0; ii < maxLen; ii++ {
			var x *X
			var y *Y
			if ii < len(xs) {
				x = &xs[ii]
			}
			if ii < len(ys) {
				y = &ys[ii]
			}
			if !yield(x, y) {
				return
			}
		}
	}
}
