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

package main

import (
	"testing"

	"github.com/swordday/simple-binary-encoding/internal/testutil"
)

func TestTinygoBuildArgs(t *testing.T) {
	testutil.ExpectSliceEq(t, []string{
		"build",
		"-o=/src/out.wasm",
		"-target=wasip1",
		"-buildmode=c-shared",
		"-no-debug",
		"-opt=z",
		"./bin/sbe-codegen-go",
	}, tinygoBuildArgs("/src/out.wasm", "./bin/sbe-codegen-go", []string{"-opt=z"}))
}

func TestResolve(t *testing.T) {
	testutil.ExpectEq(t, "tinygo", resolve("/src", "tinygo"))
	testutil.ExpectEq(t, "/src/tools/tinygo", resolve("/src", "tools/tinygo"))
}
