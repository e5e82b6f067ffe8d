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

package codegen

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/tools/imports"
)

const fileHeader = "// Code generated by sbe. DO NOT EDIT.\n"

// unit accumulates the source of one generated file, together with the
// packages its code refers to.
type unit struct {
	typeName string
	imports  map[string]struct{}
	buf      strings.Builder
}

// Every artifact declares Encode(io.Writer, binary.ByteOrder), so these two
// imports are always present.
func newUnit(typeName string) *unit {
	return &unit{
		typeName: typeName,
		imports: map[string]struct{}{
			"encoding/binary": {},
			"io":              {},
		},
	}
}

func (u *unit) use(pkgs ...string) {
	for _, pkg := range pkgs {
		u.imports[pkg] = struct{}{}
	}
}

func (u *unit) line(s string) {
	u.buf.WriteString(s)
	u.buf.WriteByte('\n')
}

func (u *unit) linef(format string, a ...any) {
	fmt.Fprintf(&u.buf, format, a...)
	u.buf.WriteByte('\n')
}

// write appends a pre-rendered block, such as one of the codec bodies.
func (u *unit) write(s string) {
	u.buf.WriteString(s)
}

func (u *unit) fileName() string {
	return u.typeName + ".go"
}

func (u *unit) importList() []string {
	out := make([]string, 0, len(u.imports))
	for pkg := range u.imports {
		out = append(out, pkg)
	}
	slices.Sort(out)
	return out
}

// source assembles the file and runs it through gofmt. The import set is
// exact, so imports are formatted but never added or removed.
func (u *unit) source(pkgName string) ([]byte, error) {
	var src strings.Builder
	src.WriteString(fileHeader)
	fmt.Fprintf(&src, "\npackage %s\n\nimport (\n", pkgName)
	for _, pkg := range u.importList() {
		fmt.Fprintf(&src, "\t%q\n", pkg)
	}
	src.WriteString(")\n\n")
	src.WriteString(u.buf.String())

	return imports.Process(u.fileName(), []byte(src.String()), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
}
