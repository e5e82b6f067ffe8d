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

// Package irtext renders an IR as an indented, human-readable token dump.
package irtext

import (
	"fmt"
	"io"
	"strings"

	"github.com/swordday/simple-binary-encoding/ir"
)

func Encode(schema *ir.IR) string {
	var buf strings.Builder
	EncodeTo(schema, &buf)
	return buf.String()
}

func EncodeTo(schema *ir.IR, w io.Writer) error {
	e := encoder{w: w}
	e.visitSchema(schema)
	return e.err
}

type encoder struct {
	w      io.Writer
	indent int
	err    error
}

func (e *encoder) line(s string) {
	if e.err != nil {
		return
	}
	if indent := strings.Repeat("\t", e.indent); indent != "" {
		if _, err := io.WriteString(e.w, indent); err != nil {
			e.err = err
			return
		}
	}
	if _, err := io.WriteString(e.w, s); err != nil {
		e.err = err
		return
	}
	if _, err := io.WriteString(e.w, "\n"); err != nil {
		e.err = err
		return
	}
}

func (e *encoder) linef(format string, a ...any) {
	e.line(fmt.Sprintf(format, a...))
}

func (e *encoder) visitSchema(schema *ir.IR) {
	e.linef("package = %s", quote(schema.PackageName))
	if len(schema.Namespaces) > 0 {
		quoted := make([]string, len(schema.Namespaces))
		for ii, ns := range schema.Namespaces {
			quoted[ii] = quote(ns)
		}
		e.linef("namespaces = [%s]", strings.Join(quoted, ", "))
	}
	e.linef("id = %d", schema.ID)
	e.linef("version = %d", schema.Version)
	if schema.SemanticVersion != "" {
		e.linef("semantic_version = %s", quote(schema.SemanticVersion))
	}
	if schema.Header != nil {
		e.visitEntity("header", schema.Header.Tokens)
	}
	for _, tokens := range schema.Types {
		e.visitEntity("type", tokens)
	}
	for _, tokens := range schema.Messages {
		e.visitEntity("message", tokens)
	}
}

func (e *encoder) visitEntity(kind string, tokens []ir.Token) {
	e.linef("%s {", kind)
	e.indent += 1
	depth := e.indent
	for ii := range tokens {
		token := &tokens[ii]
		if token.Signal.IsEnd() && e.indent > depth {
			e.indent -= 1
		}
		e.line(fmtToken(token))
		if token.Signal.IsBegin() {
			e.indent += 1
		}
	}
	e.indent = depth - 1
	e.line("}")
}

func fmtToken(token *ir.Token) string {
	var buf strings.Builder
	buf.WriteString(token.Signal.String())
	buf.WriteByte(' ')
	buf.WriteString(quote(token.Name))
	if token.ReferencedName != "" {
		fmt.Fprintf(&buf, " ref=%s", quote(token.ReferencedName))
	}
	if !token.Signal.IsEnd() {
		if token.ID != 0 {
			fmt.Fprintf(&buf, " id=%d", token.ID)
		}
		if token.Version != 0 {
			fmt.Fprintf(&buf, " since=%d", token.Version)
		}
		if token.Deprecated != 0 {
			fmt.Fprintf(&buf, " deprecated=%d", token.Deprecated)
		}
		if token.Offset != ir.OffsetUnset {
			fmt.Fprintf(&buf, " offset=%d", token.Offset)
		}
		if token.EncodedLength != 0 {
			fmt.Fprintf(&buf, " length=%d", token.EncodedLength)
		}
		if token.ArrayLength > 1 {
			fmt.Fprintf(&buf, " array=%d", token.ArrayLength)
		}
		fmtEncoding(&buf, &token.Encoding)
	}
	return buf.String()
}

func fmtEncoding(buf *strings.Builder, enc *ir.Encoding) {
	if enc.PrimitiveType != ir.PrimitiveType_NONE {
		fmt.Fprintf(buf, " type=%s", enc.PrimitiveType)
	}
	if enc.Presence != ir.Presence_REQUIRED {
		fmt.Fprintf(buf, " presence=%s", enc.Presence)
	}
	for _, kv := range []struct {
		key   string
		value *string
	}{
		{"const", enc.ConstValue},
		{"min", enc.MinValue},
		{"max", enc.MaxValue},
		{"null", enc.NullValue},
	} {
		if kv.value != nil {
			fmt.Fprintf(buf, " %s=%s", kv.key, quote(*kv.value))
		}
	}
	for _, kv := range []struct {
		key   string
		value string
	}{
		{"charset", enc.CharacterEncoding},
		{"epoch", enc.Epoch},
		{"unit", enc.TimeUnit},
		{"semantic_type", enc.SemanticType},
	} {
		if kv.value != "" {
			fmt.Fprintf(buf, " %s=%s", kv.key, quote(kv.value))
		}
	}
}

func quote(text string) string {
	var buf strings.Builder
	buf.WriteByte('"')
	for _, c := range text {
		if c == '\\' || c == '"' {
			buf.WriteByte('\\')
			buf.WriteRune(c)
			continue
		}
		if c == '\t' {
			buf.WriteString("\\t")
			continue
		}
		if c == '\n' {
			buf.WriteString("\\n")
			continue
		}
		if c < 0x20 || c == 0x7F {
			fmt.Fprintf(&buf, "\\x%02X", c)
			continue
		}
		buf.WriteRune(c)
	}
	buf.WriteByte('"')
	return buf.String()
}
