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
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/swordday/simple-binary-encoding/ir"
)

// namer converts schema identifiers to Go identifiers. A cases.Caser keeps
// internal state, so each generation job owns its own namer.
type namer struct {
	title cases.Caser
}

func newNamer() *namer {
	return &namer{
		title: cases.Title(language.Und, cases.NoLower),
	}
}

// exported upper-cases the first letter of name and leaves the rest alone,
// so "fuelFigures" becomes "FuelFigures".
func (n *namer) exported(name string) string {
	if name == "" {
		return name
	}
	_, size := utf8.DecodeRuneInString(name)
	return n.title.String(name[:size]) + name[size:]
}

func lowerFirst(name string) string {
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:]
}

// receiverName is the single-letter receiver used by every method of a
// generated type.
func receiverName(typeName string) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	return string(unicode.ToLower(r))
}

// packageName derives a Go package name from the schema namespaces.
func packageName(namespaces []string) string {
	name := strings.ToLower(strings.Join(namespaces, "_"))
	return strings.NewReplacer(".", "_", " ", "_", "-", "_").Replace(name)
}

// goType is the Go spelling of a primitive type.
func goType(t ir.PrimitiveType) (string, bool) {
	switch t {
	case ir.PrimitiveType_CHAR:
		return "byte", true
	case ir.PrimitiveType_INT8:
		return "int8", true
	case ir.PrimitiveType_INT16:
		return "int16", true
	case ir.PrimitiveType_INT32:
		return "int32", true
	case ir.PrimitiveType_INT64:
		return "int64", true
	case ir.PrimitiveType_UINT8:
		return "uint8", true
	case ir.PrimitiveType_UINT16:
		return "uint16", true
	case ir.PrimitiveType_UINT32:
		return "uint32", true
	case ir.PrimitiveType_UINT64:
		return "uint64", true
	case ir.PrimitiveType_FLOAT:
		return "float32", true
	case ir.PrimitiveType_DOUBLE:
		return "float64", true
	case ir.PrimitiveType_NONE:
		return "", false
	}
	panic("unreachable")
}

// enumConstant resolves a constant of the form "Type.VALUE", as used for
// constant enum fields, to the Go expression naming that value.
func (n *namer) enumConstant(value string) string {
	typeName, member, ok := strings.Cut(value, ".")
	if !ok {
		return value
	}
	return n.exported(typeName) + "." + n.exported(member)
}
