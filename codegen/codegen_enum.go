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

	"github.com/swordday/simple-binary-encoding/ir"
)

// enum generates a named integer or char type with one constant per valid
// value, collected in a struct value named after the enum.
func (g *generator) enum(tokens []ir.Token) {
	head := &tokens[0]
	name := g.names.exported(head.Name)
	enumType := name + "Enum"
	recv := receiverName(enumType)

	goT, ok := goType(head.Encoding.PrimitiveType)
	if !ok {
		g.err(errUnsupportedPrimitive(g.entity, head))
		return
	}
	b, _ := resolveBounds(&head.Encoding)

	var values []*ir.Token
	body := ir.Body(tokens)
	for ii := range body {
		token := &body[ii]
		if token.Signal != ir.Signal_VALID_VALUE {
			g.err(errMalformedShape(g.entity, token, "a valid value"))
			return
		}
		if token.Encoding.ConstValue == nil {
			g.err(errMalformedShape(g.entity, token, "a constant value"))
			return
		}
		values = append(values, token)
	}

	u := g.newUnit(name)
	u.use("fmt")
	// Only the null value is rendered for an enum.
	if strings.Contains(b.Null, "math.") {
		u.use("math")
	}

	u.linef("\ntype %s %s", enumType, goT)
	u.linef("\ntype %sValues struct {", name)
	for _, v := range values {
		u.linef("\t%s %s", g.names.exported(v.Name), enumType)
	}
	u.linef("\tNullValue %s", enumType)
	u.line("}")

	u.linef("\nvar %s = %sValues{", name, name)
	for _, v := range values {
		u.linef("\t%s: %s,", g.names.exported(v.Name), literal(head.Encoding.PrimitiveType, *v.Encoding.ConstValue))
	}
	u.linef("\tNullValue: %s,", b.Null)
	u.line("}")

	u.linef("\nfunc (%s %s) Encode(writer io.Writer, order binary.ByteOrder) error {", recv, enumType)
	u.linef("\treturn binary.Write(writer, order, %s)", recv)
	u.line("}")

	u.linef("\nfunc (%s *%s) Decode(reader io.Reader, order binary.ByteOrder, actingVersion uint16) error {", recv, enumType)
	u.linef("\treturn binary.Read(reader, order, %s)", recv)
	u.line("}")

	// Values added in a newer schema version than the reader's are passed
	// through unchecked.
	u.linef("\nfunc (%s %s) RangeCheck(actingVersion uint16, schemaVersion uint16) error {", recv, enumType)
	u.line("\tif actingVersion > schemaVersion {")
	u.line("\t\treturn nil")
	u.line("\t}")
	u.linef("\tswitch %s {", recv)
	for _, v := range values {
		u.linef("\tcase %s.%s:", name, g.names.exported(v.Name))
		u.line("\t\treturn nil")
	}
	u.linef("\tcase %s.NullValue:", name)
	u.line("\t\treturn nil")
	u.line("\t}")
	u.linef("\treturn fmt.Errorf(\"range check failed on %s: unknown enumeration value %%v\", %s)", name, recv)
	u.line("}")

	u.linef("\nfunc (%s) EncodedLength() int64 {\n\treturn %d\n}", enumType, head.EncodedLength)

	for _, v := range values {
		prop := g.names.exported(v.Name)
		u.linef("\nfunc (%s) %sSinceVersion() uint16 {\n\treturn %d\n}", enumType, prop, v.Version)
		u.linef("\nfunc (%s %s) %sInActingVersion(actingVersion uint16) bool {\n\treturn actingVersion >= %s.%sSinceVersion()\n}", recv, enumType, prop, recv, prop)
		u.linef("\nfunc (%s) %sDeprecated() uint16 {\n\treturn %d\n}", enumType, prop, v.Deprecated)
	}
}
