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
	"github.com/swordday/simple-binary-encoding/ir"
)

// choiceSet generates a bit set as a bool array, one element per bit of
// its encoding type. Each choice names a bit position.
func (g *generator) choiceSet(tokens []ir.Token) {
	head := &tokens[0]
	name := g.names.exported(head.Name)
	recv := receiverName(name)
	primitiveType := head.Encoding.PrimitiveType

	if _, ok := goType(primitiveType); !ok {
		g.err(errUnsupportedPrimitive(g.entity, head))
		return
	}
	if !primitiveType.IsUnsigned() {
		g.warn(warnSignedChoiceSet(g.entity, primitiveType))
	}
	bits := primitiveType.Size() * 8

	var choices []*ir.Token
	body := ir.Body(tokens)
	for ii := range body {
		token := &body[ii]
		if token.Signal != ir.Signal_CHOICE || token.Encoding.ConstValue == nil {
			g.err(errMalformedShape(g.entity, token, "a choice with a bit position"))
			return
		}
		choices = append(choices, token)
	}

	u := g.newUnit(name)

	u.linef("\ntype %s [%d]bool", name, bits)
	u.linef("\ntype %sChoiceValue uint8", name)
	u.linef("\ntype %sChoiceValues struct {", name)
	for _, c := range choices {
		u.linef("\t%s %sChoiceValue", g.names.exported(c.Name), name)
	}
	u.line("}")

	u.linef("\nvar %sChoice = %sChoiceValues{", name, name)
	for _, c := range choices {
		u.linef("\t%s: %s,", g.names.exported(c.Name), *c.Encoding.ConstValue)
	}
	u.line("}")

	u.linef("\nfunc (%s %s) Encode(writer io.Writer, order binary.ByteOrder) error {", recv, name)
	u.linef("\tvar wireval uint%d", bits)
	u.linef("\tfor k, v := range %s {", recv)
	u.line("\t\tif v {")
	u.line("\t\t\twireval |= 1 << uint(k)")
	u.line("\t\t}")
	u.line("\t}")
	u.line("\treturn binary.Write(writer, order, wireval)")
	u.line("}")

	u.linef("\nfunc (%s *%s) Decode(reader io.Reader, order binary.ByteOrder, actingVersion uint16) error {", recv, name)
	u.linef("\tvar wireval uint%d", bits)
	u.line("\tif err := binary.Read(reader, order, &wireval); err != nil {")
	u.line("\t\treturn err")
	u.line("\t}")
	u.linef("\tfor idx := range %s {", recv)
	u.linef("\t\t%s[idx] = wireval&(1<<uint(idx)) != 0", recv)
	u.line("\t}")
	u.line("\treturn nil")
	u.line("}")

	u.linef("\nfunc (%s) EncodedLength() int64 {\n\treturn %d\n}", name, head.EncodedLength)

	for _, c := range choices {
		prop := g.names.exported(c.Name)
		u.linef("\nfunc (%s) %sSinceVersion() uint16 {\n\treturn %d\n}", name, prop, c.Version)
		u.linef("\nfunc (%s %s) %sInActingVersion(actingVersion uint16) bool {\n\treturn actingVersion >= %s.%sSinceVersion()\n}", recv, name, prop, recv, prop)
		u.linef("\nfunc (%s) %sDeprecated() uint16 {\n\treturn %d\n}", name, prop, c.Deprecated)
	}
}
