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
	"strconv"
	"strings"
)

// codec renders an entity's emission plan into its four coupled function
// bodies: Encode, Decode, RangeCheck, and Init.
type codec struct {
	g *generator
	u *unit
	e *entity

	encode     body
	decode     body
	rangeCheck body
	init       body
}

type body struct {
	strings.Builder
}

func (b *body) linef(depth int, format string, a ...any) {
	b.WriteString(strings.Repeat("\t", depth))
	fmt.Fprintf(b, format, a...)
	b.WriteByte('\n')
}

// check writes `if err := <call>; err != nil { return err }`.
func (b *body) check(depth int, format string, a ...any) {
	b.linef(depth, "if err := %s; err != nil {", fmt.Sprintf(format, a...))
	b.linef(depth+1, "return err")
	b.linef(depth, "}")
}

func (b *body) writeZeros(depth int, n int32) {
	if n <= 0 {
		return
	}
	b.linef(depth, "if _, err := writer.Write(make([]byte, %d)); err != nil {", n)
	b.linef(depth+1, "return err")
	b.linef(depth, "}")
}

func (b *body) discard(depth int, n string) {
	b.linef(depth, "if _, err := io.CopyN(io.Discard, reader, %s); err != nil {", n)
	b.linef(depth+1, "return err")
	b.linef(depth, "}")
}

func (b *body) skip(depth int, n int32) {
	if n <= 0 {
		return
	}
	b.discard(depth, strconv.Itoa(int(n)))
}

func (g *generator) renderCodec(u *unit, e *entity) {
	c := &codec{g: g, u: u, e: e}
	c.open()
	for _, s := range e.steps {
		switch s := s.(type) {
		case encodeCheckStep:
			c.encodeCheck()
		case decodeCheckStep:
			c.decodeCheck()
		case *paddingStep:
			c.encode.writeZeros(1, s.n)
			c.decode.skip(1, s.n)
		case extensionStep:
			c.extension()
		case *fieldStep:
			c.field(s)
		case *groupStep:
			c.group(s)
		case *varDataStep:
			c.varData(s)
		default:
			panic(fmt.Sprintf("unhandled step %T", s))
		}
	}
	c.close()

	u.write(c.encode.String())
	u.write(c.decode.String())
	u.write(c.rangeCheck.String())
	u.write(c.init.String())
}

func (c *codec) open() {
	e := c.e
	switch e.kind {
	case entityKind_MESSAGE:
		c.encode.linef(0, "\nfunc (%s *%s) Encode(writer io.Writer, order binary.ByteOrder, doRangeCheck bool) error {", e.recv, e.typeName)
		c.decode.linef(0, "\nfunc (%s *%s) Decode(reader io.Reader, order binary.ByteOrder, actingVersion uint16, blockLength %s, doRangeCheck bool) error {", e.recv, e.typeName, e.blockLengthType)
	case entityKind_GROUP:
		c.encode.linef(0, "\nfunc (%s *%s) Encode(writer io.Writer, order binary.ByteOrder) error {", e.recv, e.typeName)
		c.decode.linef(0, "\nfunc (%s *%s) Decode(reader io.Reader, order binary.ByteOrder, actingVersion uint16, blockLength %s) error {", e.recv, e.typeName, e.blockLengthType)
	case entityKind_COMPOSITE:
		c.encode.linef(0, "\nfunc (%s *%s) Encode(writer io.Writer, order binary.ByteOrder) error {", e.recv, e.typeName)
		c.decode.linef(0, "\nfunc (%s *%s) Decode(reader io.Reader, order binary.ByteOrder, actingVersion uint16) error {", e.recv, e.typeName)
	}
	c.rangeCheck.linef(0, "\nfunc (%s *%s) RangeCheck(actingVersion uint16, schemaVersion uint16) error {", e.recv, e.typeName)
	// Init is a function rather than a method, so it cannot collide with
	// a field accessor.
	c.init.linef(0, "\nfunc %sInit(%s *%s) {", e.typeName, e.recv, e.typeName)
}

func (c *codec) close() {
	c.encode.linef(1, "return nil")
	c.encode.linef(0, "}")
	c.decode.linef(1, "return nil")
	c.decode.linef(0, "}")
	c.rangeCheck.linef(1, "return nil")
	c.rangeCheck.linef(0, "}")
	c.init.linef(0, "}")
}

// schemaVersion is the message's compiled schema version as a uint16.
func (c *codec) schemaVersion() string {
	expr := fmt.Sprintf("%s.SbeSchemaVersion()", c.e.recv)
	if c.g.header.versionType != "uint16" {
		expr = "uint16(" + expr + ")"
	}
	return expr
}

func (c *codec) encodeCheck() {
	version := c.schemaVersion()
	c.encode.linef(1, "if doRangeCheck {")
	c.encode.check(2, "%s.RangeCheck(%s, %s)", c.e.recv, version, version)
	c.encode.linef(1, "}")
}

func (c *codec) decodeCheck() {
	c.decode.linef(1, "if doRangeCheck {")
	c.decode.check(2, "%s.RangeCheck(actingVersion, %s)", c.e.recv, c.schemaVersion())
	c.decode.linef(1, "}")
}

func (c *codec) extension() {
	recv := c.e.recv
	c.decode.linef(1, "if blockLength > %s.SbeBlockLength() {", recv)
	c.decode.discard(2, fmt.Sprintf("int64(blockLength-%s.SbeBlockLength())", recv))
	c.decode.linef(1, "}")
}

func (c *codec) field(f *fieldStep) {
	switch f.kind {
	case fieldKind_PRIMITIVE:
		c.primitiveField(f)
	case fieldKind_ENUM:
		c.enumField(f)
	case fieldKind_SET:
		c.setField(f)
	case fieldKind_COMPOSITE:
		c.compositeField(f)
	}
}

// assignConstant writes the assignment of a constant field's value, shared
// by Decode and Init.
func (c *codec) assignConstant(b *body, f *fieldStep) {
	v := c.e.recv + "." + f.name
	switch {
	case f.kind == fieldKind_ENUM:
		b.linef(1, "%s = %s", v, c.g.names.enumConstant(f.constValue))
	case f.isChar():
		b.linef(1, "copy(%s[:], %s)", v, strconv.Quote(f.constValue))
	default:
		value := literal(f.typeTok.Encoding.PrimitiveType, f.constValue)
		if strings.Contains(value, "math.") {
			c.u.use("math")
		}
		b.linef(1, "%s = %s", v, value)
	}
}

func (c *codec) primitiveField(f *fieldStep) {
	v := c.e.recv + "." + f.name

	c.encode.writeZeros(1, f.gap)
	if f.constant {
		c.decode.skip(1, f.gap)
		c.assignConstant(&c.decode, f)
		c.assignConstant(&c.init, f)
		return
	}

	c.encode.check(1, "binary.Write(writer, order, %s)", v)

	c.decode.linef(1, "if !%sInActingVersion(actingVersion) {", v)
	if f.isArray() {
		c.decode.linef(2, "for idx := range %s {", v)
		c.decode.linef(3, "%s[idx] = %sNullValue()", v, v)
		c.decode.linef(2, "}")
	} else {
		c.decode.linef(2, "%s = %sNullValue()", v, v)
	}
	c.decode.linef(1, "} else {")
	c.decode.skip(2, f.gap)
	c.decode.check(2, "binary.Read(reader, order, &%s)", v)
	c.decode.linef(1, "}")

	c.primitiveRangeCheck(f)
}

func (c *codec) primitiveRangeCheck(f *fieldStep) {
	v := c.e.recv + "." + f.name
	label := c.e.typeName + "." + f.name
	c.u.use("fmt")

	rc := &c.rangeCheck
	rc.linef(1, "if %sInActingVersion(actingVersion) {", v)
	if f.isArray() {
		rc.linef(2, "for idx, value := range %s {", v)
		rc.linef(3, "if %s {", c.outOfRange(f, "value"))
		rc.linef(4, "return fmt.Errorf(\"range check failed on %s[%%d]: %%v outside [%%v, %%v]\", idx, value, %sMinValue(), %sMaxValue())", label, v, v)
		rc.linef(3, "}")
		rc.linef(2, "}")
	} else {
		rc.linef(2, "if %s {", c.outOfRange(f, v))
		rc.linef(3, "return fmt.Errorf(\"range check failed on %s: %%v outside [%%v, %%v]\", %s, %sMinValue(), %sMaxValue())", label, v, v, v)
		rc.linef(2, "}")
	}
	if f.isChar() && f.isArray() {
		c.characterEncodingCheck(rc, 2, label, v+"[:]", f.charset)
	}
	rc.linef(1, "}")
}

// outOfRange is the condition under which value fails its range check.
// Optional fields accept their null value, and so do the padding bytes of
// character arrays.
func (c *codec) outOfRange(f *fieldStep, value string) string {
	accessor := c.e.recv + "." + f.name
	cond := fmt.Sprintf("%s < %sMinValue() || %s > %sMaxValue()", value, accessor, value, accessor)
	allowNull := f.isOptional() || (f.isChar() && f.isArray())

	switch {
	case allowNull && f.bounds.NullIsNaN:
		c.u.use("math")
		return fmt.Sprintf("!math.IsNaN(float64(%s)) && (%s)", value, cond)
	case allowNull:
		return fmt.Sprintf("%s != %sNullValue() && (%s)", value, accessor, cond)
	case f.isFloat():
		c.u.use("math")
		return fmt.Sprintf("math.IsNaN(float64(%s)) || %s", value, cond)
	}
	return cond
}

// characterEncodingCheck validates text against a declared character
// encoding. Unknown encodings are not checked.
func (c *codec) characterEncodingCheck(b *body, depth int, label, value, charset string) {
	switch strings.ToUpper(charset) {
	case "ASCII", "US-ASCII":
		c.u.use("fmt")
		b.linef(depth, "for idx, ch := range %s {", strings.TrimSuffix(value, "[:]"))
		b.linef(depth+1, "if ch > 127 {")
		b.linef(depth+2, "return fmt.Errorf(\"%s[%%d]=%%d failed ASCII validation\", idx, ch)", label)
		b.linef(depth+1, "}")
		b.linef(depth, "}")
	case "UTF-8", "UTF8":
		c.u.use("errors", "unicode/utf8")
		b.linef(depth, "if !utf8.Valid(%s) {", value)
		b.linef(depth+1, "return errors.New(\"%s failed UTF-8 validation\")", label)
		b.linef(depth, "}")
	}
}

func (c *codec) enumField(f *fieldStep) {
	v := c.e.recv + "." + f.name

	c.encode.writeZeros(1, f.gap)
	if f.constant {
		c.decode.skip(1, f.gap)
		c.assignConstant(&c.decode, f)
		c.assignConstant(&c.init, f)
		return
	}

	c.encode.check(1, "%s.Encode(writer, order)", v)

	c.decode.linef(1, "if !%sInActingVersion(actingVersion) {", v)
	c.decode.linef(2, "%s = %s.NullValue", v, f.typeName)
	c.decode.linef(1, "} else {")
	c.decode.skip(2, f.gap)
	c.decode.check(2, "%s.Decode(reader, order, actingVersion)", v)
	c.decode.linef(1, "}")

	c.rangeCheck.linef(1, "if %sInActingVersion(actingVersion) {", v)
	c.rangeCheck.check(2, "%s.RangeCheck(actingVersion, schemaVersion)", v)
	c.rangeCheck.linef(1, "}")
}

func (c *codec) setField(f *fieldStep) {
	v := c.e.recv + "." + f.name

	c.encode.writeZeros(1, f.gap)
	c.encode.check(1, "%s.Encode(writer, order)", v)

	c.decode.linef(1, "if %sInActingVersion(actingVersion) {", v)
	c.decode.skip(2, f.gap)
	c.decode.check(2, "%s.Decode(reader, order, actingVersion)", v)
	c.decode.linef(1, "}")
}

func (c *codec) compositeField(f *fieldStep) {
	v := c.e.recv + "." + f.name

	c.encode.writeZeros(1, f.gap)
	c.encode.check(1, "%s.Encode(writer, order)", v)

	c.decode.linef(1, "if %sInActingVersion(actingVersion) {", v)
	c.decode.skip(2, f.gap)
	c.decode.check(2, "%s.Decode(reader, order, actingVersion)", v)
	c.decode.linef(1, "}")

	c.rangeCheck.linef(1, "if %sInActingVersion(actingVersion) {", v)
	c.rangeCheck.check(2, "%s.RangeCheck(actingVersion, schemaVersion)", v)
	c.rangeCheck.linef(1, "}")

	c.init.linef(1, "%sInit(&%s)", f.typeName, v)
}

func (c *codec) group(gs *groupStep) {
	v := c.e.recv + "." + gs.name
	local := lowerFirst(gs.name)
	child := gs.child

	c.encode.writeZeros(1, gs.gap)
	c.encode.linef(1, "%sBlockLength := %s(%d)", local, gs.blockLengthType, child.token().EncodedLength)
	c.encode.linef(1, "%sNumInGroup := %s(len(%s))", local, gs.numInGroupType, v)
	c.encode.check(1, "binary.Write(writer, order, %sBlockLength)", local)
	c.encode.check(1, "binary.Write(writer, order, %sNumInGroup)", local)
	c.encode.linef(1, "for idx := range %s {", v)
	c.encode.check(2, "%s[idx].Encode(writer, order)", v)
	c.encode.linef(1, "}")

	c.decode.linef(1, "if %sInActingVersion(actingVersion) {", v)
	c.decode.skip(2, gs.gap)
	c.decode.linef(2, "var %sBlockLength %s", local, gs.blockLengthType)
	c.decode.linef(2, "var %sNumInGroup %s", local, gs.numInGroupType)
	c.decode.check(2, "binary.Read(reader, order, &%sBlockLength)", local)
	c.decode.check(2, "binary.Read(reader, order, &%sNumInGroup)", local)
	c.decode.linef(2, "%s = make([]%s, %sNumInGroup)", v, child.typeName, local)
	c.decode.linef(2, "for idx := range %s {", v)
	c.decode.check(3, "%s[idx].Decode(reader, order, actingVersion, %sBlockLength)", v, local)
	c.decode.linef(2, "}")
	c.decode.linef(1, "}")

	c.rangeCheck.linef(1, "if %sInActingVersion(actingVersion) {", v)
	if gs.maxCount != "" {
		c.u.use("fmt")
		c.rangeCheck.linef(2, "if uint64(len(%s)) > %s {", v, gs.maxCount)
		c.rangeCheck.linef(3, "return fmt.Errorf(\"range check failed on %s.%s: %%d entries exceed %s\", len(%s))", c.e.typeName, gs.name, gs.maxCount, v)
		c.rangeCheck.linef(2, "}")
	}
	c.rangeCheck.linef(2, "for idx := range %s {", v)
	c.rangeCheck.check(3, "%s[idx].RangeCheck(actingVersion, schemaVersion)", v)
	c.rangeCheck.linef(2, "}")
	c.rangeCheck.linef(1, "}")
}

func (c *codec) varData(vs *varDataStep) {
	v := c.e.recv + "." + vs.name
	local := lowerFirst(vs.name)

	c.encode.writeZeros(1, vs.gap)
	c.encode.check(1, "binary.Write(writer, order, %s(len(%s)))", vs.lengthType, v)
	c.encode.check(1, "binary.Write(writer, order, %s)", v)

	c.decode.linef(1, "if %sInActingVersion(actingVersion) {", v)
	c.decode.skip(2, vs.gap)
	c.decode.linef(2, "var %sLength %s", local, vs.lengthType)
	c.decode.check(2, "binary.Read(reader, order, &%sLength)", local)
	c.decode.linef(2, "%s = make([]%s, %sLength)", v, vs.dataType, local)
	c.decode.check(2, "binary.Read(reader, order, %s)", v)
	c.decode.linef(1, "}")

	label := c.e.typeName + "." + vs.name
	var check body
	if vs.maxLength != "" {
		c.u.use("fmt")
		check.linef(2, "if uint64(len(%s)) > %s {", v, vs.maxLength)
		check.linef(3, "return fmt.Errorf(\"range check failed on %s: length %%d exceeds %s\", len(%s))", label, vs.maxLength, v)
		check.linef(2, "}")
	}
	if vs.dataType == "byte" || vs.dataType == "uint8" {
		c.characterEncodingCheck(&check, 2, label, v, vs.charset)
	}
	if check.Len() > 0 {
		c.rangeCheck.linef(1, "if %sInActingVersion(actingVersion) {", v)
		c.rangeCheck.WriteString(check.String())
		c.rangeCheck.linef(1, "}")
	}
}
