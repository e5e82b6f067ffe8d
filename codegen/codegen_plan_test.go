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
	"testing"

	"github.com/swordday/simple-binary-encoding/internal/testutil"
)

const planSchema = `
package: plan
id: 3
version: 2
` + testutil.MessageHeaderYAML + `
messages:
  - - {signal: BEGIN_MESSAGE, name: Quote, id: 9, encodedLength: 16}
    - {signal: BEGIN_FIELD, name: price, id: 1, offset: 0}
    - {signal: ENCODING, name: int64, offset: 0, encodedLength: 8, encoding: {primitiveType: int64}}
    - {signal: END_FIELD, name: price}
    - {signal: BEGIN_FIELD, name: qty, id: 2, version: 2, offset: 10}
    - {signal: ENCODING, name: uint32, offset: 10, encodedLength: 4, encoding: {primitiveType: uint32, presence: optional}}
    - {signal: END_FIELD, name: qty}
    - {signal: BEGIN_GROUP, name: legs, id: 3, encodedLength: 4}
    - {signal: BEGIN_COMPOSITE, name: groupSizeEncoding, encodedLength: 3}
    - {signal: ENCODING, name: blockLength, offset: 0, encodedLength: 2, encoding: {primitiveType: uint16}}
    - {signal: ENCODING, name: numInGroup, offset: 2, encodedLength: 1, encoding: {primitiveType: uint8}}
    - {signal: END_COMPOSITE, name: groupSizeEncoding}
    - {signal: BEGIN_FIELD, name: ratio, id: 4, offset: 0}
    - {signal: ENCODING, name: float, offset: 0, encodedLength: 4, encoding: {primitiveType: float}}
    - {signal: END_FIELD, name: ratio}
    - {signal: END_GROUP, name: legs}
    - {signal: BEGIN_VAR_DATA, name: note, id: 5}
    - {signal: BEGIN_COMPOSITE, name: varDataEncoding, encodedLength: -1}
    - {signal: ENCODING, name: length, offset: 0, encodedLength: 2, encoding: {primitiveType: uint16}}
    - {signal: ENCODING, name: varData, offset: 2, encodedLength: -1, encoding: {primitiveType: char, characterEncoding: US-ASCII}}
    - {signal: END_COMPOSITE, name: varDataEncoding}
    - {signal: END_VAR_DATA, name: note}
    - {signal: END_MESSAGE, name: Quote}
`

func newTestGenerator(t *testing.T, doc string) *generator {
	t.Helper()
	schema := testutil.DecodeIR(t, doc)
	header, err := resolveHeaderTypes(schema.Header)
	testutil.AssertNoError(t, err)
	return &generator{
		schema: schema,
		names:  newNamer(),
		header: header,
		entity: "test",
	}
}

func stepNames(steps []step) []string {
	var out []string
	for _, s := range steps {
		switch s := s.(type) {
		case encodeCheckStep:
			out = append(out, "encodeCheck")
		case decodeCheckStep:
			out = append(out, "decodeCheck")
		case *paddingStep:
			out = append(out, "padding")
		case extensionStep:
			out = append(out, "extension")
		case *fieldStep:
			out = append(out, "field "+s.name)
		case *groupStep:
			out = append(out, "group "+s.name)
		case *varDataStep:
			out = append(out, "varData "+s.name)
		}
	}
	return out
}

func TestWalkMessage(t *testing.T) {
	g := newTestGenerator(t, planSchema)
	e := &entity{
		kind:            entityKind_MESSAGE,
		typeName:        "Quote",
		recv:            "q",
		tokens:          g.schema.Messages[0],
		blockLengthType: g.header.blockLengthType,
	}
	testutil.ExpectTrue(t, g.walk(e))
	testutil.ExpectEq(t, 0, len(g.errors))
	testutil.ExpectEq(t, 0, len(g.warnings))

	testutil.ExpectSliceEq(t, []string{
		"encodeCheck",
		"field Price",
		"field Qty",
		"padding",
		"extension",
		"group Legs",
		"varData Note",
		"decodeCheck",
	}, stepNames(e.steps))

	price, qty := e.fields[0], e.fields[1]
	testutil.ExpectEq(t, int32(0), price.gap)
	testutil.ExpectEq(t, int32(2), qty.gap)
	testutil.ExpectTrue(t, qty.isOptional())
	testutil.ExpectEq(t, int32(14), e.consumed)
	testutil.ExpectEq(t, int32(2), e.steps[3].(*paddingStep).n)

	legs := e.groups[0]
	testutil.ExpectEq(t, "uint16", legs.blockLengthType)
	testutil.ExpectEq(t, "uint8", legs.numInGroupType)
	testutil.ExpectEq(t, "254", legs.maxCount)
	testutil.ExpectEq(t, "QuoteLegs", legs.child.typeName)
	testutil.ExpectSliceEq(t, []string{"field Ratio", "extension"}, stepNames(legs.child.steps))

	note := e.varData[0]
	testutil.ExpectEq(t, "uint16", note.lengthType)
	testutil.ExpectEq(t, "65534", note.maxLength)
	testutil.ExpectEq(t, "byte", note.dataType)
	testutil.ExpectEq(t, int32(2), note.headerLength)
	testutil.ExpectEq(t, "US-ASCII", note.charset)
}

func TestRenderMessage(t *testing.T) {
	g := newTestGenerator(t, planSchema)
	g.message(g.schema.Messages[0])
	testutil.ExpectEq(t, 0, len(g.errors))
	testutil.ExpectEq(t, 1, len(g.units))

	src, err := g.units[0].source("plan")
	testutil.AssertNoError(t, err)
	testutil.ExpectContains(t, string(src),
		"type Quote struct {",
		"Legs  []QuoteLegs",
		"Note  []byte",
		"func (q *Quote) Encode(writer io.Writer, order binary.ByteOrder, doRangeCheck bool) error {",
		"legsBlockLength := uint16(4)",
		"legsNumInGroup := uint8(len(q.Legs))",
		"binary.Write(writer, order, uint16(len(q.Note)))",
		"func (q *Quote) RangeCheck(actingVersion uint16, schemaVersion uint16) error {",
		"if q.Qty != q.QtyNullValue() && (q.Qty < q.QtyMinValue() || q.Qty > q.QtyMaxValue()) {",
		"if uint64(len(q.Legs)) > 254 {",
		`return fmt.Errorf("range check failed on Quote.Legs: %d entries exceed 254", len(q.Legs))`,
		"if uint64(len(q.Note)) > 65534 {",
		`return fmt.Errorf("range check failed on Quote.Note: length %d exceeds 65534", len(q.Note))`,
		"for idx, ch := range q.Note {",
		"func (*Quote) SbeTemplateId() (templateId uint16) {\n\treturn 9\n}",
		"func (*Quote) SbeSchemaId() (schemaId uint16) {\n\treturn 3\n}",
		"func (*Quote) SbeSchemaVersion() (schemaVersion uint16) {\n\treturn 2\n}",
		"func (*Quote) QtySinceVersion() uint16 {\n\treturn 2\n}",
		"func (*Quote) NoteHeaderLength() uint64 {\n\treturn 2\n}",
		"type QuoteLegs struct {",
		"func (q *QuoteLegs) Decode(reader io.Reader, order binary.ByteOrder, actingVersion uint16, blockLength uint16) error {",
	)
}
