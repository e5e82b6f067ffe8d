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
	"cmp"
	"strconv"

	"github.com/swordday/simple-binary-encoding/ir"
)

func (g *generator) message(tokens []ir.Token) {
	e := &entity{
		kind:            entityKind_MESSAGE,
		typeName:        g.names.exported(tokens[0].Name),
		tokens:          tokens,
		blockLengthType: g.header.blockLengthType,
	}
	e.recv = receiverName(e.typeName)
	if !g.walk(e) {
		return
	}
	u := g.newUnit(e.typeName)
	g.renderEntity(u, e)
}

// composite generates a composite type as an artifact of its own. Inline
// composite elements found while walking it recurse back here.
func (g *generator) composite(typeName string, tokens []ir.Token) bool {
	e := &entity{
		kind:     entityKind_COMPOSITE,
		typeName: typeName,
		recv:     receiverName(typeName),
		tokens:   tokens,
	}
	if !g.walk(e) {
		return false
	}
	u := g.newUnit(e.typeName)
	g.renderEntity(u, e)
	return true
}

// renderEntity writes an entity's type, codec, and accessors, followed by
// the same for each of its groups.
func (g *generator) renderEntity(u *unit, e *entity) {
	g.renderStruct(u, e)
	g.renderCodec(u, e)
	g.renderMetadata(u, e)
	for _, f := range e.fields {
		g.renderFieldAccessors(u, e, f)
	}
	for _, gs := range e.groups {
		g.renderGroupAccessors(u, e, gs)
	}
	for _, vs := range e.varData {
		g.renderVarDataAccessors(u, e, vs)
	}
	for _, gs := range e.groups {
		g.renderEntity(u, gs.child)
	}
}

func (g *generator) renderStruct(u *unit, e *entity) {
	u.linef("\ntype %s struct {", e.typeName)
	for _, f := range e.fields {
		u.linef("\t%s %s", f.name, f.goType)
	}
	for _, gs := range e.groups {
		u.linef("\t%s []%s", gs.name, gs.child.typeName)
	}
	for _, vs := range e.varData {
		u.linef("\t%s []%s", vs.name, vs.dataType)
	}
	u.line("}")
}

func (g *generator) renderMetadata(u *unit, e *entity) {
	head := e.token()
	switch e.kind {
	case entityKind_MESSAGE:
		h := &g.header
		u.linef("\nfunc (*%s) SbeBlockLength() (blockLength %s) {\n\treturn %d\n}", e.typeName, h.blockLengthType, head.EncodedLength)
		u.linef("\nfunc (*%s) SbeTemplateId() (templateId %s) {\n\treturn %d\n}", e.typeName, h.templateIDType, head.ID)
		u.linef("\nfunc (*%s) SbeSchemaId() (schemaId %s) {\n\treturn %d\n}", e.typeName, h.schemaIDType, g.schema.ID)
		u.linef("\nfunc (*%s) SbeSchemaVersion() (schemaVersion %s) {\n\treturn %d\n}", e.typeName, h.versionType, g.schema.Version)
		u.linef("\nfunc (*%s) SbeSemanticType() (semanticType []byte) {\n\treturn []byte(%s)\n}", e.typeName, strconv.Quote(head.Encoding.SemanticType))
	case entityKind_GROUP:
		u.linef("\nfunc (*%s) SbeBlockLength() (blockLength %s) {\n\treturn %d\n}", e.typeName, e.blockLengthType, head.EncodedLength)
		u.linef("\nfunc (*%s) SbeSchemaVersion() (schemaVersion %s) {\n\treturn %d\n}", e.typeName, g.header.versionType, g.schema.Version)
	}
	u.linef("\nfunc (*%s) EncodedLength() int64 {\n\treturn %d\n}", e.typeName, head.EncodedLength)
}

func (g *generator) renderVersionAccessors(u *unit, typeName, recv, prop string, token *ir.Token) {
	u.linef("\nfunc (*%s) %sSinceVersion() uint16 {\n\treturn %d\n}", typeName, prop, token.Version)
	u.linef("\nfunc (%s *%s) %sInActingVersion(actingVersion uint16) bool {\n\treturn actingVersion >= %s.%sSinceVersion()\n}", recv, typeName, prop, recv, prop)
	u.linef("\nfunc (*%s) %sDeprecated() uint16 {\n\treturn %d\n}", typeName, prop, token.Deprecated)
}

// renderMetaAttribute writes the accessor for the descriptive attributes
// passed through from the schema: 1 is the epoch, 2 the time unit, and 3
// the semantic type.
func (g *generator) renderMetaAttribute(u *unit, typeName, prop string, encodings ...*ir.Encoding) {
	var epoch, timeUnit, semanticType string
	for _, enc := range encodings {
		epoch = cmp.Or(epoch, enc.Epoch)
		timeUnit = cmp.Or(timeUnit, enc.TimeUnit)
		semanticType = cmp.Or(semanticType, enc.SemanticType)
	}
	u.linef("\nfunc (*%s) %sMetaAttribute(meta int) string {", typeName, prop)
	u.line("\tswitch meta {")
	u.linef("\tcase 1:\n\t\treturn %s", strconv.Quote(epoch))
	u.linef("\tcase 2:\n\t\treturn %s", strconv.Quote(timeUnit))
	u.linef("\tcase 3:\n\t\treturn %s", strconv.Quote(semanticType))
	u.line("\t}")
	u.line("\treturn \"\"")
	u.line("}")
}

func (g *generator) renderFieldAccessors(u *unit, e *entity, f *fieldStep) {
	if f.isField {
		u.linef("\nfunc (*%s) %sId() uint16 {\n\treturn %d\n}", e.typeName, f.name, f.token.ID)
	}
	g.renderVersionAccessors(u, e.typeName, e.recv, f.name, f.token)
	if f.isField {
		g.renderMetaAttribute(u, e.typeName, f.name, &f.token.Encoding, &f.typeTok.Encoding)
	}
	if f.kind != fieldKind_PRIMITIVE {
		return
	}

	if f.bounds.usesMath() {
		u.use("math")
	}
	u.linef("\nfunc (*%s) %sMinValue() %s {\n\treturn %s\n}", e.typeName, f.name, f.elemType, f.bounds.Min)
	u.linef("\nfunc (*%s) %sMaxValue() %s {\n\treturn %s\n}", e.typeName, f.name, f.elemType, f.bounds.Max)
	u.linef("\nfunc (*%s) %sNullValue() %s {\n\treturn %s\n}", e.typeName, f.name, f.elemType, f.bounds.Null)
	if f.isChar() && f.isArray() {
		u.linef("\nfunc (*%s) %sCharacterEncoding() string {\n\treturn %s\n}", e.typeName, f.name, strconv.Quote(f.charset))
	}
}

func (g *generator) renderGroupAccessors(u *unit, e *entity, gs *groupStep) {
	u.linef("\nfunc (*%s) %sId() uint16 {\n\treturn %d\n}", e.typeName, gs.name, gs.token.ID)
	g.renderVersionAccessors(u, e.typeName, e.recv, gs.name, gs.token)
}

func (g *generator) renderVarDataAccessors(u *unit, e *entity, vs *varDataStep) {
	u.linef("\nfunc (*%s) %sId() uint16 {\n\treturn %d\n}", e.typeName, vs.name, vs.token.ID)
	g.renderVersionAccessors(u, e.typeName, e.recv, vs.name, vs.token)
	g.renderMetaAttribute(u, e.typeName, vs.name, &vs.token.Encoding)
	u.linef("\nfunc (*%s) %sCharacterEncoding() string {\n\treturn %s\n}", e.typeName, vs.name, strconv.Quote(vs.charset))
	u.linef("\nfunc (*%s) %sHeaderLength() uint64 {\n\treturn %d\n}", e.typeName, vs.name, vs.headerLength)
}
