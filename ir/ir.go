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

package ir

// IR is a parsed schema: a flat pre-order token stream per top-level
// entity, plus the schema metadata shared by every message.
type IR struct {
	PackageName     string
	Namespaces      []string
	ID              int32
	Version         int32
	SemanticVersion string

	Header   *HeaderStructure
	Types    [][]Token
	Messages [][]Token
}

// HeaderStructure is the composite prepended to every message on the wire.
type HeaderStructure struct {
	Tokens []Token

	BlockLengthType   PrimitiveType
	TemplateIDType    PrimitiveType
	SchemaIDType      PrimitiveType
	SchemaVersionType PrimitiveType
}

const (
	headerBlockLength = "blockLength"
	headerTemplateID  = "templateId"
	headerSchemaID    = "schemaId"
	headerVersion     = "version"
)

func NewHeaderStructure(tokens []Token) (*HeaderStructure, error) {
	if len(tokens) < 2 || tokens[0].Signal != Signal_BEGIN_COMPOSITE {
		return nil, errHeaderNotComposite()
	}
	h := &HeaderStructure{Tokens: tokens}
	for ii := range tokens {
		token := &tokens[ii]
		if token.Signal != Signal_ENCODING {
			continue
		}
		switch token.Name {
		case headerBlockLength:
			h.BlockLengthType = token.Encoding.PrimitiveType
		case headerTemplateID:
			h.TemplateIDType = token.Encoding.PrimitiveType
		case headerSchemaID:
			h.SchemaIDType = token.Encoding.PrimitiveType
		case headerVersion:
			h.SchemaVersionType = token.Encoding.PrimitiveType
		}
	}
	for _, required := range []struct {
		name  string
		type_ PrimitiveType
	}{
		{headerBlockLength, h.BlockLengthType},
		{headerTemplateID, h.TemplateIDType},
		{headerSchemaID, h.SchemaIDType},
		{headerVersion, h.SchemaVersionType},
	} {
		if required.type_ == PrimitiveType_NONE {
			return nil, errHeaderFieldMissing(required.name)
		}
	}
	return h, nil
}

// Name is the header composite's declared name.
func (h *HeaderStructure) Name() string {
	return h.Tokens[0].Name
}
