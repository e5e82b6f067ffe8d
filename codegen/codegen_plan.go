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

	"github.com/swordday/simple-binary-encoding/ir"
)

type entityKind uint8

const (
	entityKind_MESSAGE entityKind = iota
	entityKind_GROUP
	entityKind_COMPOSITE
)

// entity is one generated Go type with a codec: a message, a group element,
// or a composite. Its steps are the emission plan produced by a single walk
// over its tokens.
type entity struct {
	kind     entityKind
	typeName string
	recv     string

	// tokens is the whole subtree, begin token through matching end token.
	tokens []ir.Token

	// blockLengthType is the Go type of the acting block length passed to
	// Decode; empty for composites, which are not extensible.
	blockLengthType string

	steps    []step
	consumed int32

	fields  []*fieldStep
	groups  []*groupStep
	varData []*varDataStep
}

func (e *entity) token() *ir.Token {
	return &e.tokens[0]
}

func (e *entity) extensible() bool {
	return e.kind != entityKind_COMPOSITE
}

// step is one entry of an entity's emission plan. Each step renders into
// some or all of the encode, decode, range check, and init bodies.
type step interface {
	isStep()
}

// encodeCheckStep validates a message against its own schema version
// before any bytes are written.
type encodeCheckStep struct{}

// decodeCheckStep validates a decoded message against its acting version.
type decodeCheckStep struct{}

// paddingStep fills the tail of a fixed block up to its declared length.
type paddingStep struct {
	n int32
}

// extensionStep discards the part of an acting block that is longer than
// the compiled block.
type extensionStep struct{}

type fieldKind uint8

const (
	fieldKind_PRIMITIVE fieldKind = iota
	fieldKind_ENUM
	fieldKind_SET
	fieldKind_COMPOSITE
)

type fieldStep struct {
	kind fieldKind
	name string

	// token carries the id, version, and metadata of the property: the
	// BEGIN_FIELD token of a message or group field, or the element token
	// itself within a composite.
	token   *ir.Token
	typeTok *ir.Token
	isField bool

	gap    int32
	length int32

	// goType is the declared Go type of the struct member. typeName is the
	// generated type it refers to (enum, set, or composite), and elemType the
	// Go primitive of a primitive field.
	goType   string
	typeName string
	elemType string

	arrayLength int32
	constant    bool
	constValue  string
	bounds      bounds
	charset     string
}

func (f *fieldStep) isArray() bool {
	return f.arrayLength > 1 || (f.constant && f.typeTok.Encoding.PrimitiveType == ir.PrimitiveType_CHAR)
}

func (f *fieldStep) isChar() bool {
	return f.typeTok.Encoding.PrimitiveType == ir.PrimitiveType_CHAR
}

func (f *fieldStep) isFloat() bool {
	return f.typeTok.Encoding.PrimitiveType.IsFloat()
}

func (f *fieldStep) isOptional() bool {
	return f.typeTok.IsOptionalEncoding()
}

type groupStep struct {
	name  string
	token *ir.Token
	gap   int32

	blockLengthType string
	numInGroupType  string
	maxCount        string
	child           *entity
}

type varDataStep struct {
	name  string
	token *ir.Token
	gap   int32

	lengthType   string
	maxLength    string
	dataType     string
	headerLength int32
	charset      string
}

func (encodeCheckStep) isStep() {}
func (decodeCheckStep) isStep() {}
func (*paddingStep) isStep()    {}
func (extensionStep) isStep()   {}
func (*fieldStep) isStep()      {}
func (*groupStep) isStep()      {}
func (*varDataStep) isStep()    {}

// walk makes one forward pass over the entity's tokens, building its
// emission plan and tracking the byte offset within its fixed block.
// Nested groups are walked first, so their plans are complete before the
// parent's.
func (g *generator) walk(e *entity) bool {
	tokens := e.tokens
	head := &tokens[0]
	var cursor int32
	blockClosed := false

	// The end of the fixed block is the single extensibility point: before
	// the first group or var data field, or at the end of the entity.
	closeBlock := func() {
		if blockClosed {
			return
		}
		blockClosed = true
		// Padding follows the compiled layout, whatever the acting version.
		switch pad := head.EncodedLength - cursor; {
		case pad > 0:
			e.steps = append(e.steps, &paddingStep{n: pad})
		case pad < 0 && e.kind == entityKind_COMPOSITE && head.EncodedLength > 0:
			g.warn(warnCompositeOverflow(g.entity, head.EncodedLength, cursor))
		}
		if e.extensible() {
			e.steps = append(e.steps, extensionStep{})
		}
	}

	ii := 1
	switch head.Signal {
	case ir.Signal_BEGIN_MESSAGE:
		e.steps = append(e.steps, encodeCheckStep{})
		if !g.checkBodyOrder(tokens, ii) {
			return false
		}
	case ir.Signal_BEGIN_GROUP:
		if len(tokens) < 3 || tokens[1].Signal != ir.Signal_BEGIN_COMPOSITE {
			g.err(errMalformedShape(g.entity, head, "a dimension composite"))
			return false
		}
		ii = 1 + int(tokens[1].ComponentTokenCount)
		if !g.checkBodyOrder(tokens, ii) {
			return false
		}
	case ir.Signal_BEGIN_COMPOSITE:
	default:
		g.err(errUnknownEntity(head.Name, head.Signal))
		return false
	}

	for ii < len(tokens)-1 {
		token := &tokens[ii]
		count := int(token.ComponentTokenCount)
		switch token.Signal {
		case ir.Signal_BEGIN_FIELD:
			if count < 3 {
				g.err(errMalformedShape(g.entity, token, "a type token"))
				return false
			}
			f := g.field(e, token, &tokens[ii+1], tokens[ii+1:ii+count-1], cursor)
			if f == nil {
				return false
			}
			cursor += f.gap + f.length
		case ir.Signal_ENCODING,
			ir.Signal_BEGIN_ENUM,
			ir.Signal_BEGIN_SET,
			ir.Signal_BEGIN_COMPOSITE:
			// Variable-length elements only describe var data payloads.
			if token.Signal == ir.Signal_ENCODING && token.EncodedLength < 0 {
				break
			}
			f := g.field(e, token, token, tokens[ii:ii+count], cursor)
			if f == nil {
				return false
			}
			cursor += f.gap + f.length
		case ir.Signal_BEGIN_GROUP:
			closeBlock()
			gs := g.group(e, tokens[ii:ii+count], cursor)
			if gs == nil {
				return false
			}
			cursor += gs.gap
		case ir.Signal_BEGIN_VAR_DATA:
			closeBlock()
			vs := g.varDataField(e, tokens[ii:ii+count], cursor)
			if vs == nil {
				return false
			}
			cursor += vs.gap
		default:
			g.err(errMalformedShape(g.entity, token, "a field, group, or var data"))
			return false
		}
		ii += count
	}

	closeBlock()
	if head.Signal == ir.Signal_BEGIN_MESSAGE {
		e.steps = append(e.steps, decodeCheckStep{})
	}
	e.consumed = cursor
	return true
}

// checkBodyOrder checks that a message or group body starting at index
// lists its fields, then its groups, then its var data fields.
func (g *generator) checkBodyOrder(tokens []ir.Token, index int) bool {
	end, _ := ir.CollectFields(tokens, index, nil)
	end, _ = ir.CollectGroups(tokens, end, nil)
	end, _ = ir.CollectVarData(tokens, end, nil)
	if end != len(tokens)-1 {
		token := &tokens[min(end, len(tokens)-1)]
		g.err(errMalformedShape(g.entity, token, "fields, then groups, then var data"))
		return false
	}
	return true
}

// fieldGap is the number of padding bytes before a field at offset, given
// the current cursor. Negative gaps are clamped to zero.
func (g *generator) fieldGap(name string, offset, cursor int32, warn bool) int32 {
	if offset == ir.OffsetUnset {
		return 0
	}
	gap := offset - cursor
	if gap < 0 {
		if warn {
			g.warn(warnNegativeGap(g.entity, name, gap))
		}
		return 0
	}
	return gap
}

func (g *generator) field(
	e *entity,
	token *ir.Token,
	typeTok *ir.Token,
	subtree []ir.Token,
	cursor int32,
) *fieldStep {
	f := &fieldStep{
		name:        g.names.exported(token.Name),
		token:       token,
		typeTok:     typeTok,
		isField:     token.Signal == ir.Signal_BEGIN_FIELD,
		arrayLength: typeTok.ArrayLength,
		constant:    token.IsConstantEncoding() || typeTok.IsConstantEncoding(),
	}
	if f.constant {
		switch {
		case typeTok.Encoding.ConstValue != nil:
			f.constValue = *typeTok.Encoding.ConstValue
		case token.Encoding.ConstValue != nil:
			f.constValue = *token.Encoding.ConstValue
		default:
			g.err(errMalformedShape(g.entity, token, "a constant value"))
			return nil
		}
	}

	offset := token.Offset
	if offset == ir.OffsetUnset {
		offset = typeTok.Offset
	}
	f.gap = g.fieldGap(token.Name, offset, cursor, true)
	if !f.constant {
		f.length = typeTok.EncodedLength
	}

	switch typeTok.Signal {
	case ir.Signal_ENCODING:
		f.kind = fieldKind_PRIMITIVE
		elemType, ok := goType(typeTok.Encoding.PrimitiveType)
		if !ok {
			g.err(errUnsupportedPrimitive(g.entity, typeTok))
			return nil
		}
		f.elemType = elemType
		f.bounds, _ = resolveBounds(&typeTok.Encoding)
		f.charset = typeTok.Encoding.CharacterEncoding
		if f.constant && f.isChar() {
			f.arrayLength = int32(len(f.constValue))
		}
		f.goType = elemType
		if f.isArray() {
			f.goType = fmt.Sprintf("[%d]%s", f.arrayLength, elemType)
		}
	case ir.Signal_BEGIN_ENUM:
		f.kind = fieldKind_ENUM
		f.typeName = g.names.exported(typeTok.TypeName())
		f.goType = f.typeName + "Enum"
	case ir.Signal_BEGIN_SET:
		f.kind = fieldKind_SET
		f.typeName = g.names.exported(typeTok.TypeName())
		f.goType = f.typeName
	case ir.Signal_BEGIN_COMPOSITE:
		f.kind = fieldKind_COMPOSITE
		if f.isField || typeTok.ReferencedName != "" {
			f.typeName = g.names.exported(typeTok.TypeName())
		} else {
			// An element declared inline gets a type of its own, named
			// after the composite containing it.
			f.typeName = e.typeName + f.name
			if !g.composite(f.typeName, subtree) {
				return nil
			}
		}
		f.goType = f.typeName
	default:
		g.err(errMalformedShape(g.entity, token, "an encoding, enum, set, or composite"))
		return nil
	}

	e.fields = append(e.fields, f)
	e.steps = append(e.steps, f)
	return f
}

func (g *generator) group(parent *entity, tokens []ir.Token, cursor int32) *groupStep {
	token := &tokens[0]
	if len(tokens) < 6 ||
		tokens[1].Signal != ir.Signal_BEGIN_COMPOSITE ||
		tokens[2].Signal != ir.Signal_ENCODING ||
		tokens[3].Signal != ir.Signal_ENCODING {
		g.err(errMalformedShape(g.entity, token, "a dimension of blockLength and numInGroup"))
		return nil
	}
	blockLengthType, ok := goType(tokens[2].Encoding.PrimitiveType)
	if !ok {
		g.err(errUnsupportedPrimitive(g.entity, &tokens[2]))
		return nil
	}
	numInGroupType, ok := goType(tokens[3].Encoding.PrimitiveType)
	if !ok {
		g.err(errUnsupportedPrimitive(g.entity, &tokens[3]))
		return nil
	}

	name := g.names.exported(token.Name)
	child := &entity{
		kind:            entityKind_GROUP,
		typeName:        parent.typeName + name,
		tokens:          tokens,
		blockLengthType: blockLengthType,
	}
	child.recv = receiverName(child.typeName)
	if !g.walk(child) {
		return nil
	}

	gs := &groupStep{
		name:            name,
		token:           token,
		gap:             g.fieldGap(token.Name, token.Offset, cursor, false),
		blockLengthType: blockLengthType,
		numInGroupType:  numInGroupType,
		maxCount:        countLimit(&tokens[3].Encoding),
		child:           child,
	}
	parent.groups = append(parent.groups, gs)
	parent.steps = append(parent.steps, gs)
	return gs
}

func (g *generator) varDataField(parent *entity, tokens []ir.Token, cursor int32) *varDataStep {
	token := &tokens[0]
	if len(tokens) < 6 ||
		tokens[1].Signal != ir.Signal_BEGIN_COMPOSITE ||
		tokens[2].Signal != ir.Signal_ENCODING ||
		tokens[3].Signal != ir.Signal_ENCODING {
		g.err(errMalformedShape(g.entity, token, "a length and varData encoding"))
		return nil
	}
	lengthType, ok := goType(tokens[2].Encoding.PrimitiveType)
	if !ok {
		g.err(errUnsupportedPrimitive(g.entity, &tokens[2]))
		return nil
	}
	dataType, ok := goType(tokens[3].Encoding.PrimitiveType)
	if !ok {
		g.err(errUnsupportedPrimitive(g.entity, &tokens[3]))
		return nil
	}

	vs := &varDataStep{
		name:         g.names.exported(token.Name),
		token:        token,
		gap:          g.fieldGap(token.Name, token.Offset, cursor, false),
		lengthType:   lengthType,
		maxLength:    countLimit(&tokens[2].Encoding),
		dataType:     dataType,
		headerLength: tokens[2].EncodedLength,
		charset:      tokens[3].Encoding.CharacterEncoding,
	}
	parent.varData = append(parent.varData, vs)
	parent.steps = append(parent.steps, vs)
	return vs
}
