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

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

type document struct {
	Package         string       `yaml:"package"`
	Namespaces      []string     `yaml:"namespaces,omitempty"`
	ID              int32        `yaml:"id"`
	Version         int32        `yaml:"version"`
	SemanticVersion string       `yaml:"semanticVersion,omitempty"`
	Header          []tokenDoc   `yaml:"header"`
	Types           [][]tokenDoc `yaml:"types,omitempty"`
	Messages        [][]tokenDoc `yaml:"messages,omitempty"`
}

type tokenDoc struct {
	Signal              string       `yaml:"signal"`
	Name                string       `yaml:"name,omitempty"`
	ReferencedName      string       `yaml:"referencedName,omitempty"`
	Description         string       `yaml:"description,omitempty"`
	ID                  int32        `yaml:"id,omitempty"`
	Version             int32        `yaml:"version,omitempty"`
	Deprecated          int32        `yaml:"deprecated,omitempty"`
	Offset              *int32       `yaml:"offset,omitempty"`
	EncodedLength       int32        `yaml:"encodedLength,omitempty"`
	ArrayLength         int32        `yaml:"arrayLength,omitempty"`
	ComponentTokenCount int32        `yaml:"componentTokenCount,omitempty"`
	Encoding            *encodingDoc `yaml:"encoding,omitempty"`
}

type encodingDoc struct {
	PrimitiveType     string   `yaml:"primitiveType,omitempty"`
	Presence          string   `yaml:"presence,omitempty"`
	ConstValue        *literal `yaml:"constValue,omitempty"`
	MinValue          *literal `yaml:"minValue,omitempty"`
	MaxValue          *literal `yaml:"maxValue,omitempty"`
	NullValue         *literal `yaml:"nullValue,omitempty"`
	CharacterEncoding string   `yaml:"characterEncoding,omitempty"`
	Epoch             string   `yaml:"epoch,omitempty"`
	TimeUnit          string   `yaml:"timeUnit,omitempty"`
	SemanticType      string   `yaml:"semanticType,omitempty"`
}

// literal accepts any YAML scalar, so that `constValue: 9000` and
// `constValue: "9000"` decode the same way.
type literal string

func (l *literal) UnmarshalYAML(unmarshal func(any) error) error {
	var value any
	if err := unmarshal(&value); err != nil {
		return err
	}
	*l = literal(fmt.Sprint(value))
	return nil
}

// Load reads an IR document (YAML or JSON) from a file.
func Load(path string) (*IR, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading IR document %q", path)
	}
	schema, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding IR document %q", path)
	}
	return schema, nil
}

// Decode parses an IR document (YAML or JSON) and validates its token
// streams. Omitted componentTokenCount values are derived from the
// begin/end structure.
func Decode(data []byte) (*IR, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	schema := &IR{
		PackageName:     doc.Package,
		Namespaces:      doc.Namespaces,
		ID:              doc.ID,
		Version:         doc.Version,
		SemanticVersion: doc.SemanticVersion,
	}
	if len(schema.Namespaces) == 0 && schema.PackageName != "" {
		schema.Namespaces = []string{schema.PackageName}
	}

	headerTokens, err := decodeTokens(doc.Header)
	if err != nil {
		return nil, err
	}
	schema.Header, err = NewHeaderStructure(headerTokens)
	if err != nil {
		return nil, err
	}
	for _, raw := range doc.Types {
		tokens, err := decodeTokens(raw)
		if err != nil {
			return nil, err
		}
		schema.Types = append(schema.Types, tokens)
	}
	for _, raw := range doc.Messages {
		tokens, err := decodeTokens(raw)
		if err != nil {
			return nil, err
		}
		schema.Messages = append(schema.Messages, tokens)
	}

	if err := Validate(schema); err != nil {
		return nil, err
	}
	return schema, nil
}

// Encode renders an IR as a YAML document accepted by Decode.
func Encode(schema *IR) ([]byte, error) {
	doc := document{
		Package:         schema.PackageName,
		Namespaces:      schema.Namespaces,
		ID:              schema.ID,
		Version:         schema.Version,
		SemanticVersion: schema.SemanticVersion,
	}
	if schema.Header != nil {
		doc.Header = encodeTokens(schema.Header.Tokens)
	}
	for _, tokens := range schema.Types {
		doc.Types = append(doc.Types, encodeTokens(tokens))
	}
	for _, tokens := range schema.Messages {
		doc.Messages = append(doc.Messages, encodeTokens(tokens))
	}
	return yaml.Marshal(&doc)
}

func decodeTokens(raw []tokenDoc) ([]Token, error) {
	tokens := make([]Token, len(raw))
	for ii := range raw {
		if err := decodeToken(&raw[ii], ii, &tokens[ii]); err != nil {
			return nil, err
		}
	}
	fillComponentTokenCounts(tokens)
	return tokens, nil
}

func decodeToken(raw *tokenDoc, index int, token *Token) error {
	signal, ok := ParseSignal(raw.Signal)
	if !ok {
		return errUnknownSignal(raw.Signal, index)
	}
	*token = Token{
		Signal:              signal,
		Name:                raw.Name,
		ReferencedName:      raw.ReferencedName,
		Description:         raw.Description,
		ID:                  raw.ID,
		Version:             raw.Version,
		Deprecated:          raw.Deprecated,
		Offset:              OffsetUnset,
		EncodedLength:       raw.EncodedLength,
		ArrayLength:         raw.ArrayLength,
		ComponentTokenCount: raw.ComponentTokenCount,
	}
	if raw.Offset != nil {
		token.Offset = *raw.Offset
	}

	if enc := raw.Encoding; enc != nil {
		primitiveType, ok := ParsePrimitiveType(enc.PrimitiveType)
		if !ok {
			return errUnknownPrimitiveType(enc.PrimitiveType, index)
		}
		presence, ok := ParsePresence(enc.Presence)
		if !ok {
			return errUnknownPresence(enc.Presence, index)
		}
		token.Encoding = Encoding{
			PrimitiveType:     primitiveType,
			Presence:          presence,
			ConstValue:        enc.ConstValue.ptr(),
			MinValue:          enc.MinValue.ptr(),
			MaxValue:          enc.MaxValue.ptr(),
			NullValue:         enc.NullValue.ptr(),
			CharacterEncoding: enc.CharacterEncoding,
			Epoch:             enc.Epoch,
			TimeUnit:          enc.TimeUnit,
			SemanticType:      enc.SemanticType,
		}
	}

	if token.ArrayLength == 0 {
		token.ArrayLength = 1
		size := token.Encoding.PrimitiveType.Size()
		if token.Signal == Signal_ENCODING && size > 0 && token.EncodedLength > size {
			token.ArrayLength = token.EncodedLength / size
		}
	}
	return nil
}

func (l *literal) ptr() *string {
	if l == nil {
		return nil
	}
	s := string(*l)
	return &s
}

func fillComponentTokenCounts(tokens []Token) {
	var stack []int
	for ii := range tokens {
		token := &tokens[ii]
		switch {
		case token.Signal.IsBegin():
			stack = append(stack, ii)
		case token.Signal.IsEnd():
			if token.ComponentTokenCount == 0 {
				token.ComponentTokenCount = 1
			}
			if len(stack) == 0 {
				continue
			}
			beginIdx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if tokens[beginIdx].ComponentTokenCount == 0 {
				tokens[beginIdx].ComponentTokenCount = int32(ii - beginIdx + 1)
			}
		default:
			if token.ComponentTokenCount == 0 {
				token.ComponentTokenCount = 1
			}
		}
	}
}

func encodeTokens(tokens []Token) []tokenDoc {
	out := make([]tokenDoc, len(tokens))
	for ii := range tokens {
		token := &tokens[ii]
		raw := &out[ii]
		*raw = tokenDoc{
			Signal:              token.Signal.String(),
			Name:                token.Name,
			ReferencedName:      token.ReferencedName,
			Description:         token.Description,
			ID:                  token.ID,
			Version:             token.Version,
			Deprecated:          token.Deprecated,
			EncodedLength:       token.EncodedLength,
			ArrayLength:         token.ArrayLength,
			ComponentTokenCount: token.ComponentTokenCount,
		}
		if token.Offset != OffsetUnset {
			offset := token.Offset
			raw.Offset = &offset
		}
		enc := &token.Encoding
		if *enc == (Encoding{}) {
			continue
		}
		raw.Encoding = &encodingDoc{
			PrimitiveType:     primitiveTypeName(enc.PrimitiveType),
			Presence:          enc.Presence.String(),
			ConstValue:        literalOf(enc.ConstValue),
			MinValue:          literalOf(enc.MinValue),
			MaxValue:          literalOf(enc.MaxValue),
			NullValue:         literalOf(enc.NullValue),
			CharacterEncoding: enc.CharacterEncoding,
			Epoch:             enc.Epoch,
			TimeUnit:          enc.TimeUnit,
			SemanticType:      enc.SemanticType,
		}
	}
	return out
}

func primitiveTypeName(t PrimitiveType) string {
	if t == PrimitiveType_NONE {
		return ""
	}
	return t.String()
}

func literalOf(s *string) *literal {
	if s == nil {
		return nil
	}
	l := literal(*s)
	return &l
}
