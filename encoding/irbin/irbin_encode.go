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

// Package irbin is a compact binary form of an IR, used to hand a parsed
// schema to code generator plugins.
//
// All integers are little-endian. The buffer starts with a 16 byte header
// (total size, format version, flags, type count, message count) followed
// by the schema metadata and the header, type, and message token streams.
// The total size is padded with zeroes to a multiple of 8.
package irbin

import (
	"encoding/binary"
	"math"

	"github.com/swordday/simple-binary-encoding/ir"
)

const FormatVersion = 1

// MaxSize bounds an encoded IR, so that sizes fit the header's uint32.
const MaxSize = math.MaxUint32 &^ 0b111

const (
	flagConstValue uint8 = 1 << iota
	flagMinValue
	flagMaxValue
	flagNullValue
)

func Encode(schema *ir.IR) ([]byte, error) {
	e := encoder{buf: make([]byte, 16, 256)}
	e.string(schema.PackageName)
	e.uint32(uint32(len(schema.Namespaces)))
	for _, ns := range schema.Namespaces {
		e.string(ns)
	}
	e.int32(schema.ID)
	e.int32(schema.Version)
	e.string(schema.SemanticVersion)

	if schema.Header == nil {
		return nil, errMissingHeader()
	}
	e.entity(schema.Header.Tokens)
	for _, tokens := range schema.Types {
		e.entity(tokens)
	}
	for _, tokens := range schema.Messages {
		e.entity(tokens)
	}

	for len(e.buf)%8 != 0 {
		e.buf = append(e.buf, 0)
	}
	if len(e.buf) > MaxSize {
		return nil, errTooLarge(len(e.buf))
	}

	le := binary.LittleEndian
	le.PutUint32(e.buf[0:4], uint32(len(e.buf)))
	le.PutUint16(e.buf[4:6], FormatVersion)
	le.PutUint16(e.buf[6:8], 0)
	le.PutUint32(e.buf[8:12], uint32(len(schema.Types)))
	le.PutUint32(e.buf[12:16], uint32(len(schema.Messages)))
	return e.buf, nil
}

type encoder struct {
	buf []byte
}

func (e *encoder) uint8(v uint8) {
	e.buf = append(e.buf, v)
}

func (e *encoder) uint32(v uint32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
}

func (e *encoder) int32(v int32) {
	e.uint32(uint32(v))
}

func (e *encoder) string(s string) {
	e.uint32(uint32(len(s)))
	e.buf = append(e.buf, s...)
}

func (e *encoder) entity(tokens []ir.Token) {
	e.uint32(uint32(len(tokens)))
	for ii := range tokens {
		e.token(&tokens[ii])
	}
}

func (e *encoder) token(token *ir.Token) {
	enc := &token.Encoding
	var flags uint8
	if enc.ConstValue != nil {
		flags |= flagConstValue
	}
	if enc.MinValue != nil {
		flags |= flagMinValue
	}
	if enc.MaxValue != nil {
		flags |= flagMaxValue
	}
	if enc.NullValue != nil {
		flags |= flagNullValue
	}

	e.uint8(uint8(token.Signal))
	e.uint8(uint8(enc.PrimitiveType))
	e.uint8(uint8(enc.Presence))
	e.uint8(flags)
	e.int32(token.ID)
	e.int32(token.Version)
	e.int32(token.Deprecated)
	e.int32(token.Offset)
	e.int32(token.EncodedLength)
	e.int32(token.ArrayLength)
	e.int32(token.ComponentTokenCount)

	e.string(token.Name)
	e.string(token.ReferencedName)
	e.string(token.Description)
	e.string(enc.CharacterEncoding)
	e.string(enc.Epoch)
	e.string(enc.TimeUnit)
	e.string(enc.SemanticType)
	for _, value := range []*string{enc.ConstValue, enc.MinValue, enc.MaxValue, enc.NullValue} {
		if value != nil {
			e.string(*value)
		}
	}
}
