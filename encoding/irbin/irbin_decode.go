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

package irbin

import (
	"encoding/binary"

	"github.com/swordday/simple-binary-encoding/ir"
)

func Decode(buf []byte) (*ir.IR, error) {
	bufLen := len(buf)
	if bufLen < 16 {
		return nil, errTruncated(0, 16)
	}
	if bufLen%8 != 0 {
		return nil, errUnaligned(bufLen)
	}
	if bufLen > MaxSize {
		return nil, errTooLarge(bufLen)
	}

	le := binary.LittleEndian
	if size := le.Uint32(buf[0:4]); int(size) != bufLen {
		return nil, errSizeMismatch(size, bufLen)
	}
	if version := le.Uint16(buf[4:6]); version != FormatVersion {
		return nil, errUnsupportedVersion(version)
	}
	if flags := le.Uint16(buf[6:8]); flags != 0 {
		return nil, errUnknownFlags(flags)
	}
	typeCount := le.Uint32(buf[8:12])
	messageCount := le.Uint32(buf[12:16])

	d := decoder{buf: buf, off: 16}
	schema := &ir.IR{}
	schema.PackageName = d.string()
	nsCount := d.uint32()
	for ii := uint32(0); ii < nsCount && d.err == nil; ii++ {
		schema.Namespaces = append(schema.Namespaces, d.string())
	}
	schema.ID = d.int32()
	schema.Version = d.int32()
	schema.SemanticVersion = d.string()

	headerTokens := d.entity()
	for ii := uint32(0); ii < typeCount && d.err == nil; ii++ {
		schema.Types = append(schema.Types, d.entity())
	}
	for ii := uint32(0); ii < messageCount && d.err == nil; ii++ {
		schema.Messages = append(schema.Messages, d.entity())
	}
	if d.err != nil {
		return nil, d.err
	}
	for _, pad := range buf[d.off:] {
		if pad != 0 {
			return nil, errTrailingData(d.off)
		}
	}
	if bufLen-d.off >= 8 {
		return nil, errTrailingData(d.off)
	}

	header, err := ir.NewHeaderStructure(headerTokens)
	if err != nil {
		return nil, err
	}
	schema.Header = header
	if err := ir.Validate(schema); err != nil {
		return nil, err
	}
	return schema, nil
}

type decoder struct {
	buf []byte
	off int
	err error
}

func (d *decoder) take(n int) []byte {
	if d.err != nil {
		return nil
	}
	if n < 0 || len(d.buf)-d.off < n {
		d.err = errTruncated(d.off, n)
		return nil
	}
	out := d.buf[d.off : d.off+n]
	d.off += n
	return out
}

func (d *decoder) uint8() uint8 {
	if b := d.take(1); b != nil {
		return b[0]
	}
	return 0
}

func (d *decoder) uint32() uint32 {
	if b := d.take(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

func (d *decoder) int32() int32 {
	return int32(d.uint32())
}

func (d *decoder) string() string {
	n := d.uint32()
	return string(d.take(int(n)))
}

func (d *decoder) entity() []ir.Token {
	count := d.uint32()
	// Every token occupies at least 60 bytes.
	if d.err == nil && uint64(count)*60 > uint64(len(d.buf)-d.off) {
		d.err = errTruncated(d.off, int(count)*60)
	}
	if d.err != nil {
		return nil
	}
	tokens := make([]ir.Token, count)
	for ii := range tokens {
		d.token(&tokens[ii])
	}
	return tokens
}

func (d *decoder) token(token *ir.Token) {
	token.Signal = ir.Signal(d.uint8())
	token.Encoding.PrimitiveType = ir.PrimitiveType(d.uint8())
	token.Encoding.Presence = ir.Presence(d.uint8())
	flags := d.uint8()
	token.ID = d.int32()
	token.Version = d.int32()
	token.Deprecated = d.int32()
	token.Offset = d.int32()
	token.EncodedLength = d.int32()
	token.ArrayLength = d.int32()
	token.ComponentTokenCount = d.int32()

	token.Name = d.string()
	token.ReferencedName = d.string()
	token.Description = d.string()
	token.Encoding.CharacterEncoding = d.string()
	token.Encoding.Epoch = d.string()
	token.Encoding.TimeUnit = d.string()
	token.Encoding.SemanticType = d.string()
	for _, literal := range []struct {
		flag  uint8
		value **string
	}{
		{flagConstValue, &token.Encoding.ConstValue},
		{flagMinValue, &token.Encoding.MinValue},
		{flagMaxValue, &token.Encoding.MaxValue},
		{flagNullValue, &token.Encoding.NullValue},
	} {
		if flags&literal.flag != 0 {
			value := d.string()
			*literal.value = &value
		}
	}

	if d.err == nil {
		if _, ok := ir.ParseSignal(token.Signal.String()); !ok {
			d.err = errBadEnum("signal", uint8(token.Signal), d.off)
		} else if token.Encoding.PrimitiveType > ir.PrimitiveType_DOUBLE {
			d.err = errBadEnum("primitive type", uint8(token.Encoding.PrimitiveType), d.off)
		} else if token.Encoding.Presence > ir.Presence_CONSTANT {
			d.err = errBadEnum("presence", uint8(token.Encoding.Presence), d.off)
		}
	}
}
