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
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/swordday/simple-binary-encoding/ir"
)

// bounds holds the Go expressions for a primitive's valid range and null
// sentinel. Each expression is untyped or already converted, so it can be
// returned from an accessor of the primitive's Go type.
type bounds struct {
	Min  string
	Max  string
	Null string

	// NullIsNaN is set when Null is a NaN, which never compares equal to
	// itself and has to be tested with math.IsNaN.
	NullIsNaN bool
}

func (b bounds) usesMath() bool {
	return strings.Contains(b.Min, "math.") ||
		strings.Contains(b.Max, "math.") ||
		strings.Contains(b.Null, "math.")
}

// resolveBounds returns the min, max, and null expressions for an encoding,
// applying the schema's overrides over the per-type defaults.
func resolveBounds(enc *ir.Encoding) (bounds, bool) {
	b, ok := defaultBounds(enc.PrimitiveType)
	if !ok {
		return bounds{}, false
	}
	if enc.MinValue != nil {
		b.Min = literal(enc.PrimitiveType, *enc.MinValue)
	}
	if enc.MaxValue != nil {
		b.Max = literal(enc.PrimitiveType, *enc.MaxValue)
	}
	if enc.NullValue != nil {
		b.Null = literal(enc.PrimitiveType, *enc.NullValue)
		b.NullIsNaN = isNaN(*enc.NullValue)
	}
	return b, true
}

func defaultBounds(t ir.PrimitiveType) (bounds, bool) {
	switch t {
	case ir.PrimitiveType_CHAR:
		return bounds{Min: "32", Max: "126", Null: "0"}, true
	case ir.PrimitiveType_INT8:
		return signedBounds("8"), true
	case ir.PrimitiveType_INT16:
		return signedBounds("16"), true
	case ir.PrimitiveType_INT32:
		return signedBounds("32"), true
	case ir.PrimitiveType_INT64:
		return signedBounds("64"), true
	case ir.PrimitiveType_UINT8:
		return unsignedBounds("8"), true
	case ir.PrimitiveType_UINT16:
		return unsignedBounds("16"), true
	case ir.PrimitiveType_UINT32:
		return unsignedBounds("32"), true
	case ir.PrimitiveType_UINT64:
		return unsignedBounds("64"), true
	case ir.PrimitiveType_FLOAT:
		return bounds{
			Min:       "-math.MaxFloat32",
			Max:       "math.MaxFloat32",
			Null:      "float32(math.NaN())",
			NullIsNaN: true,
		}, true
	case ir.PrimitiveType_DOUBLE:
		return bounds{
			Min:       "-math.MaxFloat64",
			Max:       "math.MaxFloat64",
			Null:      "math.NaN()",
			NullIsNaN: true,
		}, true
	case ir.PrimitiveType_NONE:
		return bounds{}, false
	}
	panic("unreachable")
}

// The most negative value is reserved as null, so min starts one above it.
func signedBounds(bits string) bounds {
	return bounds{
		Min:  "math.MinInt" + bits + " + 1",
		Max:  "math.MaxInt" + bits,
		Null: "math.MinInt" + bits,
	}
}

// The largest value is reserved as null, so max stops one below it.
func unsignedBounds(bits string) bounds {
	return bounds{
		Min:  "0",
		Max:  "math.MaxUint" + bits + " - 1",
		Null: "math.MaxUint" + bits,
	}
}

// countLimit is the largest count or length an integer prefix can carry,
// as a decimal literal. The prefix's null value is excluded unless maxValue
// overrides it. It is empty for other prefixes.
func countLimit(enc *ir.Encoding) string {
	t := enc.PrimitiveType
	bits := uint(t.Size()) * 8
	var limit uint64
	switch {
	case t.IsUnsigned():
		limit = uint64(math.MaxUint64)>>(64-bits) - 1
	case t.IsSigned():
		limit = math.MaxInt64 >> (64 - bits)
	default:
		return ""
	}
	if enc.MaxValue != nil {
		v, err := strconv.ParseUint(*enc.MaxValue, 0, 64)
		if err != nil {
			return ""
		}
		limit = v
	}
	return strconv.FormatUint(limit, 10)
}

// literal renders a value written in the schema as a Go expression of the
// given primitive type.
func literal(t ir.PrimitiveType, value string) string {
	switch t {
	case ir.PrimitiveType_CHAR:
		if _, err := strconv.ParseInt(value, 0, 64); err == nil {
			return value
		}
		if r, size := utf8.DecodeRuneInString(value); size == len(value) && size > 0 {
			return strconv.QuoteRuneToASCII(r)
		}
		return strconv.Quote(value)
	case ir.PrimitiveType_FLOAT:
		if isNaN(value) {
			return "float32(math.NaN())"
		}
		return value
	case ir.PrimitiveType_DOUBLE:
		if isNaN(value) {
			return "math.NaN()"
		}
		return value
	case ir.PrimitiveType_INT8,
		ir.PrimitiveType_INT16,
		ir.PrimitiveType_INT32,
		ir.PrimitiveType_INT64,
		ir.PrimitiveType_UINT8,
		ir.PrimitiveType_UINT16,
		ir.PrimitiveType_UINT32,
		ir.PrimitiveType_UINT64,
		ir.PrimitiveType_NONE:
		return value
	}
	panic("unreachable")
}

func isNaN(value string) bool {
	return strings.HasSuffix(strings.ToLower(value), "nan")
}
