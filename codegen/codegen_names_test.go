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
	"github.com/swordday/simple-binary-encoding/ir"
)

func TestNames(t *testing.T) {
	names := newNamer()
	testutil.ExpectEq(t, "FuelFigures", names.exported("fuelFigures"))
	testutil.ExpectEq(t, "TURBO", names.exported("TURBO"))
	testutil.ExpectEq(t, "Über", names.exported("über"))
	testutil.ExpectEq(t, "", names.exported(""))
	testutil.ExpectEq(t, "Model.C", names.enumConstant("Model.C"))
	testutil.ExpectEq(t, "BooleanType.T", names.enumConstant("booleanType.T"))

	testutil.ExpectEq(t, "fuelFigures", lowerFirst("FuelFigures"))
	testutil.ExpectEq(t, "c", receiverName("CarFuelFigures"))
	testutil.ExpectEq(t, "baseline", packageName([]string{"baseline"}))
	testutil.ExpectEq(t, "uk_co_real_logic_sbe", packageName([]string{"uk.co.real-logic", "SBE"}))
}

func TestGoType(t *testing.T) {
	want := map[ir.PrimitiveType]string{
		ir.PrimitiveType_CHAR:   "byte",
		ir.PrimitiveType_INT8:   "int8",
		ir.PrimitiveType_UINT64: "uint64",
		ir.PrimitiveType_FLOAT:  "float32",
		ir.PrimitiveType_DOUBLE: "float64",
	}
	for _, primitiveType := range ir.PrimitiveTypes() {
		got, ok := goType(primitiveType)
		testutil.ExpectTrue(t, ok)
		if name, listed := want[primitiveType]; listed {
			testutil.ExpectEq(t, name, got)
		}
	}
	_, ok := goType(ir.PrimitiveType_NONE)
	testutil.ExpectFalse(t, ok)
}

func TestResolveBounds(t *testing.T) {
	ptr := func(s string) *string { return &s }

	tests := []struct {
		name string
		enc  ir.Encoding
		want bounds
	}{
		{
			name: "int32 defaults",
			enc:  ir.Encoding{PrimitiveType: ir.PrimitiveType_INT32},
			want: bounds{Min: "math.MinInt32 + 1", Max: "math.MaxInt32", Null: "math.MinInt32"},
		},
		{
			name: "uint16 defaults",
			enc:  ir.Encoding{PrimitiveType: ir.PrimitiveType_UINT16},
			want: bounds{Min: "0", Max: "math.MaxUint16 - 1", Null: "math.MaxUint16"},
		},
		{
			name: "char defaults",
			enc:  ir.Encoding{PrimitiveType: ir.PrimitiveType_CHAR},
			want: bounds{Min: "32", Max: "126", Null: "0"},
		},
		{
			name: "double defaults",
			enc:  ir.Encoding{PrimitiveType: ir.PrimitiveType_DOUBLE},
			want: bounds{Min: "-math.MaxFloat64", Max: "math.MaxFloat64", Null: "math.NaN()", NullIsNaN: true},
		},
		{
			name: "overrides",
			enc: ir.Encoding{
				PrimitiveType: ir.PrimitiveType_UINT8,
				MinValue:      ptr("90"),
				MaxValue:      ptr("110"),
				NullValue:     ptr("0"),
			},
			want: bounds{Min: "90", Max: "110", Null: "0"},
		},
		{
			name: "char overrides",
			enc: ir.Encoding{
				PrimitiveType: ir.PrimitiveType_CHAR,
				MinValue:      ptr("a"),
				MaxValue:      ptr("z"),
			},
			want: bounds{Min: "'a'", Max: "'z'", Null: "0"},
		},
		{
			name: "float nan override",
			enc: ir.Encoding{
				PrimitiveType: ir.PrimitiveType_FLOAT,
				NullValue:     ptr("NaN"),
			},
			want: bounds{Min: "-math.MaxFloat32", Max: "math.MaxFloat32", Null: "float32(math.NaN())", NullIsNaN: true},
		},
		{
			name: "float finite null",
			enc: ir.Encoding{
				PrimitiveType: ir.PrimitiveType_FLOAT,
				NullValue:     ptr("-1.0"),
			},
			want: bounds{Min: "-math.MaxFloat32", Max: "math.MaxFloat32", Null: "-1.0"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := resolveBounds(&test.enc)
			testutil.ExpectTrue(t, ok)
			testutil.ExpectEq(t, test.want, got)
		})
	}

	_, ok := resolveBounds(&ir.Encoding{})
	testutil.ExpectFalse(t, ok)
}

func TestLiteral(t *testing.T) {
	testutil.ExpectEq(t, "'A'", literal(ir.PrimitiveType_CHAR, "A"))
	testutil.ExpectEq(t, "65", literal(ir.PrimitiveType_CHAR, "65"))
	testutil.ExpectEq(t, `'\''`, literal(ir.PrimitiveType_CHAR, "'"))
	testutil.ExpectEq(t, `"AB"`, literal(ir.PrimitiveType_CHAR, "AB"))
	testutil.ExpectEq(t, "math.NaN()", literal(ir.PrimitiveType_DOUBLE, "-NaN"))
	testutil.ExpectEq(t, "9000", literal(ir.PrimitiveType_UINT16, "9000"))
}

func TestCountLimit(t *testing.T) {
	ptr := func(s string) *string { return &s }

	testutil.ExpectEq(t, "254", countLimit(&ir.Encoding{PrimitiveType: ir.PrimitiveType_UINT8}))
	testutil.ExpectEq(t, "65534", countLimit(&ir.Encoding{PrimitiveType: ir.PrimitiveType_UINT16}))
	testutil.ExpectEq(t, "4294967294", countLimit(&ir.Encoding{PrimitiveType: ir.PrimitiveType_UINT32}))
	testutil.ExpectEq(t, "18446744073709551614", countLimit(&ir.Encoding{PrimitiveType: ir.PrimitiveType_UINT64}))
	testutil.ExpectEq(t, "127", countLimit(&ir.Encoding{PrimitiveType: ir.PrimitiveType_INT8}))
	testutil.ExpectEq(t, "2147483647", countLimit(&ir.Encoding{PrimitiveType: ir.PrimitiveType_INT32}))
	testutil.ExpectEq(t, "1073741824", countLimit(&ir.Encoding{
		PrimitiveType: ir.PrimitiveType_UINT32,
		MaxValue:      ptr("1073741824"),
	}))

	// No limit can be checked for non-integer prefixes or unusable overrides.
	testutil.ExpectEq(t, "", countLimit(&ir.Encoding{PrimitiveType: ir.PrimitiveType_FLOAT}))
	testutil.ExpectEq(t, "", countLimit(&ir.Encoding{PrimitiveType: ir.PrimitiveType_CHAR}))
	testutil.ExpectEq(t, "", countLimit(&ir.Encoding{
		PrimitiveType: ir.PrimitiveType_INT16,
		MaxValue:      ptr("-1"),
	}))
}
