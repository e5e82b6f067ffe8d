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
)

type PrimitiveType uint8

const (
	PrimitiveType_NONE PrimitiveType = iota
	PrimitiveType_CHAR
	PrimitiveType_INT8
	PrimitiveType_INT16
	PrimitiveType_INT32
	PrimitiveType_INT64
	PrimitiveType_UINT8
	PrimitiveType_UINT16
	PrimitiveType_UINT32
	PrimitiveType_UINT64
	PrimitiveType_FLOAT
	PrimitiveType_DOUBLE
)

var primitiveTypes = []PrimitiveType{
	PrimitiveType_CHAR,
	PrimitiveType_INT8,
	PrimitiveType_INT16,
	PrimitiveType_INT32,
	PrimitiveType_INT64,
	PrimitiveType_UINT8,
	PrimitiveType_UINT16,
	PrimitiveType_UINT32,
	PrimitiveType_UINT64,
	PrimitiveType_FLOAT,
	PrimitiveType_DOUBLE,
}

// PrimitiveTypes lists every primitive type a schema may declare.
func PrimitiveTypes() []PrimitiveType {
	return append([]PrimitiveType(nil), primitiveTypes...)
}

func (t PrimitiveType) String() string {
	switch t {
	case PrimitiveType_NONE:
		return "none"
	case PrimitiveType_CHAR:
		return "char"
	case PrimitiveType_INT8:
		return "int8"
	case PrimitiveType_INT16:
		return "int16"
	case PrimitiveType_INT32:
		return "int32"
	case PrimitiveType_INT64:
		return "int64"
	case PrimitiveType_UINT8:
		return "uint8"
	case PrimitiveType_UINT16:
		return "uint16"
	case PrimitiveType_UINT32:
		return "uint32"
	case PrimitiveType_UINT64:
		return "uint64"
	case PrimitiveType_FLOAT:
		return "float"
	case PrimitiveType_DOUBLE:
		return "double"
	default:
		return fmt.Sprintf("PrimitiveType(%d)", uint8(t))
	}
}

func ParsePrimitiveType(name string) (PrimitiveType, bool) {
	switch name {
	case "":
		return PrimitiveType_NONE, true
	case "char":
		return PrimitiveType_CHAR, true
	case "int8":
		return PrimitiveType_INT8, true
	case "int16":
		return PrimitiveType_INT16, true
	case "int32":
		return PrimitiveType_INT32, true
	case "int64":
		return PrimitiveType_INT64, true
	case "uint8":
		return PrimitiveType_UINT8, true
	case "uint16":
		return PrimitiveType_UINT16, true
	case "uint32":
		return PrimitiveType_UINT32, true
	case "uint64":
		return PrimitiveType_UINT64, true
	case "float":
		return PrimitiveType_FLOAT, true
	case "double":
		return PrimitiveType_DOUBLE, true
	}
	return PrimitiveType_NONE, false
}

// Size is the encoded width in bytes, or 0 for PrimitiveType_NONE.
func (t PrimitiveType) Size() int32 {
	switch t {
	case PrimitiveType_CHAR, PrimitiveType_INT8, PrimitiveType_UINT8:
		return 1
	case PrimitiveType_INT16, PrimitiveType_UINT16:
		return 2
	case PrimitiveType_INT32, PrimitiveType_UINT32, PrimitiveType_FLOAT:
		return 4
	case PrimitiveType_INT64, PrimitiveType_UINT64, PrimitiveType_DOUBLE:
		return 8
	}
	return 0
}

func (t PrimitiveType) IsSigned() bool {
	switch t {
	case PrimitiveType_INT8, PrimitiveType_INT16, PrimitiveType_INT32, PrimitiveType_INT64:
		return true
	}
	return false
}

func (t PrimitiveType) IsUnsigned() bool {
	switch t {
	case PrimitiveType_UINT8, PrimitiveType_UINT16, PrimitiveType_UINT32, PrimitiveType_UINT64:
		return true
	}
	return false
}

func (t PrimitiveType) IsFloat() bool {
	return t == PrimitiveType_FLOAT || t == PrimitiveType_DOUBLE
}
