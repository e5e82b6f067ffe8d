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

const OffsetUnset int32 = -1

type Signal uint8

const (
	Signal_UNKNOWN Signal = iota

	Signal_BEGIN_MESSAGE
	Signal_END_MESSAGE
	Signal_BEGIN_COMPOSITE
	Signal_END_COMPOSITE
	Signal_BEGIN_FIELD
	Signal_END_FIELD
	Signal_BEGIN_GROUP
	Signal_END_GROUP
	Signal_BEGIN_ENUM
	Signal_VALID_VALUE
	Signal_END_ENUM
	Signal_BEGIN_SET
	Signal_CHOICE
	Signal_END_SET
	Signal_BEGIN_VAR_DATA
	Signal_END_VAR_DATA
	Signal_ENCODING
)

var signalNames = map[Signal]string{
	Signal_BEGIN_MESSAGE:   "BEGIN_MESSAGE",
	Signal_END_MESSAGE:     "END_MESSAGE",
	Signal_BEGIN_COMPOSITE: "BEGIN_COMPOSITE",
	Signal_END_COMPOSITE:   "END_COMPOSITE",
	Signal_BEGIN_FIELD:     "BEGIN_FIELD",
	Signal_END_FIELD:       "END_FIELD",
	Signal_BEGIN_GROUP:     "BEGIN_GROUP",
	Signal_END_GROUP:       "END_GROUP",
	Signal_BEGIN_ENUM:      "BEGIN_ENUM",
	Signal_VALID_VALUE:     "VALID_VALUE",
	Signal_END_ENUM:        "END_ENUM",
	Signal_BEGIN_SET:       "BEGIN_SET",
	Signal_CHOICE:          "CHOICE",
	Signal_END_SET:         "END_SET",
	Signal_BEGIN_VAR_DATA:  "BEGIN_VAR_DATA",
	Signal_END_VAR_DATA:    "END_VAR_DATA",
	Signal_ENCODING:        "ENCODING",
}

func (s Signal) String() string {
	if name, ok := signalNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Signal(%d)", uint8(s))
}

func ParseSignal(name string) (Signal, bool) {
	for signal, signalName := range signalNames {
		if signalName == name {
			return signal, true
		}
	}
	return Signal_UNKNOWN, false
}

// IsBegin reports whether the signal opens a construct that is closed by
// a matching end signal.
func (s Signal) IsBegin() bool {
	switch s {
	case Signal_BEGIN_MESSAGE,
		Signal_BEGIN_COMPOSITE,
		Signal_BEGIN_FIELD,
		Signal_BEGIN_GROUP,
		Signal_BEGIN_ENUM,
		Signal_BEGIN_SET,
		Signal_BEGIN_VAR_DATA:
		return true
	}
	return false
}

func (s Signal) IsEnd() bool {
	switch s {
	case Signal_END_MESSAGE,
		Signal_END_COMPOSITE,
		Signal_END_FIELD,
		Signal_END_GROUP,
		Signal_END_ENUM,
		Signal_END_SET,
		Signal_END_VAR_DATA:
		return true
	}
	return false
}

// End returns the signal closing s, or Signal_UNKNOWN if s is not a begin
// signal.
func (s Signal) End() Signal {
	switch s {
	case Signal_BEGIN_MESSAGE:
		return Signal_END_MESSAGE
	case Signal_BEGIN_COMPOSITE:
		return Signal_END_COMPOSITE
	case Signal_BEGIN_FIELD:
		return Signal_END_FIELD
	case Signal_BEGIN_GROUP:
		return Signal_END_GROUP
	case Signal_BEGIN_ENUM:
		return Signal_END_ENUM
	case Signal_BEGIN_SET:
		return Signal_END_SET
	case Signal_BEGIN_VAR_DATA:
		return Signal_END_VAR_DATA
	}
	return Signal_UNKNOWN
}

type Presence uint8

const (
	Presence_REQUIRED Presence = iota
	Presence_OPTIONAL
	Presence_CONSTANT
)

func (p Presence) String() string {
	switch p {
	case Presence_REQUIRED:
		return "required"
	case Presence_OPTIONAL:
		return "optional"
	case Presence_CONSTANT:
		return "constant"
	default:
		return fmt.Sprintf("Presence(%d)", uint8(p))
	}
}

func ParsePresence(name string) (Presence, bool) {
	switch name {
	case "", "required":
		return Presence_REQUIRED, true
	case "optional":
		return Presence_OPTIONAL, true
	case "constant":
		return Presence_CONSTANT, true
	}
	return Presence_REQUIRED, false
}

type Encoding struct {
	PrimitiveType PrimitiveType
	Presence      Presence

	// Literal values as written in the schema. A nil pointer means the
	// schema did not declare the value.
	ConstValue *string
	MinValue   *string
	MaxValue   *string
	NullValue  *string

	CharacterEncoding string
	Epoch             string
	TimeUnit          string
	SemanticType      string
}

type Token struct {
	Signal         Signal
	Name           string
	ReferencedName string
	Description    string

	ID         int32
	Version    int32
	Deprecated int32

	// Offset is the declared position within the enclosing block, or
	// OffsetUnset if the token immediately follows the previous field.
	Offset              int32
	EncodedLength       int32
	ArrayLength         int32
	ComponentTokenCount int32

	Encoding Encoding
}

func (t *Token) IsConstantEncoding() bool {
	return t.Encoding.Presence == Presence_CONSTANT
}

func (t *Token) IsOptionalEncoding() bool {
	return t.Encoding.Presence == Presence_OPTIONAL
}

// TypeName is the name of the type a token refers to: the referenced name
// for elements of a composite, the token name otherwise.
func (t *Token) TypeName() string {
	if t.ReferencedName != "" {
		return t.ReferencedName
	}
	return t.Name
}

func (t *Token) String() string {
	return fmt.Sprintf(
		"%s %q (offset=%d len=%d count=%d)",
		t.Signal, t.Name, t.Offset, t.EncodedLength, t.ComponentTokenCount,
	)
}
