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
)

type Warning struct {
	code    uint32
	message string
	entity  string
}

func (w *Warning) String() string {
	return fmt.Sprintf("W%d: %s", w.code, w.message)
}

func (w *Warning) Code() uint32 {
	return w.code
}

func (w *Warning) Message() string {
	return w.message
}

func (w *Warning) Entity() string {
	return w.entity
}

func warnDuplicateArtifact(entity, file string) *Warning {
	return &Warning{
		code:    5000,
		message: fmt.Sprintf("Artifact %s is generated more than once; keeping the first", file),
		entity:  entity,
	}
}

func warnNegativeGap(entity, field string, gap int32) *Warning {
	return &Warning{
		code:    5001,
		message: fmt.Sprintf("Field '%s' declares an offset %d bytes behind the previous field", field, -gap),
		entity:  entity,
	}
}

func warnCompositeOverflow(entity string, declared, actual int32) *Warning {
	return &Warning{
		code: 5002,
		message: fmt.Sprintf(
			"Composite elements span %d bytes, exceeding its declared length %d",
			actual, declared,
		),
		entity: entity,
	}
}

func warnSignedChoiceSet(entity string, primitiveType fmt.Stringer) *Warning {
	return &Warning{
		code:    5003,
		message: fmt.Sprintf("Choice set is encoded as %s; bits are packed as unsigned", primitiveType),
		entity:  entity,
	}
}
