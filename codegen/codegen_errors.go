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

type Error struct {
	code    uint32
	message string
	entity  string
}

var _ error = (*Error)(nil)

func (err *Error) Error() string {
	return fmt.Sprintf("E%d: %s", err.code, err.message)
}

func (err *Error) Code() uint32 {
	return err.code
}

func (err *Error) Message() string {
	return err.message
}

// Entity is the name of the top-level entity being generated when the
// error occurred.
func (err *Error) Entity() string {
	return err.entity
}

func errUnsupportedPrimitive(entity string, token *ir.Token) error {
	return &Error{
		code: 6000,
		message: fmt.Sprintf(
			"Token '%s' has unsupported primitive type %s",
			token.Name, token.Encoding.PrimitiveType,
		),
		entity: entity,
	}
}

func errMalformedShape(entity string, token *ir.Token, want string) error {
	return &Error{
		code: 6001,
		message: fmt.Sprintf(
			"%s '%s' is malformed: expected %s",
			token.Signal, token.Name, want,
		),
		entity: entity,
	}
}

func errFormatSource(entity, file string, cause error) error {
	return &Error{
		code:    6002,
		message: fmt.Sprintf("Generated source for %s failed to format: %v", file, cause),
		entity:  entity,
	}
}

func errUnknownEntity(entity string, signal ir.Signal) error {
	return &Error{
		code:    6003,
		message: fmt.Sprintf("Entity '%s' starts with unexpected %s", entity, signal),
		entity:  entity,
	}
}
