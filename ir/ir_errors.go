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

type Error struct {
	code    uint32
	message string
	index   int
}

var _ error = (*Error)(nil)

func (err *Error) Error() string {
	if err.index < 0 {
		return fmt.Sprintf("E%d: %s", err.code, err.message)
	}
	return fmt.Sprintf("E%d: token %d: %s", err.code, err.index, err.message)
}

func (err *Error) Code() uint32 {
	return err.code
}

func (err *Error) Message() string {
	return err.message
}

// Index is the position of the offending token within its entity, or -1
// if the error is not about a single token.
func (err *Error) Index() int {
	return err.index
}

func errHeaderNotComposite() error {
	return &Error{
		code:    2000,
		message: "Header structure must be a composite",
		index:   0,
	}
}

func errHeaderFieldMissing(name string) error {
	return &Error{
		code:    2001,
		message: fmt.Sprintf("Header structure has no '%s' encoding", name),
		index:   -1,
	}
}

func errUnknownSignal(name string, index int) error {
	return &Error{
		code:    2002,
		message: fmt.Sprintf("Unknown token signal %q", name),
		index:   index,
	}
}

func errUnknownPrimitiveType(name string, index int) error {
	return &Error{
		code:    2003,
		message: fmt.Sprintf("Unknown primitive type %q", name),
		index:   index,
	}
}

func errUnknownPresence(name string, index int) error {
	return &Error{
		code:    2004,
		message: fmt.Sprintf("Unknown presence %q", name),
		index:   index,
	}
}

func errUnmatchedEnd(signal Signal, index int) error {
	return &Error{
		code:    2005,
		message: fmt.Sprintf("%s has no matching begin token", signal),
		index:   index,
	}
}

func errUnclosedBegin(signal Signal, index int) error {
	return &Error{
		code:    2006,
		message: fmt.Sprintf("%s has no matching end token", signal),
		index:   index,
	}
}

func errComponentTokenCount(signal Signal, index int, want, got int32) error {
	return &Error{
		code: 2007,
		message: fmt.Sprintf(
			"%s declares componentTokenCount %d, subtree spans %d tokens",
			signal, got, want,
		),
		index: index,
	}
}

func errEmptyEntity(kind string, ordinal int) error {
	return &Error{
		code:    2008,
		message: fmt.Sprintf("%s #%d has no tokens", kind, ordinal),
		index:   -1,
	}
}

func errEntityNotSingleTree(signal Signal, index int) error {
	return &Error{
		code:    2009,
		message: fmt.Sprintf("Entity continues past its root (%s)", signal),
		index:   index,
	}
}
