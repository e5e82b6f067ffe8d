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
	"fmt"
)

type Error struct {
	code    uint32
	message string
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

func errTruncated(off, want int) error {
	return &Error{
		code:    3000,
		message: fmt.Sprintf("Truncated input: need %d bytes at offset %d", want, off),
	}
}

func errUnaligned(size int) error {
	return &Error{
		code:    3001,
		message: fmt.Sprintf("Input size %d is not a multiple of 8", size),
	}
}

func errTooLarge(size int) error {
	return &Error{
		code:    3002,
		message: fmt.Sprintf("Encoded IR size %d exceeds limit", size),
	}
}

func errSizeMismatch(declared uint32, actual int) error {
	return &Error{
		code:    3003,
		message: fmt.Sprintf("Declared size %d does not match input size %d", declared, actual),
	}
}

func errUnsupportedVersion(version uint16) error {
	return &Error{
		code:    3004,
		message: fmt.Sprintf("Unsupported format version %d", version),
	}
}

func errUnknownFlags(flags uint16) error {
	return &Error{
		code:    3005,
		message: fmt.Sprintf("Unknown header flags 0x%04X", flags),
	}
}

func errTrailingData(off int) error {
	return &Error{
		code:    3006,
		message: fmt.Sprintf("Unexpected data after offset %d", off),
	}
}

func errBadEnum(kind string, value uint8, off int) error {
	return &Error{
		code:    3007,
		message: fmt.Sprintf("Invalid %s %d before offset %d", kind, value, off),
	}
}

func errMissingHeader() error {
	return &Error{
		code:    3008,
		message: "IR has no header structure",
	}
}
