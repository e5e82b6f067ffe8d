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

package testutil

import (
	"io/fs"
	"testing"

	"github.com/swordday/simple-binary-encoding/ir"
)

// LoadIR decodes an IR document from testdata, failing the test on error.
func LoadIR(t *testing.T, testdata fs.FS, path string) *ir.IR {
	t.Helper()
	data, err := fs.ReadFile(testdata, path)
	if err != nil {
		t.Fatal(err)
	}
	return DecodeIR(t, string(data))
}

func DecodeIR(t *testing.T, doc string) *ir.IR {
	t.Helper()
	schema, err := ir.Decode([]byte(doc))
	if err != nil {
		t.Fatalf("ir.Decode: %v", err)
	}
	return schema
}

// MessageHeaderYAML is the standard eight byte message header, for tests
// that only need a valid IR document around a few entities.
const MessageHeaderYAML = `
header:
  - {signal: BEGIN_COMPOSITE, name: messageHeader, encodedLength: 8}
  - {signal: ENCODING, name: blockLength, offset: 0, encodedLength: 2, encoding: {primitiveType: uint16}}
  - {signal: ENCODING, name: templateId, offset: 2, encodedLength: 2, encoding: {primitiveType: uint16}}
  - {signal: ENCODING, name: schemaId, offset: 4, encodedLength: 2, encoding: {primitiveType: uint16}}
  - {signal: ENCODING, name: version, offset: 6, encodedLength: 2, encoding: {primitiveType: uint16}}
  - {signal: END_COMPOSITE, name: messageHeader}
`
