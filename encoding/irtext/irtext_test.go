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

package irtext_test

import (
	"errors"
	"testing"

	"github.com/swordday/simple-binary-encoding/encoding/irtext"
	"github.com/swordday/simple-binary-encoding/internal/testutil"
	"github.com/swordday/simple-binary-encoding/ir"
)

func TestEncode(t *testing.T) {
	schema := testutil.DecodeIR(t, `
package: orders
id: 3
version: 2
semanticVersion: "1.0"
`+testutil.MessageHeaderYAML+`
types:
  - - {signal: BEGIN_ENUM, name: Side, encodedLength: 1, encoding: {primitiveType: char}}
    - {signal: VALID_VALUE, name: BUY, encoding: {primitiveType: char, constValue: B}}
    - {signal: VALID_VALUE, name: SELL, version: 2, deprecated: 3, encoding: {primitiveType: char, constValue: S}}
    - {signal: END_ENUM, name: Side}
messages:
  - - {signal: BEGIN_MESSAGE, name: Order, id: 1, encodedLength: 12}
    - {signal: BEGIN_FIELD, name: qty, id: 2, version: 1, offset: 0}
    - {signal: ENCODING, name: uint32, version: 1, offset: 0, encodedLength: 4, encoding: {primitiveType: uint32, presence: optional, nullValue: 0, semanticType: Qty}}
    - {signal: END_FIELD, name: qty}
    - {signal: BEGIN_FIELD, name: account, id: 3, offset: 4}
    - {signal: BEGIN_COMPOSITE, name: Account, referencedName: Acct, offset: 4, encodedLength: 8}
    - {signal: ENCODING, name: code, offset: 0, encodedLength: 8, encoding: {primitiveType: char, characterEncoding: US-ASCII}}
    - {signal: END_COMPOSITE, name: Account}
    - {signal: END_FIELD, name: account}
    - {signal: END_MESSAGE, name: Order}
`)

	want := `package = "orders"
namespaces = ["orders"]
id = 3
version = 2
semantic_version = "1.0"
header {
	BEGIN_COMPOSITE "messageHeader" length=8
		ENCODING "blockLength" offset=0 length=2 type=uint16
		ENCODING "templateId" offset=2 length=2 type=uint16
		ENCODING "schemaId" offset=4 length=2 type=uint16
		ENCODING "version" offset=6 length=2 type=uint16
	END_COMPOSITE "messageHeader"
}
type {
	BEGIN_ENUM "Side" length=1 type=char
		VALID_VALUE "BUY" type=char const="B"
		VALID_VALUE "SELL" since=2 deprecated=3 type=char const="S"
	END_ENUM "Side"
}
message {
	BEGIN_MESSAGE "Order" id=1 length=12
		BEGIN_FIELD "qty" id=2 since=1 offset=0
			ENCODING "uint32" since=1 offset=0 length=4 type=uint32 presence=optional null="0" semantic_type="Qty"
		END_FIELD "qty"
		BEGIN_FIELD "account" id=3 offset=4
			BEGIN_COMPOSITE "Account" ref="Acct" offset=4 length=8
				ENCODING "code" offset=0 length=8 array=8 type=char charset="US-ASCII"
			END_COMPOSITE "Account"
		END_FIELD "account"
	END_MESSAGE "Order"
}
`
	testutil.ExpectNoDiff(t, want, irtext.Encode(schema))
}

func TestEncodeQuoting(t *testing.T) {
	schema := &ir.IR{
		PackageName: "a\"b\\c\td\ne\x01",
		ID:          1,
	}
	want := `package = "a\"b\\c\td\ne\x01"
id = 1
version = 0
`
	testutil.ExpectNoDiff(t, want, irtext.Encode(schema))
}

type failWriter struct {
	n int
}

var errWriteFailed = errors.New("write failed")

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errWriteFailed
	}
	w.n -= 1
	return len(p), nil
}

func TestEncodeToWriteError(t *testing.T) {
	schema := testutil.DecodeIR(t, "package: p\n"+testutil.MessageHeaderYAML)
	err := irtext.EncodeTo(schema, &failWriter{n: 5})
	testutil.ExpectTrue(t, errors.Is(err, errWriteFailed))
}
