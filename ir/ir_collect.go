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

// CollectFields appends the run of BEGIN_FIELD subtrees starting at index
// to fields, and returns the index of the first token after the run.
func CollectFields(tokens []Token, index int, fields []Token) (int, []Token) {
	return collect(Signal_BEGIN_FIELD, tokens, index, fields)
}

// CollectGroups is CollectFields for BEGIN_GROUP subtrees.
func CollectGroups(tokens []Token, index int, groups []Token) (int, []Token) {
	return collect(Signal_BEGIN_GROUP, tokens, index, groups)
}

// CollectVarData is CollectFields for BEGIN_VAR_DATA subtrees.
func CollectVarData(tokens []Token, index int, varData []Token) (int, []Token) {
	return collect(Signal_BEGIN_VAR_DATA, tokens, index, varData)
}

func collect(signal Signal, tokens []Token, index int, out []Token) (int, []Token) {
	ii := index
	for ii < len(tokens) {
		token := &tokens[ii]
		if token.Signal != signal {
			break
		}
		limit := ii + int(token.ComponentTokenCount)
		if limit <= ii+1 || limit > len(tokens) {
			break
		}
		out = append(out, tokens[ii:limit]...)
		ii = limit
	}
	return ii, out
}

// Body returns the tokens strictly between a begin token and its matching
// end token.
func Body(tokens []Token) []Token {
	if len(tokens) < 2 {
		return nil
	}
	return tokens[1 : tokens[0].ComponentTokenCount-1]
}
