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

// Validate checks the structural invariants the generator relies on: every
// begin token is closed by the matching end token, and every begin token's
// componentTokenCount spans exactly its subtree, so that skipping by it lands
// on the token following the matching end.
func Validate(schema *IR) error {
	if schema.Header == nil {
		return errHeaderNotComposite()
	}
	if err := ValidateTokens(schema.Header.Tokens); err != nil {
		return err
	}
	for ii, tokens := range schema.Types {
		if len(tokens) == 0 {
			return errEmptyEntity("Type", ii)
		}
		if err := ValidateTokens(tokens); err != nil {
			return err
		}
	}
	for ii, tokens := range schema.Messages {
		if len(tokens) == 0 {
			return errEmptyEntity("Message", ii)
		}
		if err := ValidateTokens(tokens); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTokens checks a single entity's token stream.
func ValidateTokens(tokens []Token) error {
	var stack []int
	for ii := range tokens {
		token := &tokens[ii]
		switch {
		case token.Signal.IsBegin():
			if len(stack) == 0 && ii != 0 {
				return errEntityNotSingleTree(token.Signal, ii)
			}
			stack = append(stack, ii)
		case token.Signal.IsEnd():
			if len(stack) == 0 {
				return errUnmatchedEnd(token.Signal, ii)
			}
			beginIdx := stack[len(stack)-1]
			begin := &tokens[beginIdx]
			if begin.Signal.End() != token.Signal {
				return errUnmatchedEnd(token.Signal, ii)
			}
			stack = stack[:len(stack)-1]
			span := int32(ii - beginIdx + 1)
			if begin.ComponentTokenCount != span {
				return errComponentTokenCount(begin.Signal, beginIdx, span, begin.ComponentTokenCount)
			}
		default:
			if len(stack) == 0 && ii != 0 {
				return errEntityNotSingleTree(token.Signal, ii)
			}
			if token.ComponentTokenCount != 1 {
				return errComponentTokenCount(token.Signal, ii, 1, token.ComponentTokenCount)
			}
		}
	}
	if len(stack) > 0 {
		beginIdx := stack[len(stack)-1]
		return errUnclosedBegin(tokens[beginIdx].Signal, beginIdx)
	}
	return nil
}
