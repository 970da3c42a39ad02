// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// The automaton matches exact literal text only; tolerating an optional
// middle initial is handled here with a narrower span check instead of
// enumerating every possible initial as its own pattern, which would blow
// up the pattern set.

// AcceptInitialSpan validates a requires-initial-check name variation
// against the normalized span its coarse hit maps back to. Accepted forms:
// "first last" and "first x last" where x is a single letter (a trailing
// period was already collapsed by normalization). Any longer middle token
// rejects the span.
func AcceptInitialSpan(span, first, last string) bool {
	tokens := strings.Fields(span)
	switch len(tokens) {
	case 2:
		return tokens[0] == first && tokens[1] == last
	case 3:
		return tokens[0] == first && isSingleLetter(tokens[1]) && tokens[2] == last
	default:
		return false
	}
}

// AcceptExactSpan validates the exact-adjacent name variation: first and
// last must abut in the normalized text, with nothing dropped in between.
func AcceptExactSpan(span, first, last string) bool {
	return span == first+" "+last
}

func isSingleLetter(tok string) bool {
	r, size := utf8.DecodeRuneInString(tok)
	return size == len(tok) && unicode.IsLetter(r)
}
