// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package scanner

import (
	"unicode"
	"unicode/utf8"
)

// ValidBoundaries reports whether the matched span [start,end) of text sits
// on token boundaries at both edges. A boundary exists when the adjacent
// character is absent, is punctuation/whitespace/symbol, or is a
// letter-digit transition at the exact matched edge. Matches embedded
// inside longer alphanumeric tokens are rejected.
func ValidBoundaries(text string, start, end int) bool {
	if start < 0 || end > len(text) || start >= end {
		return false
	}

	if start > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:start])
		first, _ := utf8.DecodeRuneInString(text[start:])
		if !isBoundary(prev, first) {
			return false
		}
	}

	if end < len(text) {
		next, _ := utf8.DecodeRuneInString(text[end:])
		last, _ := utf8.DecodeLastRuneInString(text[:end])
		if !isBoundary(next, last) {
			return false
		}
	}

	return true
}

// isBoundary decides whether adjacent may sit next to the match edge rune.
// The letter/digit transition rule applies only at the exact edge, not as a
// general alphanumeric boundary.
func isBoundary(adjacent, edge rune) bool {
	if !unicode.IsLetter(adjacent) && !unicode.IsDigit(adjacent) {
		return true
	}
	if unicode.IsLetter(adjacent) && unicode.IsDigit(edge) {
		return true
	}
	if unicode.IsDigit(adjacent) && unicode.IsLetter(edge) {
		return true
	}
	return false
}
