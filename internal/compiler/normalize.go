// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics decomposes to NFD, drops combining marks, and recomposes,
// so "José" and "Jose" normalize to the same text.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize is the single canonicalizer applied to prospect fields and
// document content alike. Patterns and scanned text must go through the same
// function or automaton hits silently disappear. Rules: case-fold, strip
// diacritics, collapse punctuation and symbols to whitespace, collapse
// repeated whitespace, trim.
func Normalize(s string) string {
	folded, _, err := transform.String(foldDiacritics, s)
	if err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	lastWasSpace := true
	for _, r := range s {
		r = unicode.ToLower(r)
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastWasSpace = false
			continue
		}
		if !lastWasSpace {
			b.WriteByte(' ')
			lastWasSpace = true
		}
	}

	out := b.String()
	return strings.TrimRight(out, " ")
}

// ScanText derives the text actually fed to the automaton from normalized
// text: standalone single-letter tokens are removed so that a compiled name
// pattern "first last" still hits "first m last" in a single literal pass.
// The returned offsets map every byte of the scan text back to its byte
// position in the normalized input, so spans can be widened to include any
// dropped initial for the disambiguation step.
func ScanText(normalized string) (string, []int) {
	var b strings.Builder
	b.Grow(len(normalized))
	offsets := make([]int, 0, len(normalized))

	pos := 0
	for pos < len(normalized) {
		for pos < len(normalized) && normalized[pos] == ' ' {
			pos++
		}
		start := pos
		for pos < len(normalized) && normalized[pos] != ' ' {
			pos++
		}
		if start == pos {
			break
		}
		tok := normalized[start:pos]
		if isSingleLetterToken(tok) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
			offsets = append(offsets, start-1)
		}
		b.WriteString(tok)
		for i := 0; i < len(tok); i++ {
			offsets = append(offsets, start+i)
		}
	}

	return b.String(), offsets
}

func isSingleLetterToken(tok string) bool {
	r, size := utf8.DecodeRuneInString(tok)
	return size == len(tok) && unicode.IsLetter(r)
}
