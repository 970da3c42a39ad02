// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package compiler turns prospect records into the deduplicated pattern set
// fed to the automaton, plus the variation metadata needed to map a raw
// pattern hit back to the prospects that can satisfy it.
package compiler

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"prospect-scan/internal/prospect"
)

// Kind distinguishes what a pattern represents.
type Kind string

const (
	KindName    Kind = "name"
	KindCompany Kind = "company"
)

// Minimum sizes below which a candidate is considered too ambiguous to
// search for. Documented precision/recall trade-off: short company roots
// produce far more false hits than they recover.
const (
	minNameTokenRunes   = 2
	minCompanyRootRunes = 3
)

// legalSuffixes is the vocabulary of legal-entity suffixes stripped from
// company names before deriving the searchable root. Compared as whole
// tokens after normalization, so "Inc." and "inc" are the same entry.
var legalSuffixes = map[string]bool{
	"inc": true, "incorporated": true,
	"corp": true, "corporation": true,
	"llc": true, "llp": true, "lp": true,
	"ltd": true, "limited": true,
	"plc": true, "co": true, "company": true,
	"gmbh": true, "ag": true, "sa": true, "nv": true, "bv": true,
	"pty": true, "pte": true,
	"holdings": true, "holding": true,
	"group": true, "enterprises": true, "industries": true,
	"international": true, "intl": true,
}

// Variation is one way a prospect can satisfy a pattern. Multiple prospects
// may register variations against the same pattern text.
type Variation struct {
	ProspectID string
	Kind       Kind
	FirstToken string
	LastToken  string

	// RequiresInitialCheck marks the name variation that tolerates an
	// optional single-letter middle initial in the source text. The coarse
	// automaton pattern carries no initial; acceptance needs the narrower
	// span check in the scanner.
	RequiresInitialCheck bool
}

// PatternSet is the deduplicated set of normalized pattern strings and the
// variations registered against each. Pattern IDs are positional and stable
// for the lifetime of the set.
type PatternSet struct {
	patterns   []string
	index      map[string]int
	variations [][]Variation
}

// Compile derives patterns for one batch of prospects. Malformed prospects
// contribute nothing and are silently skipped; only a nil prospect list is
// an error.
func Compile(prospects []prospect.Prospect) (*PatternSet, error) {
	if prospects == nil {
		return nil, fmt.Errorf("prospect list is nil")
	}

	ps := &PatternSet{index: make(map[string]int)}
	for _, p := range prospects {
		if !p.Valid() {
			continue
		}
		compileName(ps, p)
		compileCompany(ps, p)
	}
	return ps, nil
}

// Patterns returns the pattern strings ordered by pattern ID.
func (ps *PatternSet) Patterns() []string {
	return ps.patterns
}

// Variations returns the variations registered against a pattern ID.
func (ps *PatternSet) Variations(patternID int) []Variation {
	if patternID < 0 || patternID >= len(ps.variations) {
		return nil
	}
	return ps.variations[patternID]
}

// Len reports the number of distinct patterns.
func (ps *PatternSet) Len() int {
	return len(ps.patterns)
}

func (ps *PatternSet) add(pattern string, v Variation) {
	idx, ok := ps.index[pattern]
	if !ok {
		idx = len(ps.patterns)
		ps.patterns = append(ps.patterns, pattern)
		ps.variations = append(ps.variations, nil)
		ps.index[pattern] = idx
	}
	ps.variations[idx] = append(ps.variations[idx], v)
}

// compileName emits the "first last" pattern for a prospect name with at
// least two tokens of two or more characters. Middle tokens are ignored.
// Two variations share the pattern: exact-adjacent, and one tolerating a
// single-letter middle initial.
func compileName(ps *PatternSet, p prospect.Prospect) {
	tokens := validNameTokens(Normalize(p.Name))
	if len(tokens) < 2 {
		return
	}
	first, last := tokens[0], tokens[len(tokens)-1]
	pattern := first + " " + last

	ps.add(pattern, Variation{
		ProspectID: p.ID,
		Kind:       KindName,
		FirstToken: first,
		LastToken:  last,
	})
	ps.add(pattern, Variation{
		ProspectID:           p.ID,
		Kind:                 KindName,
		FirstToken:           first,
		LastToken:            last,
		RequiresInitialCheck: true,
	})
}

// compileCompany strips legal-entity suffixes and emits the remaining root
// as a single pattern when it is long enough to be worth searching for.
func compileCompany(ps *PatternSet, p prospect.Prospect) {
	root := CompanyRoot(p.Company)
	if root == "" {
		return
	}

	tokens := strings.Fields(root)
	ps.add(root, Variation{
		ProspectID: p.ID,
		Kind:       KindCompany,
		FirstToken: tokens[0],
		LastToken:  tokens[len(tokens)-1],
	})
}

// CompanyRoot returns the normalized, suffix-stripped searchable root of a
// company name, or "" when the root is too short to be unambiguous.
// Single-letter tokens are dropped to stay aligned with ScanText.
func CompanyRoot(company string) string {
	var kept []string
	for _, tok := range strings.Fields(Normalize(company)) {
		if legalSuffixes[tok] || isSingleLetterToken(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	root := strings.Join(kept, " ")
	if utf8.RuneCountInString(root) < minCompanyRootRunes {
		return ""
	}
	return root
}

// validNameTokens filters normalized name tokens down to those long enough
// to anchor a pattern. Initials and other one-character tokens never become
// a pattern's first or last token.
func validNameTokens(normalized string) []string {
	var tokens []string
	for _, tok := range strings.Fields(normalized) {
		if utf8.RuneCountInString(tok) < minNameTokenRunes {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
