// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package automaton compiles a batch's pattern set into an Aho-Corasick
// structure. One left-to-right pass over a document finds every pattern
// occurrence regardless of how many patterns are registered, which is what
// keeps the whole pipeline linear instead of O(prospects x documents).
package automaton

import (
	"fmt"

	"github.com/coregx/ahocorasick"

	"prospect-scan/internal/compiler"
)

// Index owns the compiled automaton plus the pattern-to-variations mapping.
// Built once per batch and immutable afterwards: it is safe for any number
// of concurrent scans, and a changed pattern set requires a fresh Index.
type Index struct {
	ac       *ahocorasick.Automaton
	patterns *compiler.PatternSet
}

// Occurrence is one raw pattern hit inside a scanned text. Offsets are byte
// positions in the text passed to Scan. Ephemeral: produced and consumed
// within a single scan step.
type Occurrence struct {
	PatternID int
	Pattern   string
	Start     int
	End       int
}

// Build compiles the pattern set. Construction cost is proportional to the
// total pattern character count.
func Build(ps *compiler.PatternSet) (*Index, error) {
	if ps == nil || ps.Len() == 0 {
		return nil, fmt.Errorf("pattern set is empty")
	}

	ac, err := ahocorasick.NewBuilder().
		AddStrings(ps.Patterns()).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build automaton: %w", err)
	}

	return &Index{ac: ac, patterns: ps}, nil
}

// Scan reports every pattern occurrence in text, including overlapping
// occurrences of different patterns, in one pass. Cost is proportional to
// the input length plus the number of hits.
func (ix *Index) Scan(text string) []Occurrence {
	matches := ix.ac.FindAllOverlapping([]byte(text))
	if len(matches) == 0 {
		return nil
	}

	occ := make([]Occurrence, 0, len(matches))
	patterns := ix.patterns.Patterns()
	for _, m := range matches {
		if m.PatternID < 0 || m.PatternID >= len(patterns) {
			continue
		}
		occ = append(occ, Occurrence{
			PatternID: m.PatternID,
			Pattern:   patterns[m.PatternID],
			Start:     m.Start,
			End:       m.End,
		})
	}
	return occ
}

// Variations returns the variations registered against a pattern ID.
func (ix *Index) Variations(patternID int) []compiler.Variation {
	return ix.patterns.Variations(patternID)
}

// PatternCount reports how many distinct patterns the index holds.
func (ix *Index) PatternCount() int {
	return ix.patterns.Len()
}
