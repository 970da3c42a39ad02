// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package automaton

import (
	"testing"

	"prospect-scan/internal/compiler"
	"prospect-scan/internal/prospect"
)

func buildIndex(t *testing.T, prospects []prospect.Prospect) *Index {
	t.Helper()
	ps, err := compiler.Compile(prospects)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	ix, err := Build(ps)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return ix
}

func TestBuildRejectsEmptySet(t *testing.T) {
	if _, err := Build(nil); err == nil {
		t.Error("nil pattern set must error")
	}

	ps, err := compiler.Compile([]prospect.Prospect{{ID: "1"}})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, err := Build(ps); err == nil {
		t.Error("empty pattern set must error")
	}
}

func TestScanFindsEveryOccurrence(t *testing.T) {
	ix := buildIndex(t, []prospect.Prospect{
		{ID: "1", Name: "Aaron Davis"},
		{ID: "2", Company: "Davis Corp"},
	})

	occ := ix.Scan("aaron davis joined davis last year and aaron davis left")

	byPattern := map[string]int{}
	for _, o := range occ {
		byPattern[o.Pattern]++
		if got := "aaron davis joined davis last year and aaron davis left"[o.Start:o.End]; got != o.Pattern {
			t.Errorf("offsets do not cover the pattern: [%d:%d] = %q, want %q", o.Start, o.End, got, o.Pattern)
		}
	}
	if byPattern["aaron davis"] != 2 {
		t.Errorf("want 2 occurrences of name pattern, got %d", byPattern["aaron davis"])
	}
	if byPattern["davis"] != 3 {
		t.Errorf("want 3 occurrences of company root, got %d", byPattern["davis"])
	}
}

func TestScanOverlappingPatterns(t *testing.T) {
	// "davis" sits inside "aaron davis"; both must surface.
	ix := buildIndex(t, []prospect.Prospect{
		{ID: "1", Name: "Aaron Davis"},
		{ID: "2", Company: "Davis Corp"},
	})

	occ := ix.Scan("aaron davis")
	seen := map[string]bool{}
	for _, o := range occ {
		seen[o.Pattern] = true
	}
	if !seen["aaron davis"] || !seen["davis"] {
		t.Errorf("overlapping occurrences missing: %+v", occ)
	}
}

func TestScanNoMatches(t *testing.T) {
	ix := buildIndex(t, []prospect.Prospect{{ID: "1", Name: "Aaron Davis"}})
	if occ := ix.Scan("nothing relevant here"); occ != nil {
		t.Errorf("want nil, got %+v", occ)
	}
}

func TestVariationsRoundTrip(t *testing.T) {
	ix := buildIndex(t, []prospect.Prospect{
		{ID: "1", Name: "Jane Davis"},
		{ID: "2", Name: "Jane Davis"},
	})

	if ix.PatternCount() != 1 {
		t.Fatalf("identical names must share one pattern, got %d", ix.PatternCount())
	}

	occ := ix.Scan("jane davis")
	if len(occ) == 0 {
		t.Fatal("no occurrences")
	}

	prospects := map[string]bool{}
	for _, v := range ix.Variations(occ[0].PatternID) {
		prospects[v.ProspectID] = true
	}
	if !prospects["1"] || !prospects["2"] {
		t.Errorf("variations must fan out to both prospects, got %v", prospects)
	}
}
