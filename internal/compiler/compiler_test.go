// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"testing"

	"prospect-scan/internal/prospect"
)

func patternIndex(ps *PatternSet) map[string][]Variation {
	out := make(map[string][]Variation)
	for i, p := range ps.Patterns() {
		out[p] = ps.Variations(i)
	}
	return out
}

func TestCompileNilProspectList(t *testing.T) {
	if _, err := Compile(nil); err == nil {
		t.Fatal("expected error for nil prospect list")
	}
}

func TestCompileNamePatterns(t *testing.T) {
	cases := []struct {
		name        string
		prospect    prospect.Prospect
		wantPattern string // "" means no name pattern
	}{
		{"two tokens", prospect.Prospect{ID: "1", Name: "Aaron Davis"}, "aaron davis"},
		{"middle token ignored", prospect.Prospect{ID: "1", Name: "Aaron Michael Davis"}, "aaron davis"},
		{"middle initial ignored", prospect.Prospect{ID: "1", Name: "John A. Smith"}, "john smith"},
		{"single token", prospect.Prospect{ID: "1", Name: "Prince"}, ""},
		{"one valid token", prospect.Prospect{ID: "1", Name: "J Smith"}, ""},
		{"both tokens too short", prospect.Prospect{ID: "1", Name: "J S"}, ""},
		{"diacritics folded", prospect.Prospect{ID: "1", Name: "José Muñoz"}, "jose munoz"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ps, err := Compile([]prospect.Prospect{tc.prospect})
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			byPattern := patternIndex(ps)
			vars, ok := byPattern[tc.wantPattern]
			if tc.wantPattern == "" {
				for p, vs := range byPattern {
					for _, v := range vs {
						if v.Kind == KindName {
							t.Errorf("unexpected name pattern %q", p)
						}
					}
				}
				return
			}
			if !ok {
				t.Fatalf("pattern %q not compiled, got %v", tc.wantPattern, ps.Patterns())
			}
			var exact, initial bool
			for _, v := range vars {
				if v.Kind != KindName {
					continue
				}
				if v.RequiresInitialCheck {
					initial = true
				} else {
					exact = true
				}
			}
			if !exact || !initial {
				t.Errorf("want exact and initial-check variations, got %+v", vars)
			}
		})
	}
}

func TestCompileCompanyPatterns(t *testing.T) {
	cases := []struct {
		name     string
		company  string
		wantRoot string // "" means no company pattern
	}{
		{"suffix stripped", "Davis Corp", "davis"},
		{"suffix with period", "Davis Corp.", "davis"},
		{"multiple suffixes", "Acme Widgets Holdings LLC", "acme widgets"},
		{"root too short", "AB Inc", ""},
		{"two char root", "Io Ltd", ""},
		{"three char root kept", "IBM", "ibm"},
		{"pure suffixes", "Company Inc", ""},
		{"multi word root", "General Dynamics Corporation", "general dynamics"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ps, err := Compile([]prospect.Prospect{{ID: "1", Company: tc.company}})
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			byPattern := patternIndex(ps)
			if tc.wantRoot == "" {
				if ps.Len() != 0 {
					t.Errorf("expected no patterns, got %v", ps.Patterns())
				}
				return
			}
			vars, ok := byPattern[tc.wantRoot]
			if !ok {
				t.Fatalf("root %q not compiled, got %v", tc.wantRoot, ps.Patterns())
			}
			if len(vars) != 1 || vars[0].Kind != KindCompany {
				t.Errorf("want one company variation, got %+v", vars)
			}
		})
	}
}

func TestCompileSharedPattern(t *testing.T) {
	// Two distinct prospects with the same name share one pattern entry
	// carrying variations for both ids.
	ps, err := Compile([]prospect.Prospect{
		{ID: "1", Name: "Jane Davis"},
		{ID: "2", Name: "Jane Davis"},
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if ps.Len() != 1 {
		t.Fatalf("want 1 shared pattern, got %d: %v", ps.Len(), ps.Patterns())
	}

	ids := make(map[string]bool)
	for _, v := range ps.Variations(0) {
		ids[v.ProspectID] = true
	}
	if !ids["1"] || !ids["2"] {
		t.Errorf("shared pattern missing a prospect id: %v", ids)
	}
}

func TestCompileSkipsMalformedProspects(t *testing.T) {
	ps, err := Compile([]prospect.Prospect{
		{ID: "", Name: "Aaron Davis"},  // no id
		{ID: "2"},                      // no name or company
		{ID: "3", Name: "Clean Entry"}, // fine
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	byPattern := patternIndex(ps)
	if _, ok := byPattern["clean entry"]; !ok {
		t.Errorf("valid prospect not compiled: %v", ps.Patterns())
	}
	for _, vars := range byPattern {
		for _, v := range vars {
			if v.ProspectID != "3" {
				t.Errorf("malformed prospect leaked into patterns: %+v", v)
			}
		}
	}
}

func TestCompanyRootConsistentWithScanText(t *testing.T) {
	// Single-letter tokens are dropped on both sides so compiled roots
	// always line up with scanned text.
	root := CompanyRoot("Toys R Us Inc")
	if root != "toys us" {
		t.Errorf("CompanyRoot = %q, want %q", root, "toys us")
	}
}
