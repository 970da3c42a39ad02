// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package compiler

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Aaron Davis", "aaron davis"},
		{"strips diacritics", "José Muñoz", "jose munoz"},
		{"collapses punctuation", "Smith, John A.", "smith john a"},
		{"collapses repeated whitespace", "a  b\t\tc\n\nd", "a b c d"},
		{"trims edges", "  Davis Corp.  ", "davis corp"},
		{"keeps digits", "Area 51 Labs", "area 51 labs"},
		{"mixed alnum token intact", "abc123def", "abc123def"},
		{"empty", "", ""},
		{"only punctuation", "-- !! --", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.input); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestScanTextDropsSingleLetterTokens(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"drops middle initial", "john a smith", "john smith"},
		{"drops several initials", "j r r tolkien", "tolkien"},
		{"keeps single digits", "area 5 zone", "area 5 zone"},
		{"keeps two-letter tokens", "al smith", "al smith"},
		{"no change", "aaron davis", "aaron davis"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := ScanText(tc.input)
			if got != tc.want {
				t.Errorf("ScanText(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestScanTextOffsetsMapBackToNormalized(t *testing.T) {
	normalized := "john a smith signed"
	scanText, offsets := ScanText(normalized)

	if scanText != "john smith signed" {
		t.Fatalf("unexpected scan text %q", scanText)
	}
	if len(offsets) != len(scanText) {
		t.Fatalf("offsets length %d != scan text length %d", len(offsets), len(scanText))
	}

	// The "john smith" hit spans [0,10) in scan text; widened through the
	// offsets it must cover the dropped initial in the normalized text.
	start, end := offsets[0], offsets[10-1]+1
	if span := normalized[start:end]; span != "john a smith" {
		t.Errorf("widened span = %q, want %q", span, "john a smith")
	}

	// Every scan-text byte must map to the identical normalized byte.
	for i := 0; i < len(scanText); i++ {
		if scanText[i] != ' ' && normalized[offsets[i]] != scanText[i] {
			t.Errorf("offset %d maps %q to %q", i, scanText[i], normalized[offsets[i]])
		}
	}
}
