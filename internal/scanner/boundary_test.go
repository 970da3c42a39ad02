// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package scanner

import (
	"strings"
	"testing"
)

func TestValidBoundaries(t *testing.T) {
	cases := []struct {
		name string
		text string
		span string
		want bool
	}{
		{"whole text", "acme", "acme", true},
		{"space both sides", "the acme story", "acme", true},
		{"start of text", "acme rises", "acme", true},
		{"end of text", "buy acme", "acme", true},
		{"inside longer word", "acmecorp", "acme", false},
		{"letter before", "xacme", "acme", false},
		{"letter after", "acmex", "acme", false},
		{"digit after letter edge", "acme123", "acme", true},
		{"digit before letter edge", "123acme", "acme", true},
		{"digit next to digit edge", "area 512", "area 51", false},
		{"punctuation edges", "(acme)", "acme", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start := strings.Index(tc.text, tc.span)
			if start < 0 {
				t.Fatalf("span %q not in %q", tc.span, tc.text)
			}
			got := ValidBoundaries(tc.text, start, start+len(tc.span))
			if got != tc.want {
				t.Errorf("ValidBoundaries(%q, %q) = %v, want %v", tc.text, tc.span, got, tc.want)
			}
		})
	}
}

func TestValidBoundariesDegenerateSpans(t *testing.T) {
	if ValidBoundaries("abc", 2, 2) {
		t.Error("empty span accepted")
	}
	if ValidBoundaries("abc", -1, 2) {
		t.Error("negative start accepted")
	}
	if ValidBoundaries("abc", 0, 4) {
		t.Error("end past text accepted")
	}
}
