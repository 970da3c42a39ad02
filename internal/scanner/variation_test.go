// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package scanner

import "testing"

func TestAcceptInitialSpan(t *testing.T) {
	cases := []struct {
		name string
		span string
		want bool
	}{
		{"adjacent", "john smith", true},
		{"single letter initial", "john a smith", true},
		{"different initial", "john x smith", true},
		{"multi letter middle token", "john alexander smith", false},
		{"two letter middle token", "john al smith", false},
		{"wrong first token", "jon a smith", false},
		{"wrong last token", "john a smyth", false},
		{"too many tokens", "john a b smith", false},
		{"single token", "smith", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AcceptInitialSpan(tc.span, "john", "smith"); got != tc.want {
				t.Errorf("AcceptInitialSpan(%q) = %v, want %v", tc.span, got, tc.want)
			}
		})
	}
}

func TestAcceptExactSpan(t *testing.T) {
	if !AcceptExactSpan("john smith", "john", "smith") {
		t.Error("adjacent span rejected")
	}
	if AcceptExactSpan("john a smith", "john", "smith") {
		t.Error("span with dropped initial accepted as exact-adjacent")
	}
}
