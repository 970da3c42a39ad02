// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"strings"
	"testing"

	"prospect-scan/internal/formatters"
	"prospect-scan/internal/match"
)

func TestFormatValidJSON(t *testing.T) {
	f := NewFormatter()
	results := []match.Result{
		{ProspectID: "1", DocumentID: "doc-a", Type: match.TypeNameAndCompany, Confidence: 95, Contexts: []string{"aaron davis at davis corp"}},
		{ProspectID: "2", DocumentID: "doc-b", Type: match.TypeNameOnly, Confidence: 75},
	}

	out, err := f.Format(results, formatters.Options{})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(decoded) != 2 {
		t.Fatalf("want 2 entries, got %d", len(decoded))
	}
	if decoded[0]["prospect_id"] != "1" || decoded[0]["match_type"] != "NameAndCompany" {
		t.Errorf("field names wrong: %v", decoded[0])
	}
	if _, ok := decoded[0]["contexts"]; ok {
		t.Error("contexts must be omitted without verbose")
	}
}

func TestFormatVerboseKeepsContexts(t *testing.T) {
	f := NewFormatter()
	results := []match.Result{
		{ProspectID: "1", DocumentID: "doc-a", Type: match.TypeNameOnly, Confidence: 75, Contexts: []string{"snippet"}},
	}

	out, err := f.Format(results, formatters.Options{Verbose: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(out, "snippet") {
		t.Errorf("verbose output lost contexts:\n%s", out)
	}
}

func TestFormatEmpty(t *testing.T) {
	f := NewFormatter()
	out, err := f.Format(nil, formatters.Options{})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("empty result set must render as an empty array, got %q", out)
	}
}
