// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package prospect defines the identity records the matching engine searches
// for and the ingestion boundary that produces them. Alternate field-name
// spellings from upstream exports are resolved here; the core only ever sees
// the strict Prospect record.
package prospect

import "strings"

// Prospect is one (person name, affiliated company) identity to search for.
// Records are immutable once loaded and owned by the batch processing them.
type Prospect struct {
	ID      string
	Name    string
	Company string
}

// Valid reports whether the record carries the required fields. Records
// failing this check are skipped by loaders, never surfaced as errors.
func (p Prospect) Valid() bool {
	return strings.TrimSpace(p.ID) != "" &&
		(strings.TrimSpace(p.Name) != "" || strings.TrimSpace(p.Company) != "")
}
