// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package prospect

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Header spellings seen in upstream exports, resolved to the strict record
// fields at this boundary so the core never branches on alternate names.
var (
	idHeaders      = []string{"id", "prospect_id", "prospectid", "record_id"}
	nameHeaders    = []string{"name", "full_name", "fullname", "person_name", "contact_name"}
	companyHeaders = []string{"company", "company_name", "companyname", "organization", "employer"}
)

// ReadCSV loads prospects from a CSV stream with a header row. Rows missing
// required fields are skipped; a missing id column falls back to the row
// number. Only an unreadable header is an error.
func ReadCSV(r io.Reader) ([]Prospect, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	idCol := findColumn(header, idHeaders)
	nameCol := findColumn(header, nameHeaders)
	companyCol := findColumn(header, companyHeaders)
	if nameCol < 0 && companyCol < 0 {
		return nil, fmt.Errorf("CSV header has no recognizable name or company column: %v", header)
	}

	var prospects []Prospect
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			// Malformed row: skip, keep reading.
			continue
		}

		p := Prospect{
			ID:      field(record, idCol),
			Name:    field(record, nameCol),
			Company: field(record, companyCol),
		}
		if p.ID == "" {
			p.ID = strconv.Itoa(row)
		}
		if !p.Valid() {
			continue
		}
		prospects = append(prospects, p)
	}

	return prospects, nil
}

func findColumn(header []string, candidates []string) int {
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))
		for _, c := range candidates {
			if key == c {
				return i
			}
		}
	}
	return -1
}

func field(record []string, col int) string {
	if col < 0 || col >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[col])
}
