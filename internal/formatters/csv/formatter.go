// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"prospect-scan/internal/formatters"
	"prospect-scan/internal/match"
)

// Formatter implements CSV output for spreadsheet consumption.
type Formatter struct{}

// NewFormatter creates a new CSV formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(results []match.Result, options formatters.Options) (string, error) {
	filtered := formatters.FilterByConfidence(results, options)

	var b strings.Builder
	w := csv.NewWriter(&b)

	header := []string{"prospect_id", "document_id", "match_type", "confidence"}
	if options.Verbose {
		header = append(header, "context")
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range filtered {
		row := []string{r.ProspectID, r.DocumentID, string(r.Type), strconv.Itoa(r.Confidence)}
		if options.Verbose {
			row = append(row, strings.Join(r.Contexts, " | "))
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
