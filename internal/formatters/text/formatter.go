// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"prospect-scan/internal/formatters"
	"prospect-scan/internal/match"
)

// Formatter implements human-readable text output.
type Formatter struct {
	high   *color.Color
	medium *color.Color
	low    *color.Color
	header *color.Color
}

// NewFormatter creates a new text formatter.
func NewFormatter() *Formatter {
	return &Formatter{
		high:   color.New(color.FgGreen),
		medium: color.New(color.FgYellow),
		low:    color.New(color.FgRed),
		header: color.New(color.FgWhite, color.Bold),
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(results []match.Result, options formatters.Options) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	filtered := formatters.FilterByConfidence(results, options)
	if len(filtered) == 0 {
		return "No matches found.", nil
	}

	var b strings.Builder
	b.WriteString(f.header.Sprintf("%-14s %-32s %-16s %s", "PROSPECT", "DOCUMENT", "TYPE", "CONFIDENCE"))
	b.WriteByte('\n')

	for _, r := range filtered {
		line := fmt.Sprintf("%-14s %-32s %-16s %d", r.ProspectID, truncate(r.DocumentID, 32), r.Type, r.Confidence)
		b.WriteString(f.tierColor(r.Confidence).Sprint(line))
		b.WriteByte('\n')
		if options.Verbose {
			for _, ctx := range r.Contexts {
				b.WriteString("    ..." + ctx + "...\n")
			}
		}
	}

	b.WriteString(fmt.Sprintf("\n%d match(es)", len(filtered)))
	return b.String(), nil
}

func (f *Formatter) tierColor(confidence int) *color.Color {
	switch {
	case confidence >= 90:
		return f.high
	case confidence >= 60:
		return f.medium
	default:
		return f.low
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}
