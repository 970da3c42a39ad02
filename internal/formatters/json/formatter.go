// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"prospect-scan/internal/formatters"
	"prospect-scan/internal/match"
)

// Formatter implements JSON output for programmatic consumption.
type Formatter struct{}

// NewFormatter creates a new JSON formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

func (f *Formatter) Format(results []match.Result, options formatters.Options) (string, error) {
	filtered := formatters.FilterByConfidence(results, options)
	if filtered == nil {
		filtered = []match.Result{}
	}
	if !options.Verbose {
		stripped := make([]match.Result, len(filtered))
		for i, r := range filtered {
			r.Contexts = nil
			stripped[i] = r
		}
		filtered = stripped
	}

	data, err := json.MarshalIndent(filtered, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal results: %w", err)
	}
	return string(data), nil
}
