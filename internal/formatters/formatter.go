// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"strings"

	"prospect-scan/internal/match"
)

// Options defines configuration options for formatters.
type Options struct {
	ConfidenceLevel map[string]bool // which confidence tiers to display
	Verbose         bool            // whether to display context snippets
	NoColor         bool            // whether to disable colored output
}

// Formatter renders a final match set for output.
type Formatter interface {
	Format(results []match.Result, options Options) (string, error)
	Name() string
	FileExtension() string
}

// Registry holds all registered formatters.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[string]Formatter)}
}

// Register adds a formatter to the registry.
func (r *Registry) Register(f Formatter) {
	r.formatters[f.Name()] = f
}

// Get retrieves a formatter by name.
func (r *Registry) Get(name string) (Formatter, bool) {
	f, exists := r.formatters[name]
	return f, exists
}

// ParseConfidenceLevels converts a comma-separated confidence level string
// into a tier map. "all" or an empty string enables every tier.
func ParseConfidenceLevels(levels string) map[string]bool {
	result := map[string]bool{
		"high":   false,
		"medium": false,
		"low":    false,
	}

	if levels == "all" || levels == "" {
		for k := range result {
			result[k] = true
		}
		return result
	}

	for _, level := range strings.Split(levels, ",") {
		switch strings.ToLower(strings.TrimSpace(level)) {
		case "high", "medium", "low":
			result[strings.ToLower(strings.TrimSpace(level))] = true
		}
	}

	return result
}

// FilterByConfidence keeps results whose confidence tier is enabled in the
// options. High is 90 and up, medium 60-89, low below 60.
func FilterByConfidence(results []match.Result, options Options) []match.Result {
	if options.ConfidenceLevel == nil {
		return results
	}
	var filtered []match.Result
	for _, r := range results {
		if (r.Confidence >= 90 && options.ConfidenceLevel["high"]) ||
			(r.Confidence >= 60 && r.Confidence < 90 && options.ConfidenceLevel["medium"]) ||
			(r.Confidence < 60 && options.ConfidenceLevel["low"]) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
