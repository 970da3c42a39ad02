// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Default CLI behavior
	Defaults struct {
		Format           string `yaml:"format"`
		ConfidenceLevels string `yaml:"confidence_levels"`
		Verbose          bool   `yaml:"verbose"`
		Debug            bool   `yaml:"debug"`
		NoColor          bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Matching engine tunables. Chosen for a target memory budget, not
	// fixed by the engine.
	Matching struct {
		BatchSize          int  `yaml:"batch_size"`
		Workers            int  `yaml:"workers"`
		ChunkSizeMB        int  `yaml:"chunk_size_mb"`
		OverlapChars       int  `yaml:"overlap_chars"`
		ContextChars       int  `yaml:"context_chars"`
		IncludeCompanyOnly bool `yaml:"include_company_only"`
	} `yaml:"matching"`

	// Segment store settings
	Segments struct {
		Dir  string `yaml:"dir"`
		Keep bool   `yaml:"keep"`
	} `yaml:"segments"`
}

// LoadConfig loads configuration from the specified file path. An empty
// path returns the defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	config.Defaults.Format = "text"
	config.Defaults.ConfidenceLevels = "all"

	config.Matching.BatchSize = 5000
	config.Matching.Workers = 4
	config.Matching.ChunkSizeMB = 2
	config.Matching.OverlapChars = 4096
	config.Matching.ContextChars = 50

	config.Segments.Dir = filepath.Join(os.TempDir(), "prospect-scan-segments")

	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return config, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// FindConfigFile looks for a config file in standard locations and returns
// the first one that exists, or "".
func FindConfigFile() string {
	candidates := []string{
		".prospect-scan.yaml",
		".prospect-scan.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".prospect-scan.yaml"),
			filepath.Join(home, ".config", "prospect-scan", "config.yaml"),
		)
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
