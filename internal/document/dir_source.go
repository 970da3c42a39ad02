// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DirSource walks a directory tree and serves every regular file as a
// document, keyed by its path relative to the root. PDF files are routed
// through the text extractor; everything else is streamed as-is.
type DirSource struct {
	root string
	ids  []string
}

// NewDirSource enumerates the tree once up front so IDs stay stable for the
// whole run. Hidden files and directories are skipped.
func NewDirSource(root string) (*DirSource, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat document root: %w", err)
	}
	if !info.IsDir() {
		return &DirSource{root: filepath.Dir(root), ids: []string{filepath.Base(root)}}, nil
	}

	var ids []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entry: skip it, keep walking.
			return nil
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		ids = append(ids, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk document root: %w", err)
	}

	return &DirSource{root: root, ids: ids}, nil
}

func (ds *DirSource) IDs() ([]string, error) {
	return ds.ids, nil
}

func (ds *DirSource) Open(id string) (io.ReadCloser, error) {
	path := filepath.Join(ds.root, id)
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return openPDF(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document %s: %w", id, err)
	}
	return f, nil
}
