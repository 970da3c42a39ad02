// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package segments

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"prospect-scan/internal/match"
)

const (
	segmentExt = ".jsonl"
	tmpExt     = ".tmp"
)

// FileStore keeps one JSON-lines file per batch under a run directory.
// Segments are written to a temporary name and renamed into place on
// success, so an interrupted batch never contributes a partial segment to
// the merge.
type FileStore struct {
	dir string
}

// NewFileStore creates the run directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("segment directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create segment directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the run directory.
func (fs *FileStore) Dir() string {
	return fs.dir
}

// Write persists one batch's results as a new segment and returns its id.
func (fs *FileStore) Write(batchIndex int, results []match.Result) (string, error) {
	id := fmt.Sprintf("segment-%06d%s", batchIndex, segmentExt)
	tmpPath := filepath.Join(fs.dir, id+tmpExt)

	f, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("failed to create segment file: %w", err)
	}

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			f.Close()
			os.Remove(tmpPath)
			return "", fmt.Errorf("failed to encode segment result: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to flush segment: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to close segment: %w", err)
	}

	if err := os.Rename(tmpPath, filepath.Join(fs.dir, id)); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to finalize segment: %w", err)
	}
	return id, nil
}

// List returns completed segment ids in batch order. Leftover temporary
// files from interrupted runs are never listed.
func (fs *FileStore) List() ([]string, error) {
	entries, err := os.ReadDir(fs.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list segments: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), segmentExt) {
			continue
		}
		ids = append(ids, e.Name())
	}
	sort.Strings(ids)
	return ids, nil
}

// Read opens a segment for streaming.
func (fs *FileStore) Read(segmentID string) (Reader, error) {
	f, err := os.Open(filepath.Join(fs.dir, segmentID))
	if err != nil {
		return nil, fmt.Errorf("failed to open segment %s: %w", segmentID, err)
	}
	return &fileReader{f: f, scanner: bufio.NewScanner(f)}, nil
}

// Delete removes a segment.
func (fs *FileStore) Delete(segmentID string) error {
	if err := os.Remove(filepath.Join(fs.dir, segmentID)); err != nil {
		return fmt.Errorf("failed to delete segment %s: %w", segmentID, err)
	}
	return nil
}

type fileReader struct {
	f       *os.File
	scanner *bufio.Scanner
}

func (r *fileReader) Next() (match.Result, error) {
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		var result match.Result
		if err := json.Unmarshal([]byte(line), &result); err != nil {
			return match.Result{}, fmt.Errorf("corrupt segment line: %w", err)
		}
		return result, nil
	}
	if err := r.scanner.Err(); err != nil {
		return match.Result{}, err
	}
	return match.Result{}, io.EOF
}

func (r *fileReader) Close() error {
	return r.f.Close()
}
