// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package segments

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"prospect-scan/internal/match"
)

// MemoryStore is an in-process Store used by tests and small runs where
// durability across processes is not needed.
type MemoryStore struct {
	mu       sync.Mutex
	segments map[string][]match.Result
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{segments: make(map[string][]match.Result)}
}

func (ms *MemoryStore) Write(batchIndex int, results []match.Result) (string, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	id := fmt.Sprintf("segment-%06d", batchIndex)
	copied := make([]match.Result, len(results))
	copy(copied, results)
	ms.segments[id] = copied
	return id, nil
}

func (ms *MemoryStore) List() ([]string, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ids := make([]string, 0, len(ms.segments))
	for id := range ms.segments {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (ms *MemoryStore) Read(segmentID string) (Reader, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	results, ok := ms.segments[segmentID]
	if !ok {
		return nil, fmt.Errorf("unknown segment %s", segmentID)
	}
	return &memReader{results: results}, nil
}

func (ms *MemoryStore) Delete(segmentID string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, ok := ms.segments[segmentID]; !ok {
		return fmt.Errorf("unknown segment %s", segmentID)
	}
	delete(ms.segments, segmentID)
	return nil
}

type memReader struct {
	results []match.Result
	pos     int
}

func (r *memReader) Next() (match.Result, error) {
	if r.pos >= len(r.results) {
		return match.Result{}, io.EOF
	}
	result := r.results[r.pos]
	r.pos++
	return result, nil
}

func (r *memReader) Close() error { return nil }
