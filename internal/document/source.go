// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package document supplies the corpus side of the pipeline: sources that
// yield (document id, byte stream) pairs. The orchestrator re-reads the
// whole corpus once per batch, so sources must support repeated opens.
package document

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Source enumerates a document corpus. IDs must be stable across calls
// within one run; Open may be called multiple times per id (once per
// batch).
type Source interface {
	IDs() ([]string, error)
	Open(id string) (io.ReadCloser, error)
}

// MapSource serves in-memory documents, primarily for tests and small runs.
type MapSource struct {
	docs map[string]string
}

// NewMapSource creates a source over an id -> content map.
func NewMapSource(docs map[string]string) *MapSource {
	return &MapSource{docs: docs}
}

func (ms *MapSource) IDs() ([]string, error) {
	ids := make([]string, 0, len(ms.docs))
	for id := range ms.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (ms *MapSource) Open(id string) (io.ReadCloser, error) {
	content, ok := ms.docs[id]
	if !ok {
		return nil, fmt.Errorf("unknown document %s", id)
	}
	return io.NopCloser(strings.NewReader(content)), nil
}
