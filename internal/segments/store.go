// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package segments is the durable store for per-batch match output. Each
// batch writes exactly one immutable segment; the final merge streams
// segments back one at a time, so peak memory never depends on the full
// match history.
package segments

import "prospect-scan/internal/match"

// Store persists batch results as immutable segments.
//
// Write is single-writer per segment and must be atomic: a crashed or
// canceled write leaves no listable segment behind. List and Read may be
// used concurrently by the merge.
type Store interface {
	Write(batchIndex int, results []match.Result) (string, error)
	List() ([]string, error)
	Read(segmentID string) (Reader, error)
	Delete(segmentID string) error
}

// Reader streams one segment's results. Next returns io.EOF after the last
// result. Close releases the underlying resources.
type Reader interface {
	Next() (match.Result, error)
	Close() error
}
