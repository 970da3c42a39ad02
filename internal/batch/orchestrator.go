// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package batch makes the pipeline memory-safe for prospect sets too large
// to index in one pass. Prospects are partitioned into bounded batches;
// each batch owns a fresh compiler/index/scanner pipeline, runs against the
// full corpus, and persists its output segment immediately. A streaming
// merge over the segments produces the final deduplicated match set. Peak
// memory is one batch's patterns plus the in-flight document scans, never
// the full prospect set or match history.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"prospect-scan/internal/automaton"
	"prospect-scan/internal/compiler"
	"prospect-scan/internal/document"
	"prospect-scan/internal/match"
	"prospect-scan/internal/observability"
	"prospect-scan/internal/prospect"
	"prospect-scan/internal/scanner"
	"prospect-scan/internal/segments"
)

// Options holds the orchestration tunables, all chosen for a target memory
// budget rather than fixed by the engine.
type Options struct {
	// BatchSize is the prospect-count ceiling per batch.
	BatchSize int

	// Workers bounds concurrent document scans within a batch.
	Workers int

	// Scanner carries the per-document streaming tunables.
	Scanner scanner.Config

	// IncludeCompanyOnly re-enables the company-only confidence tier.
	IncludeCompanyOnly bool

	// KeepSegments leaves batch segments in the store after the merge,
	// for inspection or re-merging.
	KeepSegments bool
}

// DefaultOptions returns the orchestration defaults.
func DefaultOptions() Options {
	return Options{
		BatchSize: 5000,
		Workers:   4,
		Scanner:   scanner.DefaultConfig(),
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.BatchSize <= 0 {
		o.BatchSize = d.BatchSize
	}
	if o.Workers <= 0 {
		o.Workers = d.Workers
	}
	return o
}

// Match is the plain entry point: prospects against documents under a
// batch-size limit, with segments held in memory. Callers needing durable
// segments, progress events, or other tunables construct an Orchestrator.
func Match(ctx context.Context, prospects []prospect.Prospect, docs document.Source, batchSizeLimit int) ([]match.Result, error) {
	opts := DefaultOptions()
	if batchSizeLimit > 0 {
		opts.BatchSize = batchSizeLimit
	}
	return New(segments.NewMemoryStore(), nil).Match(ctx, prospects, docs, opts)
}

// Orchestrator drives batched matching runs against a segment store.
type Orchestrator struct {
	store    segments.Store
	observer *observability.Observer
}

// New creates an orchestrator persisting to store.
func New(store segments.Store, observer *observability.Observer) *Orchestrator {
	return &Orchestrator{store: store, observer: observer}
}

// Match runs the full pipeline: every batch against every document, one
// segment per batch, then the streaming merge. Per-document and per-batch
// failures are logged and skipped so isolated bad inputs never abort the
// run; only an invalid top-level configuration is an error.
func (o *Orchestrator) Match(ctx context.Context, prospects []prospect.Prospect, docs document.Source, opts Options) ([]match.Result, error) {
	if prospects == nil {
		return nil, fmt.Errorf("prospect list is nil")
	}
	if docs == nil {
		return nil, fmt.Errorf("document source is nil")
	}
	opts = opts.withDefaults()

	docIDs, err := docs.IDs()
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	if len(docIDs) == 0 {
		return nil, fmt.Errorf("document set is empty")
	}

	batches := partition(prospects, opts.BatchSize)
	o.observer.Status(map[string]any{
		"phase":     "matching",
		"batches":   len(batches),
		"documents": len(docIDs),
		"prospects": len(prospects),
	})

	for i, b := range batches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := o.runBatch(ctx, i, b, docs, docIDs, opts); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// Contained: the batch yields no segment, the run goes on.
			o.observer.LogError("batch", "run_batch", fmt.Sprintf("batch-%d", i), err)
		}
		o.observer.Progress(map[string]any{
			"batch":   i + 1,
			"batches": len(batches),
		})
	}

	return o.merge(ctx, opts)
}

// runBatch compiles one batch's patterns, scans the whole corpus with a
// bounded worker pool, and persists the batch segment. The index is
// read-only during scanning, so workers share it without locking; each
// document scan owns its own hit-record map.
func (o *Orchestrator) runBatch(ctx context.Context, batchIndex int, batchProspects []prospect.Prospect, docs document.Source, docIDs []string, opts Options) error {
	finish := o.observer.StartTiming("batch", "run_batch", fmt.Sprintf("batch-%d", batchIndex))

	ps, err := compiler.Compile(batchProspects)
	if err != nil {
		finish(false, nil)
		return fmt.Errorf("pattern compilation failed: %w", err)
	}
	if ps.Len() == 0 {
		// Nothing searchable in this batch.
		finish(true, map[string]any{"patterns": 0})
		return nil
	}

	index, err := automaton.Build(ps)
	if err != nil {
		finish(false, nil)
		return fmt.Errorf("index build failed: %w", err)
	}

	sc := scanner.New(index, opts.Scanner, match.Classifier{IncludeCompanyOnly: opts.IncludeCompanyOnly}, o.observer)
	results := o.scanCorpus(ctx, sc, docs, docIDs, opts.Workers)
	if err := ctx.Err(); err != nil {
		// Canceled mid-batch: write nothing, the partial batch is discarded.
		finish(false, map[string]any{"canceled": true})
		return err
	}

	if _, err := o.store.Write(batchIndex, results); err != nil {
		finish(false, nil)
		return fmt.Errorf("segment write failed: %w", err)
	}

	finish(true, map[string]any{
		"patterns":     ps.Len(),
		"match_count":  len(results),
		"document_cnt": len(docIDs),
	})
	return nil
}

// scanCorpus fans document ids out to a bounded pool of workers. A failed
// document contributes zero results; everything else proceeds.
func (o *Orchestrator) scanCorpus(ctx context.Context, sc *scanner.Scanner, docs document.Source, docIDs []string, workers int) []match.Result {
	jobs := make(chan string)
	resultsChan := make(chan []match.Result, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for docID := range jobs {
				resultsChan <- o.scanOne(ctx, sc, docs, docID)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, id := range docIDs {
			select {
			case jobs <- id:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var all []match.Result
	for rs := range resultsChan {
		all = append(all, rs...)
	}
	return all
}

// scanOne opens and scans a single document. Read failures are logged and
// yield zero results for that document only.
func (o *Orchestrator) scanOne(ctx context.Context, sc *scanner.Scanner, docs document.Source, docID string) []match.Result {
	rc, err := docs.Open(docID)
	if err != nil {
		o.observer.LogError("batch", "open_document", docID, err)
		return nil
	}
	defer rc.Close()

	results, err := sc.ScanDocument(ctx, docID, rc)
	if err != nil {
		o.observer.LogError("batch", "scan_document", docID, err)
		return nil
	}
	return results
}

// merge streams every persisted segment through the deduplicator. At most
// one segment reader plus the growing deduplicated map is resident at a
// time. Unreadable segments are skipped; their batches simply contribute
// nothing.
func (o *Orchestrator) merge(ctx context.Context, opts Options) ([]match.Result, error) {
	ids, err := o.store.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list segments: %w", err)
	}

	dedup := match.NewDeduplicator()
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := o.mergeSegment(dedup, id); err != nil {
			o.observer.LogError("batch", "merge_segment", id, err)
			continue
		}
		if !opts.KeepSegments {
			if err := o.store.Delete(id); err != nil {
				o.observer.LogError("batch", "delete_segment", id, err)
			}
		}
	}

	results := dedup.Results()
	o.observer.Status(map[string]any{
		"phase":       "merged",
		"segments":    len(ids),
		"match_count": len(results),
	})
	return results, nil
}

func (o *Orchestrator) mergeSegment(dedup *match.Deduplicator, segmentID string) error {
	r, err := o.store.Read(segmentID)
	if err != nil {
		return err
	}
	defer r.Close()

	for {
		result, err := r.Next()
		if err != nil {
			if isEOF(err) {
				return nil
			}
			return err
		}
		dedup.Add(result)
	}
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}

// partition slices prospects into contiguous batches of at most size.
func partition(prospects []prospect.Prospect, size int) [][]prospect.Prospect {
	var batches [][]prospect.Prospect
	for start := 0; start < len(prospects); start += size {
		end := start + size
		if end > len(prospects) {
			end = len(prospects)
		}
		batches = append(batches, prospects[start:end])
	}
	return batches
}
