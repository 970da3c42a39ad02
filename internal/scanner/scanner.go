// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package scanner feeds one document at a time through the automaton index
// in overlapping chunks, validates raw hits, and aggregates them into
// per-prospect hit records.
package scanner

import (
	"context"
	"io"
	"sort"
	"unicode/utf8"

	"prospect-scan/internal/automaton"
	"prospect-scan/internal/compiler"
	"prospect-scan/internal/match"
	"prospect-scan/internal/observability"
)

// State tracks a single document scan through its lifecycle.
type State int

const (
	StateIdle State = iota
	StateStreaming
	StateFinalizing
	StateDone
)

// Config holds the streaming tunables. The original system chose these
// empirically for a specific memory budget; they are exposed rather than
// hard-coded.
type Config struct {
	// ChunkSize is the number of raw bytes read per streaming step.
	ChunkSize int

	// OverlapChars is the trailing slice of the previous chunk prepended to
	// the next one, so no pattern is missed purely because it straddles a
	// chunk boundary. Matches longer than this can be missed.
	OverlapChars int

	// ContextChars bounds the snippet captured around the first qualifying
	// match per prospect per document.
	ContextChars int
}

// DefaultConfig returns the streaming defaults.
func DefaultConfig() Config {
	return Config{
		ChunkSize:    2 * 1024 * 1024,
		OverlapChars: 4096,
		ContextChars: 50,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ChunkSize <= 0 {
		c.ChunkSize = d.ChunkSize
	}
	if c.OverlapChars <= 0 {
		c.OverlapChars = d.OverlapChars
	}
	if c.ContextChars <= 0 {
		c.ContextChars = d.ContextChars
	}
	return c
}

// Scanner runs documents against one batch's automaton index. The index is
// read-only during scanning, so a single Scanner is safe for any number of
// concurrent ScanDocument calls; each call owns its own hit-record map.
type Scanner struct {
	index      *automaton.Index
	cfg        Config
	classifier match.Classifier
	observer   *observability.Observer
}

// New creates a scanner over a built index.
func New(index *automaton.Index, cfg Config, classifier match.Classifier, observer *observability.Observer) *Scanner {
	return &Scanner{
		index:      index,
		cfg:        cfg.withDefaults(),
		classifier: classifier,
		observer:   observer,
	}
}

// docScan is the per-document streaming state: Idle -> Streaming ->
// Finalizing -> Done. Owned exclusively by one ScanDocument call.
type docScan struct {
	state   State
	docID   string
	overlap string
	hits    map[string]*match.HitRecord
}

// ScanDocument streams a document's content through the index and returns
// the classified matches for it. Chunks are processed strictly in arrival
// order. A read error ends the scan with zero results and the error, which
// the caller is expected to contain rather than abort the batch on.
// Cancellation is honored between chunks.
func (s *Scanner) ScanDocument(ctx context.Context, docID string, r io.Reader) ([]match.Result, error) {
	finish := s.observer.StartTiming("scanner", "scan_document", docID)

	d := &docScan{
		state: StateIdle,
		docID: docID,
		hits:  make(map[string]*match.HitRecord),
	}

	buf := make([]byte, s.cfg.ChunkSize)
	d.state = StateStreaming
	for {
		if err := ctx.Err(); err != nil {
			d.state = StateDone
			finish(false, map[string]any{"canceled": true})
			return nil, err
		}

		n, err := io.ReadFull(r, buf)
		if n > 0 {
			s.processChunk(d, buf[:n])
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			d.state = StateDone
			finish(false, map[string]any{"error": err.Error()})
			return nil, err
		}
	}

	d.state = StateFinalizing
	results := s.finalize(d)
	d.state = StateDone

	finish(true, map[string]any{"match_count": len(results)})
	return results, nil
}

// processChunk normalizes one chunk (with the previous chunk's trailing
// overlap prepended), scans it, and folds accepted hits into the document's
// hit records. Re-seeing a match inside the overlap region is harmless:
// hit flags are idempotent and only the first context snippet is kept.
func (s *Scanner) processChunk(d *docScan, chunk []byte) {
	text := d.overlap + string(chunk)
	if len(text) > s.cfg.OverlapChars {
		d.overlap = text[len(text)-s.cfg.OverlapChars:]
	} else {
		d.overlap = text
	}

	normText := compiler.Normalize(text)
	scanText, offsets := compiler.ScanText(normText)
	if scanText == "" {
		return
	}

	for _, occ := range s.index.Scan(scanText) {
		if !ValidBoundaries(scanText, occ.Start, occ.End) {
			continue
		}

		// Widen the hit back onto the normalized text so a dropped
		// single-letter initial inside the span becomes visible again.
		spanStart := offsets[occ.Start]
		spanEnd := offsets[occ.End-1] + 1
		span := normText[spanStart:spanEnd]

		for _, v := range s.index.Variations(occ.PatternID) {
			if v.Kind == compiler.KindName {
				if v.RequiresInitialCheck {
					if !AcceptInitialSpan(span, v.FirstToken, v.LastToken) {
						continue
					}
				} else if !AcceptExactSpan(span, v.FirstToken, v.LastToken) {
					continue
				}
			}
			s.record(d, v, normText, spanStart, spanEnd)
		}
	}
}

// record updates or lazily creates the hit record for a variation's
// prospect. The context snippet is captured once, on the first qualifying
// match for that prospect in this document; its position is best-effort
// since normalization is not length-preserving.
func (s *Scanner) record(d *docScan, v compiler.Variation, normText string, spanStart, spanEnd int) {
	h, ok := d.hits[v.ProspectID]
	if !ok {
		h = &match.HitRecord{ProspectID: v.ProspectID, DocumentID: d.docID}
		d.hits[v.ProspectID] = h
	}

	switch v.Kind {
	case compiler.KindName:
		h.NameHit = true
	case compiler.KindCompany:
		h.CompanyHit = true
	}

	if len(h.Contexts) == 0 {
		h.Contexts = append(h.Contexts, snippet(normText, spanStart, spanEnd, s.cfg.ContextChars))
	}
}

// finalize classifies every hit record. Prospect order is fixed so repeated
// runs emit results deterministically.
func (s *Scanner) finalize(d *docScan) []match.Result {
	ids := make([]string, 0, len(d.hits))
	for id := range d.hits {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var results []match.Result
	for _, id := range ids {
		if r, ok := s.classifier.Classify(*d.hits[id]); ok {
			results = append(results, r)
		}
	}
	return results
}

// snippet returns a bounded window of normalized text around a span,
// clamped to rune boundaries.
func snippet(text string, start, end, pad int) string {
	lo := start - pad
	if lo < 0 {
		lo = 0
	}
	hi := end + pad
	if hi > len(text) {
		hi = len(text)
	}
	for lo > 0 && !utf8.RuneStart(text[lo]) {
		lo--
	}
	for hi < len(text) && !utf8.RuneStart(text[hi]) {
		hi++
	}
	return text[lo:hi]
}
