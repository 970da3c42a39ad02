// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package match

import "sort"

// Deduplicator reduces an unordered stream of Results, potentially spanning
// repeated passes or overlapping batches, to one Result per
// (ProspectID, DocumentID) pair. Higher confidence wins; on an exact tie
// NameAndCompany is preferred over the other types.
type Deduplicator struct {
	best map[dedupeKey]Result
}

type dedupeKey struct {
	prospectID string
	documentID string
}

// NewDeduplicator returns an empty deduplicator.
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{best: make(map[dedupeKey]Result)}
}

// Add folds one result into the deduplicated set.
func (d *Deduplicator) Add(r Result) {
	key := dedupeKey{prospectID: r.ProspectID, documentID: r.DocumentID}
	current, ok := d.best[key]
	if !ok || prefer(r, current) {
		d.best[key] = r
	}
}

// AddAll folds a batch of results into the deduplicated set.
func (d *Deduplicator) AddAll(results []Result) {
	for _, r := range results {
		d.Add(r)
	}
}

// Len reports the number of distinct (prospect, document) pairs seen so far.
func (d *Deduplicator) Len() int {
	return len(d.best)
}

// Results returns the deduplicated set ordered by descending confidence,
// with NameAndCompany ahead of NameOnly at equal confidence, then by
// prospect and document id for a reproducible output order.
func (d *Deduplicator) Results() []Result {
	out := make([]Result, 0, len(d.best))
	for _, r := range d.best {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		if ra, rb := typeRank(a.Type), typeRank(b.Type); ra != rb {
			return ra < rb
		}
		if a.ProspectID != b.ProspectID {
			return a.ProspectID < b.ProspectID
		}
		return a.DocumentID < b.DocumentID
	})
	return out
}

// Deduplicate is the one-shot form: it reduces results to one entry per
// (prospect, document) pair. Running it on its own output is a no-op.
func Deduplicate(results []Result) []Result {
	d := NewDeduplicator()
	d.AddAll(results)
	return d.Results()
}

// prefer reports whether candidate should replace current.
func prefer(candidate, current Result) bool {
	if candidate.Confidence != current.Confidence {
		return candidate.Confidence > current.Confidence
	}
	return typeRank(candidate.Type) < typeRank(current.Type)
}

func typeRank(t Type) int {
	switch t {
	case TypeNameAndCompany:
		return 0
	case TypeNameOnly:
		return 1
	case TypeCompanyOnly:
		return 2
	default:
		return 3
	}
}
