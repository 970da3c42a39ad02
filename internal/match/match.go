// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package match

// Type identifies how a prospect was matched inside a document.
type Type string

const (
	TypeNameAndCompany Type = "NameAndCompany"
	TypeNameOnly       Type = "NameOnly"
	TypeCompanyOnly    Type = "CompanyOnly"
)

// Fixed confidence score per match type. NameAndCompany outranks NameOnly,
// which outranks the optional CompanyOnly tier.
const (
	ConfidenceNameAndCompany = 95
	ConfidenceNameOnly       = 75
	ConfidenceCompanyOnly    = 50
)

// Result is one classified occurrence of a prospect in a document. After
// deduplication there is exactly one Result per (ProspectID, DocumentID).
type Result struct {
	ProspectID string   `json:"prospect_id"`
	DocumentID string   `json:"document_id"`
	Type       Type     `json:"match_type"`
	Confidence int      `json:"confidence"`
	Contexts   []string `json:"contexts,omitempty"`
}

// HitRecord accumulates per-prospect evidence while one document is being
// scanned. It is created lazily on the first qualifying match and discarded
// after classification.
type HitRecord struct {
	ProspectID string
	DocumentID string
	NameHit    bool
	CompanyHit bool

	// Contexts holds at most one bounded snippet, captured on the first
	// qualifying match for this prospect in this document.
	Contexts []string
}
