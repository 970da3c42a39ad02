// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package match

// Classifier converts a HitRecord into at most one Result. It is a pure
// function of its input: no I/O, no side effects, safe for concurrent use.
type Classifier struct {
	// IncludeCompanyOnly re-enables the CompanyOnly tier. Company-root
	// matching alone proved too weak a signal at corpus scale, so it is
	// off by default and company-only hits are dropped.
	IncludeCompanyOnly bool
}

// Classify returns the Result for a hit record and whether one was produced.
func (c Classifier) Classify(h HitRecord) (Result, bool) {
	switch {
	case h.NameHit && h.CompanyHit:
		return Result{
			ProspectID: h.ProspectID,
			DocumentID: h.DocumentID,
			Type:       TypeNameAndCompany,
			Confidence: ConfidenceNameAndCompany,
			Contexts:   h.Contexts,
		}, true
	case h.NameHit:
		return Result{
			ProspectID: h.ProspectID,
			DocumentID: h.DocumentID,
			Type:       TypeNameOnly,
			Confidence: ConfidenceNameOnly,
			Contexts:   h.Contexts,
		}, true
	case h.CompanyHit && c.IncludeCompanyOnly:
		return Result{
			ProspectID: h.ProspectID,
			DocumentID: h.DocumentID,
			Type:       TypeCompanyOnly,
			Confidence: ConfidenceCompanyOnly,
			Contexts:   h.Contexts,
		}, true
	default:
		return Result{}, false
	}
}

// Classify applies the default classifier (company-only tier disabled).
func Classify(h HitRecord) (Result, bool) {
	return Classifier{}.Classify(h)
}
