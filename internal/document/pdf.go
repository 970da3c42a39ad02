// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxPDFPages caps extraction work per filing; the matcher only needs the
// body text, and pathological PDFs should not stall a whole batch.
const maxPDFPages = 200

// openPDF extracts plain text from a PDF and serves it as the document's
// byte stream. Pages that fail to extract are skipped; the remaining pages
// still get scanned.
func openPDF(path string) (io.ReadCloser, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	pages := r.NumPage()
	if pages > maxPDFPages {
		pages = maxPDFPages
	}

	var b strings.Builder
	for i := 1; i <= pages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}

	return io.NopCloser(strings.NewReader(b.String())), nil
}
