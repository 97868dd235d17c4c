package constants

import "bytes"

// ContentKind identifies what the pipeline was handed.
type ContentKind string

const (
	ContentText ContentKind = "TEXT"
	ContentPDF  ContentKind = "PDF"
)

// ContentKinds holds the allowed values for the content_kind field in AnalysisJob.
var ContentKinds = []string{string(ContentText), string(ContentPDF)}

var pdfMagic = []byte("%PDF-")

// IsPDF reports whether raw looks like a PDF document.
func IsPDF(raw []byte) bool {
	return bytes.HasPrefix(raw, pdfMagic)
}

// MaxVisionMBDefault caps the size of documents sent down the vision path.
const MaxVisionMBDefault = 20
