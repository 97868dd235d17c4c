package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/policypulse/policypulse/constants"
)

func TestFingerprint_Deterministic(t *testing.T) {
	a := Fingerprint([]byte("Section 1. Short title."), constants.ContentText, "gpt-4o")
	b := Fingerprint([]byte("Section 1. Short title."), constants.ContentText, "gpt-4o")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestFingerprint_NormalizesTextContent(t *testing.T) {
	a := Fingerprint([]byte("Section 1.\r\nShort title.\n"), constants.ContentText, "gpt-4o")
	b := Fingerprint([]byte("  Section 1.\nShort title."), constants.ContentText, "gpt-4o")
	assert.Equal(t, a, b)
}

func TestFingerprint_PDFBytesNotNormalized(t *testing.T) {
	a := Fingerprint([]byte("%PDF-1.7\r\n..."), constants.ContentPDF, "gpt-4o")
	b := Fingerprint([]byte("%PDF-1.7\n..."), constants.ContentPDF, "gpt-4o")
	assert.NotEqual(t, a, b)
}

func TestFingerprint_VariesByInputs(t *testing.T) {
	base := Fingerprint([]byte("same content"), constants.ContentText, "gpt-4o")

	assert.NotEqual(t, base, Fingerprint([]byte("other content"), constants.ContentText, "gpt-4o"))
	assert.NotEqual(t, base, Fingerprint([]byte("same content"), constants.ContentPDF, "gpt-4o"))
	assert.NotEqual(t, base, Fingerprint([]byte("same content"), constants.ContentText, "gpt-4o-mini"))
}
