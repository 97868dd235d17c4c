package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/policypulse/policypulse/constants"
)

// Fingerprint derives the deterministic identity of one analysis request:
// normalized content bytes + model identifier + schema version. Two requests
// with the same fingerprint are guaranteed to produce the same analysis, so
// the fingerprint is the cache and dedup key.
func Fingerprint(content []byte, kind constants.ContentKind, model string) string {
	h := sha256.New()
	if kind == constants.ContentText {
		h.Write([]byte(NormalizeText(string(content))))
	} else {
		h.Write(content)
	}
	h.Write([]byte{0})
	h.Write([]byte(string(kind)))
	h.Write([]byte{0})
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write([]byte(SchemaVersion))
	return hex.EncodeToString(h.Sum(nil))
}

// NormalizeText canonicalizes text content before fingerprinting and token
// counting: CRLF to LF and outer whitespace trimmed. Chunking operates on the
// normalized form so chunk spans reference stable offsets.
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimSpace(s)
}
