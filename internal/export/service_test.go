package export

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short stays whole", "summary", 500, "summary"},
		{"exact fit stays whole", "abcde", 5, "abcde"},
		{"ascii cut", "abcdef", 5, "abcd…"},
		{"zero cap is a no-op", "abc", 0, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.in, tt.n))
		})
	}
}

func TestTruncateNeverSplitsRunes(t *testing.T) {
	// each kanji is three bytes, so a byte-indexed cut would land mid-rune
	// for most caps
	s := strings.Repeat("日本語", 20)
	for n := 1; n < len(s); n++ {
		got := truncate(s, n)
		assert.True(t, utf8.ValidString(got), "cap %d produced invalid UTF-8", n)
	}
}
