package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// closing punctuation that should not be preceded by a space after
// normalization.
const closingPunct = ".,!?;:"

// Normalize prepares raw text for speech synthesis and timing computation.
// Whitespace runs collapse to single spaces, spaces before closing
// punctuation are removed, and the result is NFC-composed so engines see
// precomposed characters. Character offsets reported elsewhere are always
// relative to normalized text.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingSpace := false
	wrote := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pendingSpace = wrote
			continue
		}
		if pendingSpace {
			if !strings.ContainsRune(closingPunct, r) {
				b.WriteByte(' ')
			}
			pendingSpace = false
		}
		b.WriteRune(r)
		wrote = true
	}

	return norm.NFC.String(b.String())
}
