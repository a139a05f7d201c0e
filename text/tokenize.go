package text

import "unicode"

// Token is a single whitespace-delimited word with its character interval
// [Start, End) within the source text. Offsets count runes.
type Token struct {
	Text  string
	Start int
	End   int
}

// Tokens splits s on runs of whitespace and returns the tokens in order with
// their rune-offset intervals. The scan is a single forward pass, so each
// token's interval is the first occurrence at or after the previous token's
// end.
func Tokens(s string) []Token {
	var tokens []Token
	pos := 0   // rune offset
	start := 0 // rune offset of current token start
	byteStart := -1

	for i, r := range s {
		if unicode.IsSpace(r) {
			if byteStart >= 0 {
				tokens = append(tokens, Token{
					Text:  s[byteStart:i],
					Start: start,
					End:   pos,
				})
				byteStart = -1
			}
		} else if byteStart < 0 {
			byteStart = i
			start = pos
		}
		pos++
	}
	if byteStart >= 0 {
		tokens = append(tokens, Token{
			Text:  s[byteStart:],
			Start: start,
			End:   pos,
		})
	}
	return tokens
}

// Words returns just the token texts of s, in order.
func Words(s string) []string {
	tokens := Tokens(s)
	words := make([]string, len(tokens))
	for i, tok := range tokens {
		words[i] = tok.Text
	}
	return words
}

// WordCount returns the number of whitespace-delimited words in s.
func WordCount(s string) int {
	count := 0
	inWord := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWord = false
		} else if !inWord {
			inWord = true
			count++
		}
	}
	return count
}

// RuneLen returns the length of s in runes. Word and element intervals are
// measured in the same unit so the overlap test in the indexer stays
// consistent for non-ASCII text.
func RuneLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
