// Package timing computes per-word timestamps for synthesized speech.
//
// Timing is character-proportional: a word's share of the audio duration is
// its share of the text's characters, including the separators before it.
// This is derived data computed after synthesis, once a chunk's measured
// audio duration is known; it is never predicted ahead of synthesis.
//
// There are two flows. [ChunkWordTimings] and [ForChunk] place words on a
// chunk's local timeline (every chunk's audio starts at zero) and are used
// when each chunk is synthesized to its own audio file. [DocumentTimings]
// places chunks and words on a single shared timeline and is used when only
// one total duration is known for the whole text.
//
// Citation markers such as [1] or [2][3] are real spoken tokens, so they
// receive timestamps like any other word, but they are flagged with Skip so
// renderers never highlight them.
package timing

import (
	"math"
	"regexp"

	"github.com/tsawler/cadence/chunker"
	"github.com/tsawler/cadence/model"
	"github.com/tsawler/cadence/text"
)

// citationPattern matches tokens that are one or more bracketed integers.
// The token must match in full; words with leading or trailing characters
// around the brackets are ordinary words.
var citationPattern = regexp.MustCompile(`^\[\d+\](\[\d+\])*$`)

// IsCitation reports whether a raw token is a citation marker that should
// be synthesized but never highlighted.
func IsCitation(token string) bool {
	return citationPattern.MatchString(token)
}

// round truncates a time to millisecond precision.
func round(t float64) float64 {
	return math.Round(t*1000) / 1000
}

// ChunkWordTimings computes per-word timestamps for one chunk on its local
// audio timeline. chunkText must already be normalized (see text.Normalize);
// duration is the measured length of the chunk's synthesized audio in
// seconds. Empty text yields no timings.
func ChunkWordTimings(chunkText string, duration float64) []model.WordTiming {
	tokens := text.Tokens(chunkText)
	if len(tokens) == 0 {
		return nil
	}

	totalChars := text.RuneLen(chunkText)
	timings := make([]model.WordTiming, 0, len(tokens))
	for i, tok := range tokens {
		start, end := 0.0, duration
		if totalChars > 0 {
			start = float64(tok.Start) / float64(totalChars) * duration
			end = float64(tok.End) / float64(totalChars) * duration
		}
		timings = append(timings, model.WordTiming{
			Word:      tok.Text,
			StartTime: round(start),
			EndTime:   round(end),
			Index:     i,
			Skip:      IsCitation(tok.Text),
		})
	}
	return timings
}

// ForChunk builds the complete local-timeline timing record for one chunk.
// startOffset and endOffset locate the chunk within the normalized document
// text; callers that track no document offsets may pass zeros.
func ForChunk(chunkText string, duration float64, startOffset, endOffset int) model.ChunkTiming {
	return model.ChunkTiming{
		Text:        chunkText,
		StartTime:   0,
		EndTime:     round(duration),
		StartOffset: startOffset,
		EndOffset:   endOffset,
		Words:       ChunkWordTimings(chunkText, duration),
	}
}

// DocumentTimings computes chunk and word timings over a whole text against
// a single total duration, for callers that never measured per-chunk audio.
// The text is normalized, partitioned into fixed windows of chunkSize words,
// and each chunk receives the slice of the duration proportional to its
// character-offset span. All timestamps here share one document-wide
// timeline: the first chunk's start is 0 and the last chunk's end is the
// total duration.
func DocumentTimings(raw string, duration float64, chunkSize int) []model.ChunkTiming {
	if chunkSize <= 0 {
		chunkSize = chunker.DefaultChunkSize
	}

	normalized := text.Normalize(raw)
	tokens := text.Tokens(normalized)
	if len(tokens) == 0 {
		return nil
	}

	runes := []rune(normalized)
	totalChars := len(runes)

	var chunks []model.ChunkTiming
	for start := 0; start < len(tokens); start += chunkSize {
		end := start + chunkSize
		if end > len(tokens) {
			end = len(tokens)
		}
		window := tokens[start:end]

		startOffset := window[0].Start
		endOffset := window[len(window)-1].End

		words := make([]model.WordTiming, 0, len(window))
		for i, tok := range window {
			words = append(words, model.WordTiming{
				Word:      tok.Text,
				StartTime: round(float64(tok.Start) / float64(totalChars) * duration),
				EndTime:   round(float64(tok.End) / float64(totalChars) * duration),
				Index:     i,
				Skip:      IsCitation(tok.Text),
			})
		}

		chunks = append(chunks, model.ChunkTiming{
			Text:        string(runes[startOffset:endOffset]),
			StartTime:   round(float64(startOffset) / float64(totalChars) * duration),
			EndTime:     round(float64(endOffset) / float64(totalChars) * duration),
			StartOffset: startOffset,
			EndOffset:   endOffset,
			Words:       words,
		})
	}
	return chunks
}
