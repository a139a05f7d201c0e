// Package chunker partitions a document's global word sequence into bounded
// reading chunks.
//
// Chunks are the unit of speech synthesis and playback highlighting: each
// chunk's text is synthesized as one audio file, and the chunk's word range
// drives highlight resolution during playback. Chunks always partition
// [0, total word count) contiguously, with no gaps or overlaps, in id order.
//
// Chunk lists are derived data: they can be recomputed at any time from the
// document and a chunk size, and are never the source of truth.
package chunker

import (
	"strings"

	"github.com/tsawler/cadence/model"
	"github.com/tsawler/cadence/text"
)

// DefaultChunkSize is the number of words per chunk when none is configured.
const DefaultChunkSize = 50

// Config controls chunk planning.
type Config struct {
	// ChunkSize is the number of words per chunk. The final chunk may be
	// shorter. Non-positive values fall back to DefaultChunkSize.
	ChunkSize int
}

// DefaultConfig returns the default planning configuration.
func DefaultConfig() Config {
	return Config{ChunkSize: DefaultChunkSize}
}

// Plan partitions the document's global word sequence into chunks of
// cfg.ChunkSize words. Chunk k covers global word indices
// [k*size, min((k+1)*size, total)). Page ranges come from the document's
// word-to-page mapping, defaulting to page 1 where a lookup misses.
//
// A document with no words yields no chunks.
func Plan(doc *model.Document, cfg Config) []model.Chunk {
	size := cfg.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}

	words := GlobalWords(doc)
	if len(words) == 0 {
		return nil
	}

	chunks := make([]model.Chunk, 0, (len(words)+size-1)/size)
	for start := 0; start < len(words); start += size {
		end := start + size
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, model.Chunk{
			ID:        len(chunks),
			Text:      strings.Join(words[start:end], " "),
			WordStart: start,
			WordEnd:   end,
			PageStart: pageAt(doc, start),
			PageEnd:   pageAt(doc, end-1),
		})
	}
	return chunks
}

// GlobalWords returns the document's words in global index order: the
// concatenation of each page's tokenization, in page order. This is the
// numbering the indexer assigned, not a re-tokenization of the newline-
// joined document text; the two differ when a page's text begins or ends
// with characters a joint tokenization would merge.
func GlobalWords(doc *model.Document) []string {
	var words []string
	for i := range doc.Pages {
		words = append(words, text.Words(doc.Pages[i].FullText)...)
	}
	return words
}

// pageAt returns the page owning the given global word index, defaulting to
// page 1 when the index is not mapped.
func pageAt(doc *model.Document, wordIdx int) int {
	if page, ok := doc.WordToPage[wordIdx]; ok {
		return page
	}
	return 1
}
