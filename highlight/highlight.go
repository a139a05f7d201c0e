// Package highlight resolves word ranges and chunk ids to the layout
// elements a renderer should visually emphasize during playback.
//
// Resolution is one pure algorithm with two entry points: [ByWordRange] for
// an arbitrary global word range and [ByChunk] for a planned chunk. ByChunk
// delegates to ByWordRange, so the two can never disagree about which
// elements a chunk touches. Because resolution reads only the value records
// in the model package, it answers identically whether the document is the
// live value the indexer produced or one deserialized from JSON.
package highlight

import (
	"errors"

	"github.com/tsawler/cadence/model"
	"github.com/tsawler/cadence/text"
)

// ErrInvalidChunkID is returned by ByChunk for an out-of-range chunk id.
// The message text is part of the renderer error contract.
var ErrInvalidChunkID = errors.New("Invalid chunk ID")

// Result is the renderer-ready highlight group for one chunk.
type Result struct {
	// ChunkID is the resolved chunk's id.
	ChunkID int `json:"chunk_id"`

	// ChunkText is the resolved chunk's text.
	ChunkText string `json:"chunk_text"`

	// PageRange is the chunk's [first page, last page].
	PageRange [2]int `json:"page_range"`

	// Elements groups the elements to highlight by page number, in
	// per-page element order.
	Elements map[int][]model.TextElement `json:"elements"`
}

// ByWordRange resolves the global word range [wordStart, wordEnd) to the
// layout elements rendering those words, grouped by page number. Within
// each page, elements appear in extraction order, each at most once. Word
// indices with no page mapping are skipped.
func ByWordRange(doc *model.Document, wordStart, wordEnd int) map[int][]model.TextElement {
	// First global word index on each page, in page order.
	firstIdx := make(map[int]int, len(doc.Pages))
	total := 0
	for i := range doc.Pages {
		firstIdx[doc.Pages[i].Number] = total
		total += text.WordCount(doc.Pages[i].FullText)
	}

	idsByPage := make(map[int]map[int]bool)
	for idx := wordStart; idx < wordEnd; idx++ {
		pageNum, ok := doc.WordToPage[idx]
		if !ok {
			continue
		}
		page := doc.GetPage(pageNum)
		if page == nil {
			continue
		}
		rel := idx - firstIdx[pageNum]
		for _, id := range page.WordMap[rel] {
			ids := idsByPage[pageNum]
			if ids == nil {
				ids = make(map[int]bool)
				idsByPage[pageNum] = ids
			}
			ids[id] = true
		}
	}

	elements := make(map[int][]model.TextElement, len(idsByPage))
	for pageNum, ids := range idsByPage {
		page := doc.GetPage(pageNum)
		for _, elem := range page.Elements {
			if ids[elem.ID] {
				elements[pageNum] = append(elements[pageNum], elem)
			}
		}
	}
	return elements
}

// ByChunk resolves a chunk id to its highlight group. It shares its
// resolution logic with ByWordRange, so resolving a chunk and resolving the
// chunk's own word range always agree. The chunk list must be the one
// planned for doc.
func ByChunk(doc *model.Document, chunks []model.Chunk, chunkID int) (*Result, error) {
	if chunkID < 0 || chunkID >= len(chunks) {
		return nil, ErrInvalidChunkID
	}

	chunk := chunks[chunkID]
	return &Result{
		ChunkID:   chunk.ID,
		ChunkText: chunk.Text,
		PageRange: [2]int{chunk.PageStart, chunk.PageEnd},
		Elements:  ByWordRange(doc, chunk.WordStart, chunk.WordEnd),
	}, nil
}
