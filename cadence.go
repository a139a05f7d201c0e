// Package cadence provides a fluent API for building and querying a
// text-layout-audio synchronization index: a stable mapping from global word
// position, to on-page layout element, to reading chunk, to a timestamp
// range within that chunk's synthesized audio.
//
// Basic usage over extracted spans:
//
//	r := cadence.FromSpans(pages, rawBytes).ChunkSize(50)
//	doc := r.Document()
//	chunks := r.Chunks()
//	hl, err := r.HighlightChunk(2)
//
// Raw text without layout works the same way:
//
//	r := cadence.FromText("Hello world. This is a test.")
//	timings, err := r.ChunkTiming(0, measuredDuration)
//
// For advanced use cases, the lower-level index, chunker, highlight, timing,
// and synthesis packages are also available.
package cadence

import (
	"context"

	"github.com/tsawler/cadence/chunker"
	"github.com/tsawler/cadence/highlight"
	"github.com/tsawler/cadence/index"
	"github.com/tsawler/cadence/model"
	"github.com/tsawler/cadence/synthesis"
	"github.com/tsawler/cadence/text"
	"github.com/tsawler/cadence/timing"
)

// FromSpans creates a Reader over extracted positioned spans. raw is the
// original input bytes used for the document's content hash; pass nil when
// no source bytes exist.
func FromSpans(pages []index.RawPage, raw []byte) *Reader {
	return &Reader{
		pages: pages,
		raw:   raw,
		opts:  defaultOptions(),
	}
}

// FromText creates a Reader over raw text with no layout information. The
// text becomes a single spanless page, so chunking, highlighting, and timing
// all work the same way they do for extracted documents; highlight queries
// resolve to the one synthetic element covering the page.
func FromText(t string) *Reader {
	return &Reader{
		pages: []index.RawPage{{Spans: []index.RawSpan{{Text: t}}}},
		raw:   []byte(t),
		opts:  defaultOptions(),
	}
}

// Reader is a lazily-built synchronization index with fluent configuration.
// Configure it before the first terminal call; the underlying document and
// chunk list are built once and reused. A Reader is not safe for concurrent
// configuration, but the values it returns are, and may be queried from any
// number of goroutines.
type Reader struct {
	pages []index.RawPage
	raw   []byte
	opts  options

	doc    *model.Document
	chunks []model.Chunk
}

// ChunkSize sets the number of words per reading chunk, clamped to
// [1, MaxChunkSize]. Non-positive values restore the default.
func (r *Reader) ChunkSize(n int) *Reader {
	r.opts = r.opts.withChunkSize(n)
	r.doc = nil
	r.chunks = nil
	return r
}

// Document builds (once) and returns the indexed document.
func (r *Reader) Document() *model.Document {
	if r.doc == nil {
		r.doc = index.Build(r.pages, r.raw)
	}
	return r.doc
}

// Chunks plans (once) and returns the reading chunks.
func (r *Reader) Chunks() []model.Chunk {
	if r.chunks == nil {
		r.chunks = chunker.Plan(r.Document(), chunker.Config{ChunkSize: r.opts.chunkSize})
	}
	return r.chunks
}

// HighlightChunk resolves a chunk id to its renderer-ready highlight group.
// Returns highlight.ErrInvalidChunkID for an out-of-range id.
func (r *Reader) HighlightChunk(chunkID int) (*highlight.Result, error) {
	return highlight.ByChunk(r.Document(), r.Chunks(), chunkID)
}

// HighlightRange resolves an arbitrary global word range to the layout
// elements rendering it, grouped by page number.
func (r *Reader) HighlightRange(wordStart, wordEnd int) map[int][]model.TextElement {
	return highlight.ByWordRange(r.Document(), wordStart, wordEnd)
}

// ChunkTiming computes the word timings for one chunk from its measured
// audio duration in seconds. Durations arrive as synthesis completes, so
// chunks may be timed in any order; each call depends only on the named
// chunk's own duration.
func (r *Reader) ChunkTiming(chunkID int, duration float64) (model.ChunkTiming, error) {
	chunks := r.Chunks()
	if chunkID < 0 || chunkID >= len(chunks) {
		return model.ChunkTiming{}, highlight.ErrInvalidChunkID
	}

	cursor := 0
	for _, c := range chunks[:chunkID] {
		cursor += text.RuneLen(c.Text) + 1
	}
	chunk := chunks[chunkID]
	return timing.ForChunk(chunk.Text, duration, cursor, cursor+text.RuneLen(chunk.Text)), nil
}

// DocumentTimings computes timings for the whole document against a single
// total duration, for callers without per-chunk measurements.
func (r *Reader) DocumentTimings(duration float64) []model.ChunkTiming {
	return timing.DocumentTimings(r.Document().FullText, duration, r.opts.chunkSize)
}

// Synthesize runs every planned chunk through the given engine on a bounded
// worker pool, returning one audio-and-timing result per chunk in chunk id
// order. Wrap the engine in a [synthesis.CachingEngine] to reuse previously
// synthesized audio. See [synthesis.Pipeline] for finer control.
func (r *Reader) Synthesize(ctx context.Context, engine synthesis.Engine) ([]synthesis.ChunkResult, error) {
	return synthesis.NewPipeline(engine, synthesis.Config{}).Run(ctx, r.Chunks())
}

// Must is a helper that wraps a call to a function returning (T, error) and
// panics if the error is non-nil. It is intended for use in scripts or tests
// where error handling would be cumbersome.
//
// Example:
//
//	hl := cadence.Must(r.HighlightChunk(0))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
