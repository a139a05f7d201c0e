// Package model provides the intermediate representation (IR) for indexed
// document content.
//
// This package defines the user-facing data structures that tie together the
// three views of a document that synchronized read-aloud playback needs: the
// positioned layout view (pages and text elements), the word-indexed view
// (global and page-relative word numbering), and the audio timeline view
// (chunks with per-word timings). All indexing, chunking, and timing
// operations ultimately produce these types, making them the primary API for
// consuming synchronization data.
//
// # Document Structure
//
// The [Document] type represents a complete indexed document:
//
//	doc := index.Build(rawPages, hash)
//	page := doc.GetPage(1)
//
// Each [Page] contains dimensions, an ordered list of [TextElement] values,
// the page's joined text, and a word map from page-relative word indices to
// the element ids that render each word.
//
// # Value Semantics
//
// Every type in this package is a plain value record with no behaviour tied
// to object identity. Elements and pages are addressed by integer id and
// page number rather than by pointer, so a Document that has round-tripped
// through encoding/json answers every query identically to the live value it
// was serialized from. The JSON field names are a compatibility contract
// with renderers and must not be changed.
//
// # Audio Timeline
//
// [Chunk] describes a bounded run of words sent to a speech engine as one
// unit. [WordTiming] and [ChunkTiming] place individual words on a chunk's
// local audio timeline once the chunk's synthesized duration is known.
package model
