// Package index builds the word-indexed document model from raw positioned
// text spans.
//
// The indexer is the first stage of the synchronization pipeline: it assigns
// document-wide element ids, joins each page's spans into the page text,
// tokenizes that text, and attributes every word to the layout elements whose
// character intervals overlap it. The result is a [model.Document] that the
// chunker and highlight resolver consume.
//
// # Word Attribution
//
// Word and element positions are both expressed as character intervals
// within the page text. Words are located with a forward-only cursor, so
// repeated identical words are attributed in left-to-right extraction order.
// When extraction order does not match final reading order (multi-column
// layouts reordered upstream), duplicate tokens can be attributed to the
// wrong occurrence; that behaviour is deliberate and pinned by tests, since
// the correct resolution depends on layout-ordering guarantees the indexer
// does not own.
//
// An element overlapping several words keeps only its final word's index in
// its WordIndex field. The owning page's word map retains the complete
// word-to-element relation.
//
// # Failure Policy
//
// Build never fails. Spans with empty or whitespace-only text are dropped,
// a missing bounding box stays [0,0,0,0], and a missing font size defaults
// to 12 points. An empty page contributes an empty word map and no global
// word indices.
package index
