// Package text provides the word tokenization and normalization primitives
// shared by the indexing and timing packages.
//
// # Tokenization
//
// [Tokens] splits text on runs of whitespace and reports each token's
// character interval. Offsets are rune offsets, not byte offsets, so that
// character-proportional audio timing weights every character equally
// regardless of encoding width.
//
// Tokens are located with a forward-only cursor: the interval reported for
// each token is the next occurrence at or after the end of the previous
// token. Repeated identical tokens are therefore matched in left-to-right
// document order. Downstream word attribution depends on this discipline;
// see the index package for the known consequence when extraction order
// differs from reading order.
//
// # Normalization
//
// [Normalize] prepares raw text for speech synthesis and timing: whitespace
// runs collapse to single spaces, spaces vanish before closing punctuation,
// and the result is NFC-composed. Normalize is idempotent.
package text
