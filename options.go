package cadence

import "github.com/tsawler/cadence/chunker"

// MaxChunkSize bounds the words-per-chunk setting. Larger chunks defeat the
// point of chunked synthesis: the reader waits on one long synthesis call
// and highlight granularity degrades.
const MaxChunkSize = 1000

// options holds Reader configuration.
type options struct {
	chunkSize int
}

// defaultOptions returns the default Reader configuration.
func defaultOptions() options {
	return options{chunkSize: chunker.DefaultChunkSize}
}

// withChunkSize clamps n to [1, MaxChunkSize]; non-positive values restore
// the default.
func (o options) withChunkSize(n int) options {
	switch {
	case n <= 0:
		o.chunkSize = chunker.DefaultChunkSize
	case n > MaxChunkSize:
		o.chunkSize = MaxChunkSize
	default:
		o.chunkSize = n
	}
	return o
}
