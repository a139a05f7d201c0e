package model

// Chunk is a bounded run of words sent to a speech engine as one unit and
// highlighted as one playback unit. Chunks partition the document's global
// word sequence with no gaps or overlaps, in id order.
type Chunk struct {
	// ID is the sequential chunk id, starting at 0.
	ID int `json:"id"`

	// Text is the chunk's words joined with single spaces.
	Text string `json:"text"`

	// WordStart and WordEnd bound the chunk's half-open range of global
	// word indices: [WordStart, WordEnd).
	WordStart int `json:"word_start"`
	WordEnd   int `json:"word_end"`

	// PageStart and PageEnd are the pages owning the chunk's first and
	// last words.
	PageStart int `json:"page_start"`
	PageEnd   int `json:"page_end"`
}

// WordCount returns the number of words in the chunk.
func (c Chunk) WordCount() int {
	return c.WordEnd - c.WordStart
}

// WordTiming places one word on its chunk's local audio timeline.
type WordTiming struct {
	// Word is the raw token as it appears in the chunk text.
	Word string `json:"word"`

	// StartTime and EndTime are seconds from the start of the chunk's
	// own audio, rounded to millisecond precision.
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`

	// Index is the word's position within the chunk.
	Index int `json:"index"`

	// Skip is true iff the token is a citation marker that is synthesized
	// as audio but never visually highlighted.
	Skip bool `json:"skip"`
}

// ChunkTiming is a chunk's span on its local audio timeline together with
// per-word timings. StartTime is always 0: each chunk's audio starts at the
// beginning of its own file.
type ChunkTiming struct {
	// Text is the chunk text the timings were computed over.
	Text string `json:"text"`

	// StartTime and EndTime bound the chunk on its local timeline.
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`

	// StartOffset and EndOffset are character offsets of the chunk within
	// the normalized document text.
	StartOffset int `json:"start_offset"`
	EndOffset   int `json:"end_offset"`

	// Words is the ordered list of word timings.
	Words []WordTiming `json:"words"`
}
