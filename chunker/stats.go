package chunker

import "github.com/tsawler/cadence/model"

// Stats summarizes a planned chunk list.
type Stats struct {
	TotalChunks int `json:"total_chunks"`
	TotalWords  int `json:"total_words"`
	MinWords    int `json:"min_words"`
	MaxWords    int `json:"max_words"`
	AvgWords    int `json:"avg_words"`
}

// CalculateStats computes summary statistics for a chunk list.
func CalculateStats(chunks []model.Chunk) Stats {
	stats := Stats{
		TotalChunks: len(chunks),
		MinWords:    -1,
	}

	for _, c := range chunks {
		n := c.WordCount()
		stats.TotalWords += n
		if stats.MinWords < 0 || n < stats.MinWords {
			stats.MinWords = n
		}
		if n > stats.MaxWords {
			stats.MaxWords = n
		}
	}

	if len(chunks) > 0 {
		stats.AvgWords = stats.TotalWords / len(chunks)
	}
	if stats.MinWords < 0 {
		stats.MinWords = 0
	}

	return stats
}
