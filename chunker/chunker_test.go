package chunker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tsawler/cadence/index"
	"github.com/tsawler/cadence/model"
)

// docFromPages builds an indexed document with one span per page.
func docFromPages(pageTexts ...string) *model.Document {
	pages := make([]index.RawPage, len(pageTexts))
	for i, t := range pageTexts {
		pages[i] = index.RawPage{Spans: []index.RawSpan{{Text: t}}}
	}
	return index.Build(pages, nil)
}

// wordRun returns n generated words joined by spaces.
func wordRun(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(words, " ")
}

func TestPlan_120WordsChunkSize50(t *testing.T) {
	// Spread 120 words over three pages of 40.
	doc := docFromPages(wordRun(40), wordRun(40), wordRun(40))

	chunks := Plan(doc, Config{ChunkSize: 50})

	if len(chunks) != 3 {
		t.Fatalf("Expected 3 chunks, got %d", len(chunks))
	}
	wantSizes := []int{50, 50, 20}
	for i, chunk := range chunks {
		if chunk.ID != i {
			t.Errorf("Expected chunk id %d, got %d", i, chunk.ID)
		}
		if chunk.WordCount() != wantSizes[i] {
			t.Errorf("Chunk %d: expected %d words, got %d", i, wantSizes[i], chunk.WordCount())
		}
	}
}

func TestPlan_PartitionInvariant(t *testing.T) {
	tests := []struct {
		name      string
		pageTexts []string
		chunkSize int
	}{
		{"single page", []string{wordRun(17)}, 5},
		{"multi page", []string{wordRun(13), wordRun(29), wordRun(7)}, 10},
		{"exact multiple", []string{wordRun(20)}, 5},
		{"chunk larger than doc", []string{wordRun(3)}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := docFromPages(tt.pageTexts...)
			chunks := Plan(doc, Config{ChunkSize: tt.chunkSize})

			total := doc.WordCount()
			covered := 0
			next := 0
			for i, chunk := range chunks {
				if chunk.ID != i {
					t.Errorf("Chunk %d has id %d", i, chunk.ID)
				}
				if chunk.WordStart != next {
					t.Errorf("Chunk %d starts at %d, expected %d (gap or overlap)", i, chunk.WordStart, next)
				}
				next = chunk.WordEnd
				covered += chunk.WordCount()
			}
			if covered != total {
				t.Errorf("Chunks cover %d words, document has %d", covered, total)
			}
			if next != total {
				t.Errorf("Last chunk ends at %d, expected %d", next, total)
			}
		})
	}
}

func TestPlan_TextReconstruction(t *testing.T) {
	in := "Hello world. This is a test sentence with words to fill a boundary exactly."
	doc := docFromPages(in)

	chunks := Plan(doc, Config{ChunkSize: 5})

	// 14 words split 5/5/4.
	wantSizes := []int{5, 5, 4}
	if len(chunks) != len(wantSizes) {
		t.Fatalf("Expected %d chunks, got %d", len(wantSizes), len(chunks))
	}
	var texts []string
	for i, chunk := range chunks {
		if chunk.WordCount() != wantSizes[i] {
			t.Errorf("Chunk %d: expected %d words, got %d", i, wantSizes[i], chunk.WordCount())
		}
		texts = append(texts, chunk.Text)
	}
	if got := strings.Join(texts, " "); got != in {
		t.Errorf("Concatenated chunk texts = %q, want %q", got, in)
	}
}

func TestPlan_PageRanges(t *testing.T) {
	// Pages of 4, 4, and 2 words; chunk size 5 straddles both boundaries.
	doc := docFromPages(wordRun(4), wordRun(4), wordRun(2))

	chunks := Plan(doc, Config{ChunkSize: 5})

	if len(chunks) != 2 {
		t.Fatalf("Expected 2 chunks, got %d", len(chunks))
	}
	if chunks[0].PageStart != 1 || chunks[0].PageEnd != 2 {
		t.Errorf("Chunk 0 page range [%d,%d], want [1,2]", chunks[0].PageStart, chunks[0].PageEnd)
	}
	if chunks[1].PageStart != 2 || chunks[1].PageEnd != 3 {
		t.Errorf("Chunk 1 page range [%d,%d], want [2,3]", chunks[1].PageStart, chunks[1].PageEnd)
	}
}

func TestPlan_EmptyDocument(t *testing.T) {
	doc := docFromPages("")
	if chunks := Plan(doc, DefaultConfig()); len(chunks) != 0 {
		t.Errorf("Expected no chunks for empty document, got %d", len(chunks))
	}
}

func TestPlan_NonPositiveChunkSizeUsesDefault(t *testing.T) {
	doc := docFromPages(wordRun(120))

	for _, size := range []int{0, -7} {
		chunks := Plan(doc, Config{ChunkSize: size})
		if len(chunks) != 3 {
			t.Errorf("ChunkSize %d: expected 3 default-sized chunks, got %d", size, len(chunks))
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	if got := DefaultConfig().ChunkSize; got != 50 {
		t.Errorf("Expected default chunk size 50, got %d", got)
	}
}

func TestGlobalWords_UsesPerPageNumbering(t *testing.T) {
	doc := docFromPages("a b", "c")

	words := GlobalWords(doc)
	if len(words) != doc.WordCount() {
		t.Errorf("GlobalWords returned %d words, document maps %d", len(words), doc.WordCount())
	}
	want := []string{"a", "b", "c"}
	for i, w := range want {
		if words[i] != w {
			t.Errorf("Word %d = %q, want %q", i, words[i], w)
		}
	}
}

func TestCalculateStats(t *testing.T) {
	doc := docFromPages(wordRun(23))
	chunks := Plan(doc, Config{ChunkSize: 10})

	stats := CalculateStats(chunks)

	if stats.TotalChunks != 3 {
		t.Errorf("Expected 3 chunks, got %d", stats.TotalChunks)
	}
	if stats.TotalWords != 23 {
		t.Errorf("Expected 23 words, got %d", stats.TotalWords)
	}
	if stats.MinWords != 3 || stats.MaxWords != 10 {
		t.Errorf("Expected min/max 3/10, got %d/%d", stats.MinWords, stats.MaxWords)
	}
	if stats.AvgWords != 7 {
		t.Errorf("Expected avg 7, got %d", stats.AvgWords)
	}
}

func TestCalculateStats_Empty(t *testing.T) {
	stats := CalculateStats(nil)
	if stats.TotalChunks != 0 || stats.MinWords != 0 || stats.MaxWords != 0 {
		t.Errorf("Expected zero stats, got %+v", stats)
	}
}
