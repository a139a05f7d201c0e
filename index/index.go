package index

import (
	"encoding/hex"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/tsawler/cadence/model"
	"github.com/tsawler/cadence/text"
)

// DefaultFontSize is assumed for spans that arrive without size information.
const DefaultFontSize = 12

// RawSpan is one positioned run of text as delivered by a document
// extraction collaborator.
type RawSpan struct {
	Text string     `json:"text"`
	BBox model.BBox `json:"bbox"`
	Font string     `json:"font"`
	Size float64    `json:"size"`
}

// RawPage is one page of raw spans with its dimensions.
type RawPage struct {
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Spans  []RawSpan `json:"spans"`
}

// Hash returns the lowercase hex BLAKE3 digest of data. It is the content
// hash recorded on indexed documents and used for content-addressed audio
// cache keys.
func Hash(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Build indexes raw extracted pages into a Document. The document's content
// hash is computed from raw, the original input bytes; pass nil when no
// source bytes exist (for example, pasted text).
//
// Build never returns an error: malformed spans degrade to defaults per the
// package failure policy.
func Build(pages []RawPage, raw []byte) *model.Document {
	doc := &model.Document{
		Hash:       Hash(raw),
		Pages:      make([]model.Page, 0, len(pages)),
		TotalPages: len(pages),
		WordToPage: make(map[int]int),
	}

	nextID := 0
	for i, rp := range pages {
		page := buildPage(rp, i+1, &nextID)
		doc.Pages = append(doc.Pages, page)
	}

	// Global word numbering is the concatenation of the per-page
	// tokenizations, never a re-tokenization of the joined text.
	pageTexts := make([]string, len(doc.Pages))
	globalIdx := 0
	for i := range doc.Pages {
		pageTexts[i] = doc.Pages[i].FullText
		for j, n := 0, text.WordCount(doc.Pages[i].FullText); j < n; j++ {
			doc.WordToPage[globalIdx] = doc.Pages[i].Number
			globalIdx++
		}
	}
	doc.FullText = strings.Join(pageTexts, "\n")

	return doc
}

// buildPage indexes one page: joins kept spans into the page text, assigns
// element ids from the document-wide counter, and builds the word map.
func buildPage(rp RawPage, number int, nextID *int) model.Page {
	page := model.Page{
		Number:   number,
		Width:    rp.Width,
		Height:   rp.Height,
		Elements: make([]model.TextElement, 0, len(rp.Spans)),
		WordMap:  make(map[int][]int),
	}

	texts := make([]string, 0, len(rp.Spans))
	for _, span := range rp.Spans {
		t := strings.TrimSpace(span.Text)
		if t == "" {
			continue
		}
		size := span.Size
		if size == 0 {
			size = DefaultFontSize
		}
		page.Elements = append(page.Elements, model.TextElement{
			ID:         *nextID,
			Text:       t,
			BBox:       span.BBox,
			Font:       span.Font,
			Size:       size,
			PageNumber: number,
		})
		texts = append(texts, t)
		*nextID++
	}

	page.FullText = strings.Join(texts, " ")
	attributeWords(&page)

	return page
}

// attributeWords fills the page's word map and each element's WordIndex.
//
// Words and elements are both expressed as character intervals within the
// page text: tokens come from a forward scan, and element k spans
// [cursor, cursor+len(text)+1) where the +1 covers the joining space. Both
// interval sequences are sorted and non-overlapping, so a single merge pass
// finds every (word, element) overlap.
func attributeWords(page *model.Page) {
	tokens := text.Tokens(page.FullText)

	type interval struct{ start, end int }
	spans := make([]interval, len(page.Elements))
	cursor := 0
	for i := range page.Elements {
		end := cursor + text.RuneLen(page.Elements[i].Text) + 1
		spans[i] = interval{cursor, end}
		cursor = end
	}

	j := 0
	for w, tok := range tokens {
		// Skip elements that end at or before this word.
		for j < len(spans) && spans[j].end <= tok.Start {
			j++
		}
		for k := j; k < len(spans) && spans[k].start < tok.End; k++ {
			page.WordMap[w] = append(page.WordMap[w], page.Elements[k].ID)
			// Last overlapping word wins for multi-word elements.
			page.Elements[k].WordIndex = w
		}
	}
}
