package model

// TextElement is a single positioned run of text on a page, as delivered by
// document extraction. Element ids are assigned sequentially across the whole
// document in extraction order and are never reused.
//
// A TextElement is immutable once indexed, except for WordIndex, which the
// indexer assigns exactly once. An element that overlaps several words keeps
// only its final word's index; the full set of overlapped words is recorded
// in the owning page's word map.
type TextElement struct {
	// ID is the document-wide element id, monotonic in extraction order.
	ID int `json:"element_id"`

	// Text is the element's text content.
	Text string `json:"text"`

	// BBox is the element's position on the page as [x0, y0, x1, y1].
	BBox BBox `json:"bbox"`

	// Font is the font name reported by extraction.
	Font string `json:"font"`

	// Size is the font size in points.
	Size float64 `json:"size"`

	// PageNumber is the 1-indexed page the element belongs to.
	PageNumber int `json:"page_number"`

	// WordIndex is the page-relative index of the last word this element
	// overlaps, assigned during indexing.
	WordIndex int `json:"word_index"`
}
