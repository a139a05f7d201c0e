package model

// Document represents a complete indexed document.
//
// FullText is the pages' texts joined with newlines, in page order.
// WordToPage maps global word indices to 1-indexed page numbers. Global
// numbering is the concatenation of the per-page tokenizations, assigned
// sequentially in page order; it is not a re-tokenization of the
// newline-joined FullText. The two agree for whitespace-clean input, but
// per-page numbering is the authoritative one.
type Document struct {
	// Hash is the content hash of the raw input bytes, as lowercase hex.
	Hash string `json:"doc_hash"`

	// Pages is the ordered list of pages.
	Pages []Page `json:"pages"`

	// TotalPages is the page count.
	TotalPages int `json:"total_pages"`

	// FullText is the newline-joined page text.
	FullText string `json:"full_text"`

	// WordToPage maps global word index to owning page number.
	WordToPage map[int]int `json:"word_to_page"`
}

// PageCount returns the total number of pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// GetPage returns a page by number (1-indexed), or nil if out of range.
func (d *Document) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return &d.Pages[number-1]
}

// WordCount returns the total number of globally indexed words.
func (d *Document) WordCount() int {
	return len(d.WordToPage)
}

// ElementByID returns the element with the given document-wide id.
func (d *Document) ElementByID(id int) (TextElement, bool) {
	for i := range d.Pages {
		if elem, ok := d.Pages[i].ElementByID(id); ok {
			return elem, true
		}
	}
	return TextElement{}, false
}
