package model

// Page represents a single page with its positioned text elements and the
// word map built during indexing.
type Page struct {
	// Number is the 1-indexed page number.
	Number int `json:"page_number"`

	// Width and Height are the page dimensions in points.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Elements is the ordered list of text elements in extraction order.
	Elements []TextElement `json:"elements"`

	// FullText is the elements' texts joined with single spaces, in order.
	FullText string `json:"full_text"`

	// WordMap maps a page-relative word index to the ids of the elements
	// that overlap that word. Every element's WordIndex lies in
	// [0, word count of FullText).
	WordMap map[int][]int `json:"word_map"`
}

// ElementByID returns the element with the given document-wide id, or false
// if it does not live on this page.
func (p *Page) ElementByID(id int) (TextElement, bool) {
	for _, elem := range p.Elements {
		if elem.ID == id {
			return elem, true
		}
	}
	return TextElement{}, false
}
