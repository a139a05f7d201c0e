package model

import "math"

// BBox is an axis-aligned bounding box in corner form: [x0, y0, x1, y1].
// The array layout matches the wire format delivered by document extractors
// and expected by renderers, so it serializes to a plain JSON array.
type BBox [4]float64

// NewBBox creates a bounding box from corner coordinates.
func NewBBox(x0, y0, x1, y1 float64) BBox {
	return BBox{x0, y0, x1, y1}
}

// X0 returns the left edge X coordinate.
func (b BBox) X0() float64 { return b[0] }

// Y0 returns the top edge Y coordinate.
func (b BBox) Y0() float64 { return b[1] }

// X1 returns the right edge X coordinate.
func (b BBox) X1() float64 { return b[2] }

// Y1 returns the bottom edge Y coordinate.
func (b BBox) Y1() float64 { return b[3] }

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 { return b[2] - b[0] }

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 { return b[3] - b[1] }

// Area returns the area of the bounding box.
func (b BBox) Area() float64 {
	return b.Width() * b.Height()
}

// IsZero returns true if the box is the all-zero default assigned to spans
// that arrived without position data.
func (b BBox) IsZero() bool {
	return b == BBox{}
}

// Intersects checks if two bounding boxes overlap.
func (b BBox) Intersects(other BBox) bool {
	return !(b[2] < other[0] || b[0] > other[2] ||
		b[3] < other[1] || b[1] > other[3])
}

// Union returns the smallest box containing both boxes.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		math.Min(b[0], other[0]),
		math.Min(b[1], other[1]),
		math.Max(b[2], other[2]),
		math.Max(b[3], other[3]),
	}
}
