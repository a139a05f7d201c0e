package model

import (
	"encoding/json"
	"testing"
)

func TestBBox(t *testing.T) {
	b := NewBBox(10, 20, 110, 40)

	if b.X0() != 10 || b.Y0() != 20 || b.X1() != 110 || b.Y1() != 40 {
		t.Errorf("Unexpected corners: %v", b)
	}
	if b.Width() != 100 {
		t.Errorf("Width() = %v, want 100", b.Width())
	}
	if b.Height() != 20 {
		t.Errorf("Height() = %v, want 20", b.Height())
	}
	if b.Area() != 2000 {
		t.Errorf("Area() = %v, want 2000", b.Area())
	}
	if b.IsZero() {
		t.Error("Non-empty box reported as zero")
	}
	if !(BBox{}).IsZero() {
		t.Error("Zero box not reported as zero")
	}
}

func TestBBox_Intersects(t *testing.T) {
	tests := []struct {
		name string
		a, b BBox
		want bool
	}{
		{"overlapping", NewBBox(0, 0, 10, 10), NewBBox(5, 5, 15, 15), true},
		{"touching edges", NewBBox(0, 0, 10, 10), NewBBox(10, 0, 20, 10), true},
		{"disjoint x", NewBBox(0, 0, 10, 10), NewBBox(11, 0, 20, 10), false},
		{"disjoint y", NewBBox(0, 0, 10, 10), NewBBox(0, 11, 10, 20), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects not symmetric")
			}
		})
	}
}

func TestBBox_Union(t *testing.T) {
	got := NewBBox(0, 0, 10, 10).Union(NewBBox(5, -5, 20, 8))
	want := NewBBox(0, -5, 20, 10)
	if got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
}

func TestBBox_JSONIsArray(t *testing.T) {
	data, err := json.Marshal(NewBBox(1, 2, 3, 4))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "[1,2,3,4]" {
		t.Errorf("BBox serializes as %s, want [1,2,3,4]", data)
	}

	var b BBox
	if err := json.Unmarshal(data, &b); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if b != NewBBox(1, 2, 3, 4) {
		t.Errorf("Round trip changed box: %v", b)
	}
}

func TestChunk_WordCount(t *testing.T) {
	c := Chunk{WordStart: 50, WordEnd: 70}
	if c.WordCount() != 20 {
		t.Errorf("WordCount() = %d, want 20", c.WordCount())
	}
}

func TestPage_ElementByID(t *testing.T) {
	page := Page{
		Number: 1,
		Elements: []TextElement{
			{ID: 3, Text: "a"},
			{ID: 4, Text: "b"},
		},
	}

	if elem, ok := page.ElementByID(4); !ok || elem.Text != "b" {
		t.Errorf("ElementByID(4) = %+v, %v", elem, ok)
	}
	if _, ok := page.ElementByID(9); ok {
		t.Error("Expected miss for absent id")
	}
}
