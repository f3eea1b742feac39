package gui

import "image"

// Area is a rectangle with inclusive bounds.
type Area struct {
	X1, Y1, X2, Y2 int16
}

// AreaXYWH returns the area of size w x h at (x, y).
func AreaXYWH(x, y, w, h int16) Area {
	return Area{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
}

func (a Area) Width() int16  { return a.X2 - a.X1 + 1 }
func (a Area) Height() int16 { return a.Y2 - a.Y1 + 1 }

// Empty reports whether a covers no pixel.
func (a Area) Empty() bool { return a.X2 < a.X1 || a.Y2 < a.Y1 }

// Contains reports whether p lies inside a.
func (a Area) Contains(p image.Point) bool {
	return p.X >= int(a.X1) && p.X <= int(a.X2) && p.Y >= int(a.Y1) && p.Y <= int(a.Y2)
}

// Intersect returns the overlap of a and b, which may be empty.
func (a Area) Intersect(b Area) Area {
	return Area{
		X1: max16(a.X1, b.X1),
		Y1: max16(a.Y1, b.Y1),
		X2: min16(a.X2, b.X2),
		Y2: min16(a.Y2, b.Y2),
	}
}

// Union returns the smallest area covering a and b.
func (a Area) Union(b Area) Area {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	return Area{
		X1: min16(a.X1, b.X1),
		Y1: min16(a.Y1, b.Y1),
		X2: max16(a.X2, b.X2),
		Y2: max16(a.Y2, b.Y2),
	}
}

// Rect converts a to a half-open image.Rectangle.
func (a Area) Rect() image.Rectangle {
	return image.Rect(int(a.X1), int(a.Y1), int(a.X2)+1, int(a.Y2)+1)
}

func min16(a, b int16) int16 {
	if a < b {
		return a
	}
	return b
}

func max16(a, b int16) int16 {
	if a > b {
		return a
	}
	return b
}
