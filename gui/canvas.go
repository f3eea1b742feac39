package gui

import "image/color"

// Color16 packs c into the render buffer layout: blue in bits 15..11,
// green in 10..5, red in 4..0.
func Color16(c color.RGBA) uint16 {
	return uint16(c.B>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.R>>3)
}

// Canvas is a clipped view of a render buffer handed to Widget.Draw.
// It satisfies drivers.Displayer so tinyfont can draw on it.
type Canvas struct {
	buf  []uint16
	clip Area
}

// Clip returns the area drawing is limited to.
func (c *Canvas) Clip() Area { return c.clip }

// Size reports the extent of the clip's far corner.
func (c *Canvas) Size() (x, y int16) { return c.clip.X2 + 1, c.clip.Y2 + 1 }

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.set(x, y, Color16(col))
}

func (c *Canvas) set(x, y int16, px uint16) {
	if x < c.clip.X1 || x > c.clip.X2 || y < c.clip.Y1 || y > c.clip.Y2 {
		return
	}
	c.buf[int(y)*BufferStride+int(x)] = px
}

// Display is a no-op; the owning display flushes after all widgets draw.
func (c *Canvas) Display() error { return nil }

// Fill paints a (clipped) with a packed pixel.
func (c *Canvas) Fill(a Area, px uint16) {
	a = a.Intersect(c.clip)
	for y := a.Y1; y <= a.Y2; y++ {
		row := int(y) * BufferStride
		for x := a.X1; x <= a.X2; x++ {
			c.buf[row+int(x)] = px
		}
	}
}

// FillRGBA paints a with col.
func (c *Canvas) FillRGBA(a Area, col color.RGBA) { c.Fill(a, Color16(col)) }

// Frame draws a one pixel border just inside a.
func (c *Canvas) Frame(a Area, col color.RGBA) {
	px := Color16(col)
	c.Fill(Area{X1: a.X1, Y1: a.Y1, X2: a.X2, Y2: a.Y1}, px)
	c.Fill(Area{X1: a.X1, Y1: a.Y2, X2: a.X2, Y2: a.Y2}, px)
	c.Fill(Area{X1: a.X1, Y1: a.Y1, X2: a.X1, Y2: a.Y2}, px)
	c.Fill(Area{X1: a.X2, Y1: a.Y1, X2: a.X2, Y2: a.Y2}, px)
}

// Blit copies a w x h block of packed pixels with its top-left at (x, y).
func (c *Canvas) Blit(x, y, w, h int16, px []uint16) {
	dst := AreaXYWH(x, y, w, h).Intersect(c.clip)
	for yy := dst.Y1; yy <= dst.Y2; yy++ {
		src := int(yy-y) * int(w)
		row := int(yy) * BufferStride
		for xx := dst.X1; xx <= dst.X2; xx++ {
			c.buf[row+int(xx)] = px[src+int(xx-x)]
		}
	}
}
