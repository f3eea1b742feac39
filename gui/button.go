package gui

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	buttonFace   = color.RGBA{R: 0x2E, G: 0x6B, B: 0xD8, A: 0xFF}
	buttonFocus  = color.RGBA{R: 0xFF, G: 0xD2, B: 0x3F, A: 0xFF}
	buttonText   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	buttonActive = color.RGBA{R: 0x1C, G: 0x45, B: 0x94, A: 0xFF}
)

// Button is a filled rectangle with a centered label.
type Button struct {
	d       *Display
	bounds  Area
	label   string
	onClick func()
	focused bool
	clicks  int
}

// NewButton adds a button to d.
func NewButton(d *Display, bounds Area, label string, onClick func()) *Button {
	b := &Button{d: d, bounds: bounds, label: label, onClick: onClick}
	d.Add(b)
	return b
}

func (b *Button) Bounds() Area { return b.bounds }

// SetBounds moves the button, redrawing both the old and new area.
func (b *Button) SetBounds(a Area) {
	b.d.Invalidate(b.bounds)
	b.bounds = a
	b.d.Invalidate(a)
}

func (b *Button) SetLabel(s string) {
	b.label = s
	b.d.Invalidate(b.bounds)
}

func (b *Button) SetFocused(focused bool) {
	b.focused = focused
	b.d.Invalidate(b.bounds)
}

// Click runs the handler; the face alternates shade on each click.
func (b *Button) Click() {
	b.clicks++
	b.d.Invalidate(b.bounds)
	if b.onClick != nil {
		b.onClick()
	}
}

func (b *Button) Draw(c *Canvas) {
	face := buttonFace
	if b.clicks%2 == 1 {
		face = buttonActive
	}
	c.FillRGBA(b.bounds, face)
	if b.focused {
		c.Frame(b.bounds, buttonFocus)
	}

	font := &proggy.TinySZ8pt7b
	_, w := tinyfont.LineWidth(font, b.label)
	x := b.bounds.X1 + (b.bounds.Width()-int16(w))/2
	y := b.bounds.Y1 + (b.bounds.Height()+int16(font.YAdvance))/2 - 2
	tinyfont.WriteLine(c, font, x, y, b.label, buttonText)
}
