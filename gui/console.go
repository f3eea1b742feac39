package gui

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

const consoleHistory = 32

// Console is a scrolling text panel backed by a tinyterm terminal that draws
// into the console's own pixel box.
type Console struct {
	d      *Display
	bounds Area
	box    *consoleBox
	term   *tinyterm.Terminal
	lines  []string
}

// NewConsole adds a console to d.
func NewConsole(d *Display, bounds Area) *Console {
	c := &Console{d: d}
	d.Add(c)
	c.SetBounds(bounds)
	return c
}

func (c *Console) Bounds() Area { return c.bounds }

// SetBounds resizes the console and replays the retained history into it.
func (c *Console) SetBounds(a Area) {
	c.d.Invalidate(c.bounds)
	c.bounds = a
	c.box = newConsoleBox(a.Width(), a.Height(), func() { c.d.Invalidate(c.bounds) })
	c.term = tinyterm.NewTerminal(c.box)
	c.term.Configure(&tinyterm.Config{
		Font:              &proggy.TinySZ8pt7b,
		FontHeight:        10,
		FontOffset:        7,
		UseSoftwareScroll: true,
	})
	for _, l := range c.lines {
		c.term.Write([]byte(l))
	}
	c.term.Display()
	c.d.Invalidate(a)
}

// Println appends a line.
func (c *Console) Println(args ...any) {
	c.write(fmt.Sprintln(args...))
}

// Printf appends formatted text; include "\n" to end the line.
func (c *Console) Printf(format string, args ...any) {
	c.write(fmt.Sprintf(format, args...))
}

func (c *Console) write(s string) {
	c.lines = append(c.lines, s)
	if len(c.lines) > consoleHistory {
		c.lines = c.lines[len(c.lines)-consoleHistory:]
	}
	c.term.Write([]byte(s))
	c.term.Display()
}

func (c *Console) Draw(cv *Canvas) {
	cv.Blit(c.bounds.X1, c.bounds.Y1, c.box.w, c.box.h, c.box.px)
}

// consoleBox is the tinyterm.Displayer a console's terminal renders into.
type consoleBox struct {
	w, h    int16
	px      []uint16
	present func()
}

func newConsoleBox(w, h int16, present func()) *consoleBox {
	return &consoleBox{w: w, h: h, px: make([]uint16, int(w)*int(h)), present: present}
}

func (b *consoleBox) Size() (x, y int16) { return b.w, b.h }

func (b *consoleBox) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	b.px[int(y)*int(b.w)+int(x)] = Color16(c)
}

func (b *consoleBox) Display() error {
	b.present()
	return nil
}

func (b *consoleBox) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	a := AreaXYWH(x, y, width, height).Intersect(Area{X2: b.w - 1, Y2: b.h - 1})
	px := Color16(c)
	for yy := a.Y1; yy <= a.Y2; yy++ {
		row := int(yy) * int(b.w)
		for xx := a.X1; xx <= a.X2; xx++ {
			b.px[row+int(xx)] = px
		}
	}
	return nil
}

// SetScroll is unused: the terminal is configured for software scrolling.
func (b *consoleBox) SetScroll(line int16) {}

func (b *consoleBox) SetRotation(rotation drivers.Rotation) error { return nil }

// Clear drops the history and blanks the panel.
func (c *Console) Clear() {
	c.lines = nil
	c.SetBounds(c.bounds)
}
