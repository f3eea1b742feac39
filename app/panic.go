package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"ndsgui/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// guardStep turns a panic inside step into an error, logging the stack and
// painting it straight onto the hardware bitmap of the first available screen.
func guardStep(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			stack := debug.Stack()
			reportPanic(h, v, stack)
			err = fmt.Errorf("panic: %v", v)
		}()
		return step()
	}
}

func reportPanic(h hal.HAL, v any, stack []byte) {
	lines := []string{"ndsgui panic:", fmt.Sprintf("%v", v), "stack:"}
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, strings.TrimSpace(line))
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	s := h.Upper()
	if s == nil {
		s = h.Lower()
	}
	if s == nil {
		return
	}
	d := panicDisplay{pix: s.Pixels()}
	d.clear(color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})

	font := &proggy.TinySZ8pt7b
	const fontHeight, fontOffset = 10, 7
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 {
		return
	}
	cols := int16(hal.ScreenWidth) / fontWidth
	fg := color.RGBA{A: 0xFF}

	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if y+fontHeight > hal.ScreenHeight {
				return
			}
			chunk, rest := takeRunes(line, cols)
			drawTextLine(d, font, fontWidth, 0, y+fontOffset, chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
}

func drawTextLine(d panicDisplay, font tinyfont.Fonter, fontWidth, x0, y0 int16, s string, fg color.RGBA) {
	x := x0
	for _, r := range s {
		tinyfont.DrawChar(d, font, x, y0, r, fg)
		x += fontWidth
	}
}

// panicDisplay draws opaque ARGB1555 pixels into a screen bitmap.
type panicDisplay struct {
	pix []uint16
}

func (d panicDisplay) Size() (x, y int16) { return hal.ScreenWidth, hal.ScreenHeight }

func (d panicDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= hal.ScreenWidth || y >= hal.ScreenHeight {
		return
	}
	d.pix[int(y)*hal.BitmapStride+int(x)] = argb1555(c)
}

func (d panicDisplay) Display() error { return nil }

func (d panicDisplay) clear(c color.RGBA) {
	px := argb1555(c)
	for i := 0; i < hal.BitmapStride*hal.ScreenHeight; i++ {
		d.pix[i] = px
	}
}

func argb1555(c color.RGBA) uint16 {
	return 1<<15 | uint16(c.R>>3)<<10 | uint16(c.G>>3)<<5 | uint16(c.B>>3)
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
