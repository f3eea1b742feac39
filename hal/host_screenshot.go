//go:build !tinygo

package hal

import (
	"fmt"

	"github.com/fogleman/gg"
)

// screenGap is the hinge drawn between the two LCDs, in pixels.
const screenGap = 16

func (h *hostHAL) screenshot(path string) error {
	dc := gg.NewContext(ScreenWidth, ScreenHeight*2+screenGap)
	dc.SetRGB(0.12, 0.12, 0.14)
	dc.Clear()

	if h.upper != nil {
		dc.DrawImage(h.upper.image(), 0, 0)
	}
	if h.lower != nil {
		dc.DrawImage(h.lower.image(), 0, ScreenHeight+screenGap)
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save screenshot: %w", err)
	}
	return nil
}
