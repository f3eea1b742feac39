//go:build !tinygo

package hal

import "image"

// hostScreen models one VRAM-backed bitmap. The adapter writes it and the
// window or screenshot code reads it, always from the runner's goroutine.
type hostScreen struct {
	recipe ScreenRecipe
	pix    []uint16
}

func newHostScreen(r ScreenRecipe) *hostScreen {
	return &hostScreen{
		recipe: r,
		pix:    make([]uint16, BitmapStride*BitmapRows),
	}
}

func (s *hostScreen) Position() Position  { return s.recipe.Position }
func (s *hostScreen) Engine() Engine      { return s.recipe.Engine }
func (s *hostScreen) Format() PixelFormat { return PixelFormatARGB1555 }
func (s *hostScreen) Pixels() []uint16    { return s.pix }

// expand renders the visible area into img, which must be ScreenWidth x ScreenHeight.
func (s *hostScreen) expand(img *image.RGBA) {
	expandARGB1555(img.Pix, s.pix, s.recipe.Mode)
}

func (s *hostScreen) image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	s.expand(img)
	return img
}
