package hal

// visible reports whether a bitmap-layer pixel is drawn.
func visible(p uint16) bool {
	return p&0x8000 != 0
}

func rgb888From1555(p uint16) (r, g, b uint8) {
	rr := (p >> 10) & 0x1F
	gg := (p >> 5) & 0x1F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 31)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// expandARGB1555 writes the visible rows of src as RGBA into dst.
//
// Layer-composited screens show the backdrop (black) where bit 15 is clear.
func expandARGB1555(dst []byte, src []uint16, mode Mode) {
	n := ScreenWidth * ScreenHeight
	if len(src) < n || len(dst) < n*4 {
		return
	}
	for y := 0; y < ScreenHeight; y++ {
		row := y * BitmapStride
		for x := 0; x < ScreenWidth; x++ {
			p := src[row+x]
			j := (y*ScreenWidth + x) * 4
			if mode == ModeBitmapLayer && !visible(p) {
				dst[j+0], dst[j+1], dst[j+2] = 0, 0, 0
			} else {
				dst[j+0], dst[j+1], dst[j+2] = rgb888From1555(p)
			}
			dst[j+3] = 0xFF
		}
	}
}
