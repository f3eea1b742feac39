package lvds

// ConvertColor repacks a toolkit pixel (red in bits 4..0, green in 10..5,
// blue in 15..11) into the hardware's opaque ARGB1555 layout.
//
// The low bit of the 6-bit green channel is dropped; there is no rounding.
func ConvertColor(c uint16) uint16 {
	red := c & 0x1F
	green := c >> 6 & 0x1F
	blue := c >> 11 & 0x1F

	return 1<<15 | red<<10 | green<<5 | blue
}
