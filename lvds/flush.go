package lvds

import "ndsgui/gui"

// Ready receives the flush-ready signal.
type Ready interface {
	FlushReady()
}

// Flush converts the inclusive area of px (row stride 256) into the surface
// id using the active orientation's transform, then signals r exactly once.
//
// The caller guarantees area lies within the display's logical extent
// (256x192, or 192x256 when rotated); nothing is bounds-checked.
func (d *Driver) Flush(id SurfaceID, r Ready, area gui.Area, px []uint16) {
	if s := d.surfaces[id]; s != nil {
		offset := modes[d.orientation].offset
		dst := s.pix
		for y := int(area.Y1); y <= int(area.Y2); y++ {
			row := y * gui.BufferStride
			for x := int(area.X1); x <= int(area.X2); x++ {
				dst[offset(x, y)] = ConvertColor(px[row+x])
			}
		}
	}
	r.FlushReady()
}
