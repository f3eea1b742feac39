package lvds

import "ndsgui/gui"

// ReadPointer reports the touchscreen. A latched touch is consumed: only the
// touch bit is removed from the latch.
func (d *Driver) ReadPointer(_ *gui.Indev, data *gui.IndevData) {
	if !d.latch.buttons.Has(ButtonTouch) {
		data.State = gui.Released
		return
	}
	data.State = gui.Pressed
	data.Point = d.latch.touch
	d.latch.remove(ButtonTouch)
}

// ReadKeypad reports one logical key per poll, chosen by the active
// orientation's priority order, then consumes all ten used buttons.
func (d *Driver) ReadKeypad(_ *gui.Indev, data *gui.IndevData) {
	if !d.latch.buttons.ContainsAny(UsedButtons) {
		data.State = gui.Released
		return
	}
	data.State = gui.Pressed
	data.Key, _ = modes[d.orientation].resolve(d.latch.buttons)
	d.latch.remove(UsedButtons)
}
