package gui

// Clickable widgets react to a pointer press and release inside their bounds,
// or Enter while focused.
type Clickable interface {
	Click()
}

// Indev is an input device polled through its read callback.
type Indev struct {
	tk    *Toolkit
	typ   IndevType
	read  ReadFunc
	disp  *Display
	group *Group
	timer *Timer

	last     IndevData
	target   Widget
	listener func(IndevData)
}

// NewIndev creates an input device serviced every DefaultRefreshPeriod ms.
// Pointers attach to the default display, keypads to the default group.
func (tk *Toolkit) NewIndev(typ IndevType, read ReadFunc) *Indev {
	in := &Indev{tk: tk, typ: typ, read: read}
	switch typ {
	case IndevPointer:
		in.disp = tk.defDisplay
	case IndevKeypad:
		in.group = tk.defaultGroup
	}
	in.timer = tk.NewTimer(DefaultRefreshPeriod, in.Read)
	tk.indevs = append(tk.indevs, in)
	return in
}

func (in *Indev) Type() IndevType { return in.typ }

func (in *Indev) SetReadFunc(f ReadFunc) { in.read = f }

func (in *Indev) SetDisplay(d *Display) { in.disp = d }

func (in *Indev) SetGroup(g *Group) { in.group = g }

func (in *Indev) Group() *Group { return in.group }

// SetListener registers f to observe every press edge.
func (in *Indev) SetListener(f func(IndevData)) { in.listener = f }

// Last returns the most recent data read.
func (in *Indev) Last() IndevData { return in.last }

// Read polls the device once and dispatches the result.
func (in *Indev) Read() {
	if in.read == nil {
		return
	}
	var data IndevData
	in.read(in, &data)

	switch in.typ {
	case IndevPointer:
		in.pointer(data)
	case IndevKeypad:
		in.keypad(data)
	}
	in.last = data
}

func (in *Indev) pointer(data IndevData) {
	if in.disp == nil {
		return
	}
	p := in.disp.toLogical(data.Point)

	switch {
	case data.State == Pressed && in.last.State == Released:
		in.target = in.disp.hit(p)
		in.notify(IndevData{State: Pressed, Point: p})
	case data.State == Released && in.last.State == Pressed:
		t := in.target
		in.target = nil
		if t == nil {
			return
		}
		// Release reports no coordinate; use the last pressed point.
		lp := in.disp.toLogical(in.last.Point)
		if c, ok := t.(Clickable); ok && t.Bounds().Contains(lp) {
			c.Click()
		}
	}
}

func (in *Indev) keypad(data IndevData) {
	if data.State != Pressed {
		return
	}
	if in.last.State == Pressed && in.last.Key == data.Key {
		return
	}
	in.notify(data)
	if in.group == nil {
		return
	}
	if data.Key == KeyEnter {
		if c, ok := in.group.Focused().(Clickable); ok {
			c.Click()
			return
		}
	}
	in.group.send(data.Key)
}

func (in *Indev) notify(data IndevData) {
	if in.listener != nil {
		in.listener(data)
	}
}
