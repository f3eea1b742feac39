package gui

// Focusable widgets are told when keypad focus moves to or from them.
type Focusable interface {
	SetFocused(focused bool)
}

// KeyHandler widgets receive keys while focused.
type KeyHandler interface {
	HandleKey(k Key)
}

// Group is an ordered set of widgets sharing keypad focus.
type Group struct {
	members []Widget
	focus   int
}

// NewGroup returns an empty focus group.
func (tk *Toolkit) NewGroup() *Group {
	return &Group{}
}

// Add appends w; the first widget added gets focus.
func (g *Group) Add(w Widget) {
	g.members = append(g.members, w)
	if len(g.members) == 1 {
		g.setFocus(0)
	}
}

// Focused returns the focused widget, or nil for an empty group.
func (g *Group) Focused() Widget {
	if len(g.members) == 0 {
		return nil
	}
	return g.members[g.focus]
}

func (g *Group) FocusNext() {
	if len(g.members) == 0 {
		return
	}
	g.setFocus((g.focus + 1) % len(g.members))
}

func (g *Group) FocusPrev() {
	if len(g.members) == 0 {
		return
	}
	g.setFocus((g.focus + len(g.members) - 1) % len(g.members))
}

func (g *Group) setFocus(i int) {
	if f, ok := g.Focused().(Focusable); ok {
		f.SetFocused(false)
	}
	g.focus = i
	if f, ok := g.Focused().(Focusable); ok {
		f.SetFocused(true)
	}
}

// send routes k: Next/Prev move focus, everything else goes to the focused widget.
func (g *Group) send(k Key) {
	switch k {
	case KeyNext:
		g.FocusNext()
	case KeyPrev:
		g.FocusPrev()
	default:
		if h, ok := g.Focused().(KeyHandler); ok {
			h.HandleKey(k)
		}
	}
}
