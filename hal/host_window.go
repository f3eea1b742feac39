//go:build !tinygo && cgo

package hal

import (
	"image"
	"os"

	"ndsgui/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window showing both screens stacked, forwarding
// keyboard input as buttons and left-clicks on the lower screen as touches.
// It blocks until the window closes or the step function fails.
func RunWindow(cfg HostConfig, newApp func(HAL) func() error) error {
	bindings, err := keyBindings(cfg.Keys)
	if err != nil {
		return err
	}
	h, err := newHostHAL(cfg.Engine, os.Stdout)
	if err != nil {
		return err
	}
	step := newApp(h)

	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}

	g := &hostGame{h: h, step: step, bindings: bindings}
	ebiten.SetWindowTitle("ndsgui (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(ScreenWidth*scale, (ScreenHeight*2+screenGap)*scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h        *hostHAL
	step     func() error
	bindings map[Keys]ebiten.Key

	upper, lower *screenView
}

type screenView struct {
	img *image.RGBA
	eb  *ebiten.Image
}

func newScreenView() *screenView {
	return &screenView{
		img: image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight)),
		eb:  ebiten.NewImage(ScreenWidth, ScreenHeight),
	}
}

func (v *screenView) draw(dst *ebiten.Image, s *hostScreen, y int) {
	s.expand(v.img)
	v.eb.WritePixels(v.img.Pix)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(y))
	dst.DrawImage(v.eb, op)
}

func (g *hostGame) Update() error {
	g.h.input.pollEbiten(g.bindings, image.Pt(0, ScreenHeight+screenGap))
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.upper == nil {
		g.upper = newScreenView()
		g.lower = newScreenView()
	}
	if g.h.upper != nil {
		g.upper.draw(screen, g.h.upper, 0)
	}
	if g.h.lower != nil {
		g.lower.draw(screen, g.h.lower, ScreenHeight+screenGap)
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight*2 + screenGap
}
