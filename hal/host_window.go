//go:build cgo

package hal

import (
	"spincube/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window sized to the viewport and runs one
// animation frame per display refresh. setup is called once before the first
// frame. It blocks until the window closes.
func RunWindow(cfg Config, setup func(Host) error) error {
	h := newHost(cfg)
	if setup != nil {
		if err := setup(h); err != nil {
			return err
		}
	}

	g := &hostGame{h: h}
	ebiten.SetWindowTitle("spincube (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.width, h.height)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h      *hostHAL
	images map[Surface]*ebiten.Image
}

func (g *hostGame) Update() error {
	g.h.frames.run()
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.images == nil {
		g.images = make(map[Surface]*ebiten.Image)
	}
	for _, s := range g.h.display.snapshot() {
		src := s.Image()
		if src == nil {
			continue
		}
		w, h := src.Bounds().Dx(), src.Bounds().Dy()
		img := g.images[s]
		if img == nil || img.Bounds().Dx() != w || img.Bounds().Dy() != h {
			if img != nil {
				img.Deallocate()
			}
			img = ebiten.NewImage(w, h)
			g.images[s] = img
		}
		img.WritePixels(src.Pix)

		// Surfaces fill the viewport; scale if one was sized differently.
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(g.h.width)/float64(w), float64(g.h.height)/float64(h))
		screen.DrawImage(img, op)
	}
}

// Layout keeps the logical screen at the setup viewport. Window resizes are
// scaled by ebiten and never reach the demo.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.width, g.h.height
}
