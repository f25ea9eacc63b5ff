package app

import (
	"fmt"
	"image/color"

	"spincube/fonts/font3x5"
	"spincube/quarkgl"

	"tinygo.org/x/tinyfont"
)

var hudColor = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}

type hud struct {
	font tinyfont.Fonter
	disp surfaceDisplayer
}

func newHUD() *hud {
	return &hud{font: font3x5.Font}
}

func (h *hud) draw(s *quarkgl.Surface, frame uint64, rot quarkgl.Euler) {
	if s == nil {
		return
	}
	h.disp.s = s
	lineH := int16(h.font.GetYAdvance())
	tinyfont.WriteLine(&h.disp, h.font, 4, 4+lineH, fmt.Sprintf("FRAME %d", frame), hudColor)
	tinyfont.WriteLine(&h.disp, h.font, 4, 4+2*lineH, fmt.Sprintf("RX %.2f RY %.2f", rot.X, rot.Y), hudColor)
}

// surfaceDisplayer adapts a render surface to drivers.Displayer.
type surfaceDisplayer struct {
	s *quarkgl.Surface
}

func (d *surfaceDisplayer) Size() (x, y int16) {
	w, h := d.s.Size()
	return int16(w), int16(h)
}

func (d *surfaceDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.s.SetPixel(int(x), int(y), quarkgl.RGBA(c.R, c.G, c.B, c.A))
}

func (d *surfaceDisplayer) Display() error { return nil }
