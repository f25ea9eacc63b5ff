package quarkgl

import "image"

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// RenderMode selects the rasterization mode.
type RenderMode uint8

const (
	RenderWireframe RenderMode = iota
	RenderSolidFlat
)

// Surface is the drawable the renderer writes into. It is backed by an
// image.RGBA so hosts can present or encode it directly.
type Surface struct {
	img *image.RGBA
}

func newSurface(w, h int) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (s *Surface) Size() (w, h int) {
	if s == nil || s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the backing image. Pixels change on every Render.
func (s *Surface) Image() *image.RGBA {
	if s == nil {
		return nil
	}
	return s.img
}

func (s *Surface) Clear(c Color) {
	if s == nil || s.img == nil {
		return
	}
	pix := s.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

func (s *Surface) SetPixel(x, y int, c Color) {
	if s == nil || s.img == nil {
		return
	}
	w, h := s.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	off := s.img.PixOffset(x, y)
	s.img.Pix[off+0] = c.R
	s.img.Pix[off+1] = c.G
	s.img.Pix[off+2] = c.B
	s.img.Pix[off+3] = c.A
}

// Pixel returns the color at (x, y), or the zero Color when out of bounds.
func (s *Surface) Pixel(x, y int) Color {
	if s == nil || s.img == nil {
		return Color{}
	}
	w, h := s.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return Color{}
	}
	off := s.img.PixOffset(x, y)
	p := s.img.Pix[off : off+4 : off+4]
	return Color{R: p[0], G: p[1], B: p[2], A: p[3]}
}
