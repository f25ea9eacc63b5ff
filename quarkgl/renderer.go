package quarkgl

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it; the surface and depth buffer are only
// reallocated by SetSize.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	ClearColor Color

	surface  *Surface
	depthBuf []float32
	frames   uint64
}

// NewRenderer creates a renderer with depth testing on and no surface.
// Call SetSize before the first Render.
func NewRenderer() *Renderer {
	return &Renderer{
		Mode:       RenderSolidFlat,
		Depth:      true,
		ClearColor: RGB(0, 0, 0),
	}
}

// SetSize (re)allocates the surface and depth buffer. Sizes below one pixel
// leave the renderer without a surface.
func (r *Renderer) SetSize(w, h int) {
	if w <= 0 || h <= 0 {
		r.surface = nil
		r.depthBuf = nil
		return
	}
	if sw, sh := r.surface.Size(); sw == w && sh == h {
		return
	}
	r.surface = newSurface(w, h)
	r.depthBuf = make([]float32, w*h)
}

// Surface returns the drawable element. It stays the same object across
// frames until SetSize changes the dimensions.
func (r *Renderer) Surface() *Surface { return r.surface }

// Frames returns how many times Render has drawn into the surface.
func (r *Renderer) Frames() uint64 { return r.frames }

// SetRenderMode switches between filled triangles and triangle edges.
// Wireframe lines skip the depth test.
func (r *Renderer) SetRenderMode(m RenderMode) { r.Mode = m }

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Render draws the scene from the camera into the surface.
func (r *Renderer) Render(s *Scene, cam *Camera) {
	if r == nil || s == nil || cam == nil || r.surface == nil {
		return
	}
	w, h := r.surface.Size()
	if w <= 0 || h <= 0 {
		return
	}
	r.surface.Clear(r.ClearColor)
	if r.Depth {
		r.clearDepth()
	}

	viewProj := Mat4Mul(cam.Projection(), cam.View())
	for _, m := range s.Children() {
		if m == nil || !m.Visible || m.Geometry == nil {
			continue
		}
		r.renderMesh(r.surface, w, h, viewProj, m, s.Light)
	}
	r.frames++
}

func (r *Renderer) renderMesh(t Target, w, h int, viewProj Mat4, m *Mesh, light Light) {
	verts, indices := m.Geometry.Triangles()
	if len(verts) == 0 || len(indices) < 3 {
		return
	}
	mat := m.Material
	if mat == nil {
		mat = NewBasicMaterial(RGB(0xFF, 0xFF, 0xFF))
	}

	model := m.Matrix()
	mvp := Mat4Mul(viewProj, model)

	for i := 0; i+2 < len(indices); i += 3 {
		i0 := int(indices[i+0])
		i1 := int(indices[i+1])
		i2 := int(indices[i+2])
		if i0 >= len(verts) || i1 >= len(verts) || i2 >= len(verts) {
			continue
		}

		v0 := verts[i0]
		v1 := verts[i1]
		v2 := verts[i2]

		p0 := Mat4MulV4(mvp, Vec4{X: v0.Pos.X, Y: v0.Pos.Y, Z: v0.Pos.Z, W: 1})
		p1 := Mat4MulV4(mvp, Vec4{X: v1.Pos.X, Y: v1.Pos.Y, Z: v1.Pos.Z, W: 1})
		p2 := Mat4MulV4(mvp, Vec4{X: v2.Pos.X, Y: v2.Pos.Y, Z: v2.Pos.Z, W: 1})

		ndc0, ok0 := clipToNDC(p0)
		ndc1, ok1 := clipToNDC(p1)
		ndc2, ok2 := clipToNDC(p2)
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		x0, y0 := ndcToScreen(ndc0, w, h)
		x1, y1 := ndcToScreen(ndc1, w, h)
		x2, y2 := ndcToScreen(ndc2, w, h)

		c := mat.Color
		if mat.Kind == MaterialLambert {
			n := worldNormal(model, v0.Pos, v1.Pos, v2.Pos)
			c = c.MulScalar(lightIntensity(light, n))
		}

		if r.Mode == RenderWireframe {
			r.drawLine(t, x0, y0, x1, y1, c)
			r.drawLine(t, x1, y1, x2, y2, c)
			r.drawLine(t, x2, y2, x0, y0, c)
			continue
		}
		r.fillTriangle(t, w, h, x0, y0, ndc0.Z, x1, y1, ndc1.Z, x2, y2, ndc2.Z, c)
	}
}

type ndcPoint struct {
	X, Y, Z float32
}

// clipToNDC rejects vertices on or behind the eye plane.
func clipToNDC(p Vec4) (ndcPoint, bool) {
	if p.W <= 0 {
		return ndcPoint{}, false
	}
	invW := 1 / p.W
	return ndcPoint{X: p.X * invW, Y: p.Y * invW, Z: p.Z * invW}, true
}

func ndcToScreen(p ndcPoint, w, h int) (x, y int) {
	sx := (p.X*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p.Y*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5)
}

func worldNormal(model Mat4, a, b, c Vec3) Vec3 {
	tr := func(v Vec3) Vec3 {
		p := Mat4MulV4(model, Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1})
		return V3(p.X, p.Y, p.Z)
	}
	wa, wb, wc := tr(a), tr(b), tr(c)
	return Normalize(Cross(wb.Sub(wa), wc.Sub(wa)))
}

func (r *Renderer) depthTest(w int, x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	idx := y*w + x
	if x < 0 || y < 0 || x >= w || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is in [-1,1]; store it as [0,1].
	d := z*0.5 + 0.5
	if d < 0 || d > 1 {
		return false
	}
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

func (r *Renderer) drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *Renderer) fillTriangle(t Target, w, h int, x0, y0 int, z0 float32, x1, y1 int, z1 float32, x2, y2 int, z2 float32, c Color) {
	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	// Rasterize both windings; the depth buffer resolves visibility.
	if area < 0 {
		x1, y1, z1, x2, y2, z2 = x2, y2, z2, x1, y1, z1
		area = -area
	}

	minX, maxX := min3(x0, x1, x2), max3(x0, x1, x2)
	minY, maxY := min3(y0, y1, y2), max3(y0, y1, y2)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	invArea := 1.0 / float32(area)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			z := float32(w0)*invArea*z0 + float32(w1)*invArea*z1 + float32(w2)*invArea*z2
			if !r.depthTest(w, x, y, z) {
				continue
			}
			t.SetPixel(x, y, c)
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}
