package quarkgl

// Vertex is a mesh vertex.
type Vertex struct {
	Pos    Vec3
	Normal Vec3
	Color  Color
}

// Geometry supplies an indexed triangle list in object space.
type Geometry interface {
	Triangles() (verts []Vertex, indices []uint16)
}

// BoxGeometry is an axis-aligned box centred on the origin.
type BoxGeometry struct {
	Width, Height, Depth float64

	verts   []Vertex
	indices []uint16
}

// NewBoxGeometry builds a box with the given extents along X, Y and Z.
//
// Each face gets its own four vertices so face normals stay flat.
func NewBoxGeometry(width, height, depth float64) *BoxGeometry {
	g := &BoxGeometry{Width: width, Height: height, Depth: depth}

	hx := Scalar(width / 2)
	hy := Scalar(height / 2)
	hz := Scalar(depth / 2)

	// Corners are listed counter-clockwise when viewed from outside.
	faces := []struct {
		n       Vec3
		corners [4]Vec3
	}{
		{V3(1, 0, 0), [4]Vec3{V3(hx, -hy, hz), V3(hx, -hy, -hz), V3(hx, hy, -hz), V3(hx, hy, hz)}},
		{V3(-1, 0, 0), [4]Vec3{V3(-hx, -hy, -hz), V3(-hx, -hy, hz), V3(-hx, hy, hz), V3(-hx, hy, -hz)}},
		{V3(0, 1, 0), [4]Vec3{V3(-hx, hy, hz), V3(hx, hy, hz), V3(hx, hy, -hz), V3(-hx, hy, -hz)}},
		{V3(0, -1, 0), [4]Vec3{V3(-hx, -hy, -hz), V3(hx, -hy, -hz), V3(hx, -hy, hz), V3(-hx, -hy, hz)}},
		{V3(0, 0, 1), [4]Vec3{V3(-hx, -hy, hz), V3(hx, -hy, hz), V3(hx, hy, hz), V3(-hx, hy, hz)}},
		{V3(0, 0, -1), [4]Vec3{V3(hx, -hy, -hz), V3(-hx, -hy, -hz), V3(-hx, hy, -hz), V3(hx, hy, -hz)}},
	}

	g.verts = make([]Vertex, 0, 24)
	g.indices = make([]uint16, 0, 36)
	for _, f := range faces {
		base := uint16(len(g.verts))
		for _, p := range f.corners {
			g.verts = append(g.verts, Vertex{Pos: p, Normal: f.n, Color: RGB(0xFF, 0xFF, 0xFF)})
		}
		g.indices = append(g.indices, base, base+1, base+2, base, base+2, base+3)
	}
	return g
}

func (g *BoxGeometry) Triangles() ([]Vertex, []uint16) { return g.verts, g.indices }
