package quarkgl

// Euler is a rotation in radians applied in X, Y, Z order.
//
// Angles accumulate without wrapping.
type Euler struct {
	X, Y, Z float64
}

// Mesh pairs a geometry with a material and an object transform.
type Mesh struct {
	Geometry Geometry
	Material *Material

	Position Vec3
	Rotation Euler
	Scale    Vec3

	Visible bool
}

// NewMesh returns a visible mesh at the origin with unit scale.
func NewMesh(g Geometry, m *Material) *Mesh {
	if m == nil {
		m = NewBasicMaterial(RGB(0xFF, 0xFF, 0xFF))
	}
	return &Mesh{
		Geometry: g,
		Material: m,
		Scale:    V3(1, 1, 1),
		Visible:  true,
	}
}

// Matrix returns the model matrix T·R·S.
func (m *Mesh) Matrix() Mat4 {
	return Mat4Mul(Mat4Translate(m.Position), Mat4Mul(Mat4FromEuler(m.Rotation), Mat4Scale(m.Scale)))
}
