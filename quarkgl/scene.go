package quarkgl

// Scene is the root of the scene graph.
//
// It holds meshes in insertion order; draw order is settled by the depth
// buffer, not by position in the list.
type Scene struct {
	Light Light

	children []*Mesh
}

// NewScene returns an empty scene with lighting off.
func NewScene() *Scene {
	return &Scene{
		Light: Light{
			Mode:      LightOff,
			Ambient:   Scalar(0.25),
			Dir:       Normalize(V3(-1, -1, -1)),
			DirAmount: Scalar(0.75),
		},
	}
}

// Add appends meshes to the scene. Nil meshes and meshes already present are
// skipped.
func (s *Scene) Add(meshes ...*Mesh) {
	for _, m := range meshes {
		if m == nil || s.index(m) >= 0 {
			continue
		}
		s.children = append(s.children, m)
	}
}

// Remove detaches a mesh. It reports whether the mesh was present.
func (s *Scene) Remove(m *Mesh) bool {
	i := s.index(m)
	if i < 0 {
		return false
	}
	s.children = append(s.children[:i], s.children[i+1:]...)
	return true
}

// Children returns the meshes in insertion order. The slice is shared.
func (s *Scene) Children() []*Mesh { return s.children }

func (s *Scene) index(m *Mesh) int {
	for i, c := range s.children {
		if c == m {
			return i
		}
	}
	return -1
}
