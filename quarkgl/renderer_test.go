package quarkgl

import "testing"

func newCubeScene(t *testing.T, w, h int) (*Renderer, *Scene, *Camera, *Mesh) {
	t.Helper()
	cam, err := NewPerspectiveCamera(75, float64(w)/float64(h), 0.1, 1000)
	if err != nil {
		t.Fatalf("NewPerspectiveCamera: %v", err)
	}
	cam.Position = V3(0, 0, 5)

	r := NewRenderer()
	r.SetSize(w, h)

	s := NewScene()
	cube := NewMesh(NewBoxGeometry(1, 1, 1), NewBasicMaterial(Hex(0x00ff00)))
	s.Add(cube)
	return r, s, cam, cube
}

func TestRenderDrawsCubeAtCentre(t *testing.T) {
	r, s, cam, cube := newCubeScene(t, 200, 150)

	for i := 0; i < 3; i++ {
		r.Render(s, cam)
		if got := r.Surface().Pixel(100, 75); got != RGB(0, 0xFF, 0) {
			t.Fatalf("frame %d: centre pixel = %+v, want green", i, got)
		}
		if got := r.Surface().Pixel(0, 0); got != r.ClearColor {
			t.Fatalf("frame %d: corner pixel = %+v, want clear color", i, got)
		}
		cube.Rotation.X += 0.01
		cube.Rotation.Y += 0.01
	}
	if r.Frames() != 3 {
		t.Fatalf("Frames() = %d, want 3", r.Frames())
	}
}

func TestRenderHiddenMeshLeavesClearColor(t *testing.T) {
	r, s, cam, cube := newCubeScene(t, 64, 48)
	cube.Visible = false
	r.Render(s, cam)
	if got := r.Surface().Pixel(32, 24); got != r.ClearColor {
		t.Fatalf("centre pixel = %+v, want clear color", got)
	}
}

func TestRenderWithoutSurfaceIsNoop(t *testing.T) {
	_, s, cam, _ := newCubeScene(t, 64, 48)
	r := NewRenderer()
	r.Render(s, cam)
	if r.Frames() != 0 || r.Surface() != nil {
		t.Fatalf("renderer without size drew a frame")
	}
}

func TestSetSizeKeepsSurfaceForSameSize(t *testing.T) {
	r := NewRenderer()
	r.SetSize(32, 16)
	s := r.Surface()
	r.SetSize(32, 16)
	if r.Surface() != s {
		t.Fatal("SetSize with unchanged size replaced the surface")
	}
	r.SetSize(16, 16)
	if w, h := r.Surface().Size(); w != 16 || h != 16 {
		t.Fatalf("size after resize = %dx%d", w, h)
	}
}

func TestLambertMaterialIsShaded(t *testing.T) {
	r, s, cam, cube := newCubeScene(t, 200, 150)
	cube.Material = NewLambertMaterial(Hex(0x00ff00))
	s.Light.Mode = LightAmbientDirectional
	s.Light.Dir = V3(0, 0, 1) // pointing away from the visible face
	r.Render(s, cam)

	got := r.Surface().Pixel(100, 75)
	if got.G == 0 || got.G == 0xFF {
		t.Fatalf("centre pixel = %+v, want ambient-only green", got)
	}
}

func TestWireframeDrawsEdgesOnly(t *testing.T) {
	r, s, cam, _ := newCubeScene(t, 200, 150)
	r.SetRenderMode(RenderWireframe)
	r.Render(s, cam)
	surf := r.Surface()
	green := RGB(0, 0xFF, 0)

	// Top edge of the front face: y = (1 - (0.1448*0.5 + 0.5)) * 149 ≈ 63.7.
	if got := surf.Pixel(100, 64); got != green {
		t.Fatalf("front top edge pixel = %+v, want green", got)
	}
	// Inside the front face, off both face diagonals and the side strips.
	for _, p := range [][2]int{{105, 75}, {95, 75}, {100, 70}, {100, 80}} {
		if got := surf.Pixel(p[0], p[1]); got != r.ClearColor {
			t.Fatalf("interior pixel %v = %+v, want clear color", p, got)
		}
	}

	var lit int
	for y := 0; y < 150; y++ {
		for x := 0; x < 200; x++ {
			if surf.Pixel(x, y) != green {
				continue
			}
			lit++
			if x < 85 || x > 115 || y < 60 || y > 90 {
				t.Fatalf("edge pixel (%d,%d) outside the cube's projection", x, y)
			}
		}
	}
	if lit == 0 {
		t.Fatal("wireframe drew nothing")
	}
}
