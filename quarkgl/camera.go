package quarkgl

import "fmt"

// Camera is a perspective camera.
//
// The intrinsics are fixed at construction; only Position moves. The camera
// looks down -Z with +Y up.
type Camera struct {
	Position Vec3

	fovDeg float64
	aspect float64
	near   float64
	far    float64
}

// NewPerspectiveCamera creates a camera at the origin.
//
// fovDeg is the vertical field of view in degrees and aspect is width/height.
// near and far must satisfy 0 < near < far.
func NewPerspectiveCamera(fovDeg, aspect, near, far float64) (*Camera, error) {
	if near <= 0 || far <= 0 {
		return nil, fmt.Errorf("quarkgl: camera planes must be positive (near=%g far=%g)", near, far)
	}
	if near >= far {
		return nil, fmt.Errorf("quarkgl: camera near plane %g not before far plane %g", near, far)
	}
	if fovDeg <= 0 || fovDeg >= 180 {
		return nil, fmt.Errorf("quarkgl: invalid field of view %g", fovDeg)
	}
	return &Camera{fovDeg: fovDeg, aspect: aspect, near: near, far: far}, nil
}

func (c *Camera) FOV() float64    { return c.fovDeg }
func (c *Camera) Aspect() float64 { return c.aspect }
func (c *Camera) Near() float64   { return c.near }
func (c *Camera) Far() float64    { return c.far }

// View returns the world-to-camera matrix.
func (c *Camera) View() Mat4 {
	return Mat4LookAt(c.Position, c.Position.Add(V3(0, 0, -1)), V3(0, 1, 0))
}

// Projection returns the clip-space projection for the stored aspect.
func (c *Camera) Projection() Mat4 {
	return Mat4Perspective(DegToRad(c.fovDeg), Scalar(c.aspect), Scalar(c.near), Scalar(c.far))
}
