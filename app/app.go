// Package app is the rotating cube demo: a one-shot Setup that builds the
// scene, camera, renderer and cube, and a frame loop that spins the cube and
// redraws it on every display refresh.
package app

import (
	"fmt"

	"spincube/hal"
	"spincube/quarkgl"
)

const (
	FieldOfView = 75.0 // degrees
	NearPlane   = 0.1
	FarPlane    = 1000.0

	CubeWidth  = 1.0
	CubeHeight = 1.0
	CubeDepth  = 1.0
	CubeColor  = 0x00ff00

	// RotationStep is added to the cube's X and Y angles every frame.
	RotationStep = 0.01
)

// CameraPosition is where the camera sits after setup.
var CameraPosition = quarkgl.V3(0, 0, 5)

type Config struct {
	// HUD draws the frame count and cube rotation over the scene.
	HUD bool
	// Wireframe draws triangle edges instead of filled faces.
	Wireframe bool
}

// Demo holds everything Setup builds. The frame loop is its only writer.
type Demo struct {
	Scene    *quarkgl.Scene
	Camera   *quarkgl.Camera
	Renderer *quarkgl.Renderer
	Cube     *quarkgl.Mesh

	frames  hal.FrameScheduler
	log     hal.Logger
	animate func()
	frame   uint64
	hud     *hud
}

// Setup reads the viewport once and builds the scene. Later viewport changes
// are not observed: the aspect ratio and surface size stay as set here.
func Setup(h hal.Host, cfg Config) (*Demo, error) {
	w, ht := h.Viewport()

	scene := quarkgl.NewScene()

	cam, err := quarkgl.NewPerspectiveCamera(FieldOfView, float64(w)/float64(ht), NearPlane, FarPlane)
	if err != nil {
		return nil, fmt.Errorf("app: setup: %w", err)
	}

	r := quarkgl.NewRenderer()
	r.SetSize(w, ht)
	if cfg.Wireframe {
		r.SetRenderMode(quarkgl.RenderWireframe)
	}
	h.Display().AppendSurface(r.Surface())

	geometry := quarkgl.NewBoxGeometry(CubeWidth, CubeHeight, CubeDepth)
	material := quarkgl.NewBasicMaterial(quarkgl.Hex(CubeColor))
	cube := quarkgl.NewMesh(geometry, material)
	scene.Add(cube)

	cam.Position = CameraPosition

	d := &Demo{
		Scene:    scene,
		Camera:   cam,
		Renderer: r,
		Cube:     cube,
		frames:   h.Frames(),
		log:      h.Logger(),
	}
	d.animate = d.Animate
	if cfg.HUD {
		d.hud = newHUD()
	}

	if d.log != nil {
		d.log.WriteLineString(fmt.Sprintf("app: setup viewport=%dx%d aspect=%.4f fov=%g near=%g far=%g",
			w, ht, cam.Aspect(), cam.FOV(), cam.Near(), cam.Far()))
	}
	return d, nil
}

// Start runs the first frame, which keeps the loop going from then on.
func (d *Demo) Start() { d.animate() }

// Animate is one frame: queue the next frame, advance the rotation, draw.
func (d *Demo) Animate() {
	d.frames.RequestAnimationFrame(d.animate)

	d.Cube.Rotation.X += RotationStep
	d.Cube.Rotation.Y += RotationStep

	d.Renderer.Render(d.Scene, d.Camera)
	d.frame++

	if d.hud != nil {
		d.hud.draw(d.Renderer.Surface(), d.frame, d.Cube.Rotation)
	}
}

// Frame returns how many times Animate has run.
func (d *Demo) Frame() uint64 { return d.frame }
