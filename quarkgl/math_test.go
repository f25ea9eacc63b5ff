package quarkgl

import (
	"math"
	"testing"
)

func TestMat4MulIdentity(t *testing.T) {
	a := Mat4Identity()
	b := Mat4Translate(V3(1, 2, 3))
	got := Mat4Mul(a, b)
	if got != b {
		t.Fatalf("identity*a mismatch")
	}
	got2 := Mat4Mul(b, a)
	if got2 != b {
		t.Fatalf("a*identity mismatch")
	}
}

func TestLookAtNotIdentity(t *testing.T) {
	m := Mat4LookAt(V3(0, 0, 3), V3(0, 0, 0), V3(0, 1, 0))
	if m == Mat4Identity() {
		t.Fatalf("lookAt unexpectedly identity")
	}
}

func TestRotateXQuarterTurn(t *testing.T) {
	p := Mat4MulV4(Mat4RotateX(math.Pi/2), Vec4{Y: 1, W: 1})
	if !near32(p.X, 0) || !near32(p.Y, 0) || !near32(p.Z, 1) {
		t.Fatalf("RotateX(pi/2)*(0,1,0) = %+v, want (0,0,1)", p)
	}
}

func TestEulerAppliesZFirst(t *testing.T) {
	e := Euler{X: math.Pi / 2, Z: math.Pi / 2}
	// Z takes +X to +Y, then X takes +Y to +Z.
	p := Mat4MulV4(Mat4FromEuler(e), Vec4{X: 1, W: 1})
	if !near32(p.X, 0) || !near32(p.Y, 0) || !near32(p.Z, 1) {
		t.Fatalf("euler*(1,0,0) = %+v, want (0,0,1)", p)
	}
}

func TestDegToRad(t *testing.T) {
	if got := DegToRad(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Fatalf("DegToRad(180) = %v", got)
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := Hex(0x00ff00)
	if c != RGB(0, 0xFF, 0) {
		t.Fatalf("Hex(0x00ff00) = %+v", c)
	}
	if c.Hex() != 0x00ff00 {
		t.Fatalf("Hex() = %#06x", c.Hex())
	}
}

func near32(a, b Scalar) bool {
	return math.Abs(float64(a-b)) < 1e-5
}
