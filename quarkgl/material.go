package quarkgl

// MaterialKind selects how a material reacts to the scene light.
type MaterialKind uint8

const (
	// MaterialBasic is a flat color that ignores lighting.
	MaterialBasic MaterialKind = iota
	// MaterialLambert is flat-shaded per face from Scene.Light.
	MaterialLambert
)

// Material is a minimal surface description.
type Material struct {
	Kind  MaterialKind
	Color Color
}

// NewBasicMaterial returns an unlit single-color material.
func NewBasicMaterial(c Color) *Material {
	return &Material{Kind: MaterialBasic, Color: c}
}

// NewLambertMaterial returns a material shaded by the scene light.
func NewLambertMaterial(c Color) *Material {
	return &Material{Kind: MaterialLambert, Color: c}
}

// LightMode defines minimal lighting options.
type LightMode uint8

const (
	LightOff LightMode = iota
	LightAmbientDirectional
)

// Light is a minimal light setup.
type Light struct {
	Mode      LightMode
	Ambient   Scalar // 0..1
	Dir       Vec3   // direction *towards* the scene
	DirAmount Scalar // 0..1
}

func lightIntensity(l Light, n Vec3) Scalar {
	if l.Mode == LightOff {
		return 1
	}
	amb := Clamp01(l.Ambient)
	dir := Clamp01(l.DirAmount)
	ld := Normalize(l.Dir)
	if ld == (Vec3{}) {
		return amb
	}
	d := Dot(n, ld.Mul(-1))
	if d < 0 {
		d = 0
	}
	return Clamp01(amb + d*dir)
}
