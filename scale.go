package polyview

// ScaleModifier multiplies every vertex of a mesh by per-axis factors.
// Zero factors collapse the mesh and negative ones mirror it.
type ScaleModifier struct {
	SX, SY, SZ float64
}

func NewScaleModifier(sx, sy, sz float64) ScaleModifier {
	return ScaleModifier{SX: sx, SY: sy, SZ: sz}
}

// Uniform scales all three axes by s.
func Uniform(s float64) ScaleModifier {
	return ScaleModifier{SX: s, SY: s, SZ: s}
}

// Apply scales m in place.
func (s ScaleModifier) Apply(m *Mesh) {
	factors := Point3{X: s.SX, Y: s.SY, Z: s.SZ}
	for i := range m.vertices {
		m.vertices[i] = m.vertices[i].Mul(factors)
	}
}

// IsIdentity reports whether Apply would leave a mesh unchanged.
func (s ScaleModifier) IsIdentity() bool {
	return s.SX == 1 && s.SY == 1 && s.SZ == 1
}
