package polyview

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point3 is a position or direction in 3D space.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

func NewPoint3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func point3FromVec(v mgl64.Vec3) Point3 {
	return Point3{X: v[0], Y: v[1], Z: v[2]}
}

// Vec returns the point as an mgl64 vector.
func (p Point3) Vec() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

func (p Point3) Add(q Point3) Point3 {
	return Point3{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

func (p Point3) Sub(q Point3) Point3 {
	return Point3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Mul multiplies elementwise.
func (p Point3) Mul(q Point3) Point3 {
	return Point3{X: p.X * q.X, Y: p.Y * q.Y, Z: p.Z * q.Z}
}

func (p Point3) Scale(s float64) Point3 {
	return Point3{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

func (p Point3) Div(s float64) Point3 {
	return Point3{X: p.X / s, Y: p.Y / s, Z: p.Z / s}
}

func (p Point3) Dot(q Point3) float64 {
	return p.Vec().Dot(q.Vec())
}

func (p Point3) Cross(q Point3) Point3 {
	return point3FromVec(p.Vec().Cross(q.Vec()))
}

func (p Point3) Length() float64 {
	return p.Vec().Len()
}

// DistanceTo returns the euclidean distance between p and q.
func (p Point3) DistanceTo(q Point3) float64 {
	return p.Sub(q).Length()
}

// Normalize returns the unit vector in the direction of p. ok is false when
// p has zero length or a non-finite component, in which case the zero vector
// is returned.
func (p Point3) Normalize() (unit Point3, ok bool) {
	// dividing by the largest component first keeps the squares in Length
	// from overflowing or underflowing
	m := p.MaxAbs()
	if m == 0 || math.IsInf(m, 0) || math.IsNaN(m) {
		return Point3{}, false
	}
	q := p.Div(m)
	length := q.Length()
	if length == 0 || math.IsInf(length, 0) || math.IsNaN(length) {
		return Point3{}, false
	}
	return q.Div(length), true
}

// MaxAbs returns the largest absolute component of p. It is NaN if any
// component is NaN.
func (p Point3) MaxAbs() float64 {
	if p.IsNaN() {
		return math.NaN()
	}
	return math.Max(math.Abs(p.X), math.Max(math.Abs(p.Y), math.Abs(p.Z)))
}

func (p Point3) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z)
}

// IsFinite reports whether no component is infinite or NaN.
func (p Point3) IsFinite() bool {
	return !p.IsNaN() && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0) && !math.IsInf(p.Z, 0)
}

// ApproxEqual reports whether every component of p and q differs by at most
// threshold.
func (p Point3) ApproxEqual(q Point3, threshold float64) bool {
	return math.Abs(p.X-q.X) <= threshold &&
		math.Abs(p.Y-q.Y) <= threshold &&
		math.Abs(p.Z-q.Z) <= threshold
}

func (p Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}
