package polyview

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDegenerateFace is returned for faces with fewer than three indices
	// or whose first three vertices are collinear.
	ErrDegenerateFace = errors.New("degenerate face")

	// ErrIndexOutOfRange is returned when a face refers to a vertex the mesh
	// does not have, or when a face index itself is past the end.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Face is an ordered list of vertex indices. The order is the winding and
// decides the sign of the normal.
type Face struct {
	indices []int
}

func NewFace(indices ...int) Face {
	f := Face{indices: make([]int, len(indices))}
	copy(f.indices, indices)
	return f
}

func (f Face) Len() int {
	return len(f.indices)
}

func (f Face) Index(i int) int {
	return f.indices[i]
}

// Indices returns a copy of the face's indices.
func (f Face) Indices() []int {
	out := make([]int, len(f.indices))
	copy(out, f.indices)
	return out
}

func (f Face) Copy() Face {
	return NewFace(f.indices...)
}

// points resolves the face's indices against m.
func (f Face) points(m *Mesh) ([]Point3, error) {
	pnts := make([]Point3, len(f.indices))
	for i, idx := range f.indices {
		p, err := m.Vertex(idx)
		if err != nil {
			return nil, err
		}
		pnts[i] = p
	}
	return pnts, nil
}

// FaceNormal returns the unit normal of f, (v1-v0) x (v2-v0) normalized,
// using only the first three vertices. Quads are assumed to be planar; for a
// non-planar face this is an approximation. Vertices with infinite or NaN
// components make the face degenerate.
func FaceNormal(m *Mesh, f Face) (Point3, error) {
	if len(f.indices) < 3 {
		return Point3{}, fmt.Errorf("%d indices: %w", len(f.indices), ErrDegenerateFace)
	}

	var v [3]Point3
	for i := range v {
		p, err := m.Vertex(f.indices[i])
		if err != nil {
			return Point3{}, err
		}
		v[i] = p
	}

	// work at unit scale so neither the edges nor their cross product
	// overflow or underflow; positive scaling keeps the direction
	s := math.Max(v[0].MaxAbs(), math.Max(v[1].MaxAbs(), v[2].MaxAbs()))
	if math.IsInf(s, 0) || math.IsNaN(s) {
		return Point3{}, fmt.Errorf("non-finite vertices %v: %w", f.indices[:3], ErrDegenerateFace)
	}
	if s > 0 {
		for i := range v {
			v[i] = v[i].Div(s)
		}
	}

	ab := v[1].Sub(v[0])
	ac := v[2].Sub(v[0])
	if sa, sc := ab.MaxAbs(), ac.MaxAbs(); sa > 0 && sc > 0 {
		ab, ac = ab.Div(sa), ac.Div(sc)
	}
	normal, ok := ab.Cross(ac).Normalize()
	if !ok {
		return Point3{}, fmt.Errorf("collinear vertices %v: %w", f.indices[:3], ErrDegenerateFace)
	}
	return normal, nil
}

// Centroid returns the mean of all vertices of f. A face whose mean is not
// finite is degenerate.
func Centroid(m *Mesh, f Face) (Point3, error) {
	if len(f.indices) == 0 {
		return Point3{}, fmt.Errorf("no indices: %w", ErrDegenerateFace)
	}

	pnts, err := f.points(m)
	if err != nil {
		return Point3{}, err
	}

	n := float64(len(pnts))
	var mean Point3
	for _, p := range pnts {
		mean = mean.Add(p.Div(n))
	}
	if !mean.IsFinite() {
		return Point3{}, fmt.Errorf("non-finite centroid %v: %w", mean, ErrDegenerateFace)
	}
	return mean, nil
}
