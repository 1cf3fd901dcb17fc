package polyview

import (
	"errors"
	"fmt"
	"math"
)

// Mesh is an indexed polyhedron: an ordered list of vertices and an ordered
// list of faces referring to them by index. The Nth vertex added has index N.
//
// A Mesh is append-only while it is being built and read-only afterwards.
// It is not safe for concurrent mutation.
type Mesh struct {
	vertices []Point3
	faces    []Face
}

func NewMesh() *Mesh {
	return &Mesh{
		vertices: make([]Point3, 0, 16),
		faces:    make([]Face, 0, 16),
	}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(x, y, z float64) int {
	m.vertices = append(m.vertices, Point3{X: x, Y: y, Z: z})
	return len(m.vertices) - 1
}

// AddFace appends a face made of the given vertex indices, in winding order.
// Indices are not checked here; FaceNormal, Centroid and Validate report
// out-of-range indices when the face is first used.
func (m *Mesh) AddFace(indices ...int) {
	m.faces = append(m.faces, NewFace(indices...))
}

func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

func (m *Mesh) FaceCount() int {
	return len(m.faces)
}

func (m *Mesh) Vertex(i int) (Point3, error) {
	if i < 0 || i >= len(m.vertices) {
		return Point3{}, fmt.Errorf("vertex %d of %d: %w", i, len(m.vertices), ErrIndexOutOfRange)
	}
	return m.vertices[i], nil
}

// Face returns face i. Like slice indexing, it panics if i is out of range;
// FaceNormal and FaceCentroid return ErrIndexOutOfRange instead.
func (m *Mesh) Face(i int) Face {
	return m.faces[i]
}

// Vertices returns a copy of the vertex list.
func (m *Mesh) Vertices() []Point3 {
	out := make([]Point3, len(m.vertices))
	copy(out, m.vertices)
	return out
}

// Faces returns a copy of the face list.
func (m *Mesh) Faces() []Face {
	out := make([]Face, len(m.faces))
	for i, f := range m.faces {
		out[i] = f.Copy()
	}
	return out
}

func (m *Mesh) checkFace(i int) error {
	if i < 0 || i >= len(m.faces) {
		return fmt.Errorf("face %d of %d: %w", i, len(m.faces), ErrIndexOutOfRange)
	}
	return nil
}

// FaceNormal returns the unit normal of face i.
func (m *Mesh) FaceNormal(i int) (Point3, error) {
	if err := m.checkFace(i); err != nil {
		return Point3{}, err
	}
	n, err := FaceNormal(m, m.faces[i])
	if err != nil {
		return Point3{}, fmt.Errorf("face %d: %w", i, err)
	}
	return n, nil
}

// FaceCentroid returns the mean of the vertices of face i.
func (m *Mesh) FaceCentroid(i int) (Point3, error) {
	if err := m.checkFace(i); err != nil {
		return Point3{}, err
	}
	c, err := Centroid(m, m.faces[i])
	if err != nil {
		return Point3{}, fmt.Errorf("face %d: %w", i, err)
	}
	return c, nil
}

// Validate checks every face and returns all problems found, joined.
func (m *Mesh) Validate() error {
	var errs []error
	for i := range m.faces {
		if _, err := m.FaceNormal(i); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Bounds returns the axis-aligned bounding box of the vertices. Both corners
// are the zero point for an empty mesh.
func (m *Mesh) Bounds() (min, max Point3) {
	if len(m.vertices) == 0 {
		return Point3{}, Point3{}
	}

	min = Point3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max = Point3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, v := range m.vertices {
		min.X, max.X = math.Min(min.X, v.X), math.Max(max.X, v.X)
		min.Y, max.Y = math.Min(min.Y, v.Y), math.Max(max.Y, v.Y)
		min.Z, max.Z = math.Min(min.Z, v.Z), math.Max(max.Z, v.Z)
	}
	return min, max
}

// Copy returns a deep copy of the mesh.
func (m *Mesh) Copy() *Mesh {
	return &Mesh{
		vertices: m.Vertices(),
		faces:    m.Faces(),
	}
}
