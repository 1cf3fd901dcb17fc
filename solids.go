package polyview

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownSolid is returned by NewGenerator for a name it does not know.
var ErrUnknownSolid = errors.New("unknown solid")

// Generator builds a fresh Mesh for one kind of solid.
type Generator interface {
	Name() string
	Create() *Mesh
}

const (
	TriakisTetrahedronName  = "triakis-tetrahedron"
	RhombicDodecahedronName = "rhombic-dodecahedron"
	CubeName                = "cube"
)

// DefaultTriakisA is the default outer vertex coordinate of the triakis
// tetrahedron.
const DefaultTriakisA = 5.0 / 3.0

// TriakisTetrahedron is a tetrahedron with a low pyramid raised on each face:
// 8 vertices, 12 triangles. A is the outer vertex coordinate; zero means
// DefaultTriakisA.
type TriakisTetrahedron struct {
	A float64
}

var triakisFaces = [12][3]int{
	{4, 0, 5},
	{6, 1, 7},
	{2, 4, 5},
	{3, 6, 7},
	{5, 0, 6},
	{1, 4, 7},
	{4, 2, 7},
	{3, 5, 6},
	{0, 4, 6},
	{4, 1, 6},
	{2, 5, 7},
	{5, 3, 7},
}

func (TriakisTetrahedron) Name() string { return TriakisTetrahedronName }

func (t TriakisTetrahedron) Create() *Mesh {
	a := t.A
	if a == 0 {
		a = DefaultTriakisA
	}

	m := NewMesh()

	// tetrahedron vertices
	m.AddVertex(a, a, a)
	m.AddVertex(a, -a, -a)
	m.AddVertex(-a, -a, a)
	m.AddVertex(-a, a, -a)

	// pyramid apexes
	m.AddVertex(1, -1, 1)
	m.AddVertex(-1, 1, 1)
	m.AddVertex(1, 1, -1)
	m.AddVertex(-1, -1, -1)

	for _, f := range triakisFaces {
		m.AddFace(f[:]...)
	}
	return m
}

// RhombicDodecahedron is the 14 vertex, 12 rhombus dual of the cuboctahedron.
type RhombicDodecahedron struct{}

var rhombicFaces = [12][4]int{
	{8, 3, 10, 2},
	{8, 0, 12, 3},
	{8, 1, 11, 0},
	{8, 2, 13, 1},
	{9, 7, 12, 4},
	{9, 6, 10, 7},
	{9, 5, 13, 6},
	{9, 4, 11, 5},
	{4, 12, 0, 11},
	{7, 10, 3, 12},
	{6, 13, 2, 10},
	{5, 11, 1, 13},
}

func (RhombicDodecahedron) Name() string { return RhombicDodecahedronName }

func (RhombicDodecahedron) Create() *Mesh {
	m := NewMesh()

	// inner cube
	m.AddVertex(-1, 1, 1)
	m.AddVertex(-1, 1, -1)
	m.AddVertex(1, 1, -1)
	m.AddVertex(1, 1, 1)
	m.AddVertex(-1, -1, 1)
	m.AddVertex(-1, -1, -1)
	m.AddVertex(1, -1, -1)
	m.AddVertex(1, -1, 1)

	// outer octahedron
	m.AddVertex(0, 2, 0)
	m.AddVertex(0, -2, 0)
	m.AddVertex(2, 0, 0)
	m.AddVertex(-2, 0, 0)
	m.AddVertex(0, 0, 2)
	m.AddVertex(0, 0, -2)

	for _, f := range rhombicFaces {
		m.AddFace(f[:]...)
	}
	return m
}

// Cube is an axis-aligned cube centred on the origin. Size is the edge
// length; zero means 1.
type Cube struct {
	Size float64
}

var cubeFaces = [6][4]int{
	{0, 3, 2, 1}, // -z
	{4, 5, 6, 7}, // +z
	{0, 1, 5, 4}, // -y
	{3, 7, 6, 2}, // +y
	{0, 4, 7, 3}, // -x
	{1, 2, 6, 5}, // +x
}

func (Cube) Name() string { return CubeName }

func (c Cube) Create() *Mesh {
	h := c.Size / 2
	if c.Size == 0 {
		h = 0.5
	}

	m := NewMesh()
	m.AddVertex(-h, -h, -h)
	m.AddVertex(h, -h, -h)
	m.AddVertex(h, h, -h)
	m.AddVertex(-h, h, -h)
	m.AddVertex(-h, -h, h)
	m.AddVertex(h, -h, h)
	m.AddVertex(h, h, h)
	m.AddVertex(-h, h, h)

	for _, f := range cubeFaces {
		m.AddFace(f[:]...)
	}
	return m
}

type generatorOptions struct {
	triakisA float64
	cubeSize float64
}

// GeneratorOption tunes the solids that take a shape parameter.
type GeneratorOption func(*generatorOptions)

func WithTriakisA(a float64) GeneratorOption {
	return func(o *generatorOptions) { o.triakisA = a }
}

func WithCubeSize(size float64) GeneratorOption {
	return func(o *generatorOptions) { o.cubeSize = size }
}

var solids = map[string]func(generatorOptions) Generator{
	TriakisTetrahedronName:  func(o generatorOptions) Generator { return TriakisTetrahedron{A: o.triakisA} },
	RhombicDodecahedronName: func(generatorOptions) Generator { return RhombicDodecahedron{} },
	CubeName:                func(o generatorOptions) Generator { return Cube{Size: o.cubeSize} },
}

// NewGenerator returns the generator registered under name.
func NewGenerator(name string, opts ...GeneratorOption) (Generator, error) {
	mk, ok := solids[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownSolid)
	}

	var o generatorOptions
	for _, opt := range opts {
		opt(&o)
	}
	return mk(o), nil
}

// SolidNames lists the registered solids in sorted order.
func SolidNames() []string {
	names := make([]string, 0, len(solids))
	for name := range solids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
