package polyview

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testWidth  = 800
	testHeight = 600
)

// frontTriangle faces the default camera, which looks along +z.
var frontTriangle = [][3]float64{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}}

func bareWorkspace() *Workspace {
	ws := NewWorkspace()
	ws.GridVisible = false
	ws.NormalsVisible = false
	return ws
}

func TestBuildFrameCullsBackfaces(t *testing.T) {
	m := newTestMesh(frontTriangle, []int{0, 1, 2}, []int{0, 2, 1})
	r := NewRenderer(m)
	ws := bareWorkspace()

	fr := r.BuildFrame(ws, testWidth, testHeight)
	require.Len(t, fr.Polygons, 1)
	assert.Equal(t, 0, fr.Polygons[0].FaceIndex)
	assert.Empty(t, fr.Errors)

	ws.CullBackfaces = false
	fr = r.BuildFrame(ws, testWidth, testHeight)
	assert.Len(t, fr.Polygons, 2)
}

func TestBuildFrameProjectsFace(t *testing.T) {
	m := newTestMesh(frontTriangle, []int{0, 1, 2})
	fr := NewRenderer(m).BuildFrame(bareWorkspace(), testWidth, testHeight)
	require.Len(t, fr.Polygons, 1)

	p := fr.Polygons[0]
	got := make([]Point, len(p.XS))
	for i := range p.XS {
		got[i] = Point{p.XS[i], p.YS[i]}
	}
	assert.True(t, deepAlmostEqualPoints([]Point{{400, 300}, {400, 400}, {500, 300}}, got), "projected %v", got)
	assert.Equal(t, DefaultLighting().Shade(NewPoint3(0, 0, -1)), p.Color)
	assert.False(t, p.Selected)
}

func TestBuildFrameSkipsBadFaces(t *testing.T) {
	m := newTestMesh(frontTriangle, []int{0, 1, 2}, []int{0, 0, 0}, []int{0, 1, 9}, []int{1, 2})
	fr := NewRenderer(m).BuildFrame(bareWorkspace(), testWidth, testHeight)

	require.Len(t, fr.Polygons, 1)
	assert.Equal(t, 0, fr.Polygons[0].FaceIndex)
	require.Len(t, fr.Errors, 3)

	var fe *FaceError
	require.True(t, errors.As(fr.Errors[0], &fe))
	assert.Equal(t, 1, fe.Face)
	assert.ErrorIs(t, fr.Errors[0], ErrDegenerateFace)

	require.True(t, errors.As(fr.Errors[1], &fe))
	assert.Equal(t, 2, fe.Face)
	assert.ErrorIs(t, fr.Errors[1], ErrIndexOutOfRange)

	assert.ErrorIs(t, fr.Errors[2], ErrDegenerateFace)
}

func TestBuildFrameDropsInvisibleFaces(t *testing.T) {
	testCases := []struct {
		name   string
		points [][3]float64
	}{
		{name: "Off screen", points: [][3]float64{{100, 0, 0}, {100, 1, 0}, {101, 0, 0}}},
		{name: "Behind the camera", points: [][3]float64{{0, 0, -10}, {0, 1, -10}, {1, 0, -10}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ws := bareWorkspace()
			ws.CullBackfaces = false
			fr := NewRenderer(newTestMesh(tc.points, []int{0, 1, 2})).BuildFrame(ws, testWidth, testHeight)
			assert.Empty(t, fr.Polygons)
			assert.Empty(t, fr.Errors)
		})
	}
}

func TestBuildFrameOverlays(t *testing.T) {
	m := newTestMesh(frontTriangle, []int{0, 1, 2})
	r := NewRenderer(m)

	ws := bareWorkspace()
	ws.Scale = 1
	ws.GridVisible = true
	fr := r.BuildFrame(ws, testWidth, testHeight)
	assert.Len(t, fr.Lines, 2*(gridCells+1))

	ws.GridVisible = false
	ws.XAxisVisible, ws.YAxisVisible, ws.ZAxisVisible = true, true, true
	fr = r.BuildFrame(ws, testWidth, testHeight)
	require.Len(t, fr.Lines, 3)
	assert.Equal(t, xAxisColor, fr.Lines[0].Color)
	assert.Equal(t, yAxisColor, fr.Lines[1].Color)
	assert.Equal(t, zAxisColor, fr.Lines[2].Color)

	ws.XAxisVisible, ws.YAxisVisible, ws.ZAxisVisible = false, false, false
	ws.NormalsVisible = true
	fr = r.BuildFrame(ws, testWidth, testHeight)
	assert.Empty(t, fr.Lines)
	require.Len(t, fr.Normals, 1)
	assert.Equal(t, normalColor, fr.Normals[0].Color)
}

func TestNormalLength(t *testing.T) {
	m := newTestMesh(frontTriangle, []int{0, 1, 2})
	r := NewRenderer(m)
	ws := bareWorkspace()
	ws.NormalsVisible = true

	short := r.BuildFrame(ws, testWidth, testHeight).Normals[0]
	r.NormalLength = 1
	long := r.BuildFrame(ws, testWidth, testHeight).Normals[0]

	// the normal points at the camera, so a longer one ends farther from the
	// screen centre
	assert.Equal(t, short.X0, long.X0)
	assert.Greater(t, long.X1, short.X1)
}

func TestBuildFrameSortsFarthestFirst(t *testing.T) {
	ws := bareWorkspace()
	ws.CullBackfaces = false
	ws.RotationX, ws.RotationY = 0.4, 0.7

	fr := NewRenderer(RhombicDodecahedron{}.Create()).BuildFrame(ws, testWidth, testHeight)
	require.Len(t, fr.Polygons, 12)
	assert.True(t, sort.SliceIsSorted(fr.Polygons, func(i, j int) bool {
		return fr.Polygons[i].Distance > fr.Polygons[j].Distance
	}))
}

func TestBuildFrameSolids(t *testing.T) {
	for _, gen := range []Generator{TriakisTetrahedron{}, RhombicDodecahedron{}, Cube{}} {
		t.Run(gen.Name(), func(t *testing.T) {
			ws := NewWorkspace()
			ws.RotationX, ws.RotationY = 0.3, 0.5
			fr := NewRenderer(gen.Create()).BuildFrame(ws, testWidth, testHeight)

			assert.Empty(t, fr.Errors)
			assert.NotEmpty(t, fr.Polygons)
			assert.Len(t, fr.Normals, len(fr.Polygons))
			for _, p := range fr.Polygons {
				assert.GreaterOrEqual(t, len(p.XS), 3)
				assert.Len(t, p.YS, len(p.XS))
			}
		})
	}
}

func TestSelectedFace(t *testing.T) {
	m := newTestMesh(frontTriangle, []int{0, 1, 2})
	ws := bareWorkspace()
	ws.SelectedFace = 0

	fr := NewRenderer(m).BuildFrame(ws, testWidth, testHeight)
	require.Len(t, fr.Polygons, 1)
	assert.True(t, fr.Polygons[0].Selected)
	assert.Equal(t, selectedColor, fr.Polygons[0].Color)

	c := &recordingCanvas{}
	fr.Paint(c)
	assert.Equal(t, 1, c.count("outline"))
}

func TestPaintOrder(t *testing.T) {
	m := newTestMesh(frontTriangle, []int{0, 1, 2})
	ws := NewWorkspace()
	ws.Scale = 1

	fr := NewRenderer(m).BuildFrame(ws, testWidth, testHeight)
	c := &recordingCanvas{}
	fr.Paint(c)

	require.NotEmpty(t, c.ops)
	assert.Equal(t, "fill", c.ops[0].kind)
	assert.Equal(t, backgroundColor, c.ops[0].color)
	assert.Equal(t, 1, c.count("polygon"))
	assert.Equal(t, len(fr.Lines)+len(fr.Normals), c.count("line"))

	// grid under the polygon, normal on top
	assert.Equal(t, "line", c.ops[1].kind)
	assert.Equal(t, "polygon", c.ops[len(c.ops)-2].kind)
	assert.Equal(t, normalColor, c.ops[len(c.ops)-1].color)
}

func TestPick(t *testing.T) {
	far := newTestMesh(frontTriangle, []int{0, 1, 2})
	fr := NewRenderer(far).BuildFrame(bareWorkspace(), testWidth, testHeight)
	assert.Equal(t, 0, fr.Pick(420, 320))
	assert.Equal(t, -1, fr.Pick(10, 10))

	// a second triangle in front of the first wins
	both := newTestMesh(
		[][3]float64{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}, {0, 0, -1}, {0, 1, -1}, {1, 0, -1}},
		[]int{0, 1, 2},
		[]int{3, 4, 5},
	)
	fr = NewRenderer(both).BuildFrame(bareWorkspace(), testWidth, testHeight)
	require.Len(t, fr.Polygons, 2)
	assert.Equal(t, 1, fr.Pick(420, 320))
}
