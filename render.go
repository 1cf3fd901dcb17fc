package polyview

import (
	"fmt"
	"image/color"
	"sort"
)

// DefaultNormalLength is the length, in world units, of the debug normals.
const DefaultNormalLength = 0.2

const (
	gridCells    = 30
	gridCellSize = 1.0
)

// FaceError records why a face was left out of a frame.
type FaceError struct {
	Face int
	Err  error
}

func (e *FaceError) Error() string {
	return fmt.Sprintf("face %d: %v", e.Face, e.Err)
}

func (e *FaceError) Unwrap() error {
	return e.Err
}

// Polygon is a projected, shaded face ready to fill.
type Polygon struct {
	FaceIndex int
	XS, YS    []float32
	Color     color.RGBA
	Selected  bool

	// Distance from the camera to the face centroid.
	Distance float64
}

type Line struct {
	X0, Y0, X1, Y1 float32
	Color          color.RGBA
}

// Frame is everything drawn for one screen update. Lines go under the
// polygons, which are ordered farthest first, and Normals go on top.
type Frame struct {
	Width, Height int
	Lines         []Line
	Polygons      []Polygon
	Normals       []Line

	// Errors holds one *FaceError per face that could not be drawn.
	Errors []error
}

// Renderer turns a mesh into frames. The mesh is only read.
type Renderer struct {
	mesh         *Mesh
	Lighting     Lighting
	NormalLength float64
}

func NewRenderer(m *Mesh) *Renderer {
	return &Renderer{
		mesh:         m,
		Lighting:     DefaultLighting(),
		NormalLength: DefaultNormalLength,
	}
}

func (r *Renderer) Mesh() *Mesh {
	return r.mesh
}

// BuildFrame projects the mesh and overlays for the given workspace and
// viewport size. A face that cannot be drawn is skipped and recorded in
// Frame.Errors; the rest of the frame is still built.
func (r *Renderer) BuildFrame(ws *Workspace, width, height int) *Frame {
	cam := NewCamera(ws, width, height)
	fr := &Frame{Width: width, Height: height}

	if ws.GridVisible {
		fr.addGrid(cam)
	}
	fr.addAxes(cam, ws)

	for i := 0; i < r.mesh.FaceCount(); i++ {
		if err := r.addFace(fr, cam, ws, i); err != nil {
			fr.Errors = append(fr.Errors, &FaceError{Face: i, Err: err})
		}
	}

	sortByDistance(fr.Polygons)
	return fr
}

func (r *Renderer) addFace(fr *Frame, cam *Camera, ws *Workspace, i int) error {
	f := r.mesh.Face(i)

	normal, err := FaceNormal(r.mesh, f)
	if err != nil {
		return err
	}
	centroid, err := Centroid(r.mesh, f)
	if err != nil {
		return err
	}
	pnts, err := f.points(r.mesh)
	if err != nil {
		return err
	}

	camPnts := make([]Point3, len(pnts))
	for j, p := range pnts {
		camPnts[j] = cam.ToCamera(p)
	}
	camNormal := cam.RotateNormal(normal)

	// facing away from the camera
	if ws.CullBackfaces && camNormal.Dot(camPnts[0]) >= 0 {
		return nil
	}

	clipped := clipPolygonAgainstNearPlane(camPnts)
	if len(clipped) < 3 {
		return nil
	}

	screenPnts := make([]Point, len(clipped))
	for j, p := range clipped {
		screenPnts[j] = cam.Project(p)
	}
	screenPnts = clipPolygon(screenPnts, float32(fr.Width), float32(fr.Height))
	if len(screenPnts) < 3 {
		return nil
	}

	poly := Polygon{
		FaceIndex: i,
		XS:        make([]float32, len(screenPnts)),
		YS:        make([]float32, len(screenPnts)),
		Color:     r.Lighting.Shade(camNormal),
		Distance:  cam.ToCamera(centroid).Length(),
	}
	for j, p := range screenPnts {
		poly.XS[j], poly.YS[j] = p.X, p.Y
	}
	if i == ws.SelectedFace {
		poly.Color = selectedColor
		poly.Selected = true
	}
	fr.Polygons = append(fr.Polygons, poly)

	if ws.NormalsVisible {
		tip := centroid.Add(normal.Scale(r.NormalLength))
		fr.Normals = appendLine(fr.Normals, cam, centroid, tip, normalColor)
	}
	return nil
}

func (fr *Frame) addGrid(cam *Camera) {
	half := gridCells * gridCellSize / 2
	for i := 0; i <= gridCells; i++ {
		d := -half + float64(i)*gridCellSize
		fr.Lines = appendLine(fr.Lines, cam, Point3{X: -half, Z: d}, Point3{X: half, Z: d}, gridColor)
		fr.Lines = appendLine(fr.Lines, cam, Point3{X: d, Z: -half}, Point3{X: d, Z: half}, gridColor)
	}
}

func (fr *Frame) addAxes(cam *Camera, ws *Workspace) {
	s := ws.AxisSize
	if ws.XAxisVisible {
		fr.Lines = appendLine(fr.Lines, cam, Point3{X: -s}, Point3{X: s}, xAxisColor)
	}
	if ws.YAxisVisible {
		fr.Lines = appendLine(fr.Lines, cam, Point3{Y: -s}, Point3{Y: s}, yAxisColor)
	}
	if ws.ZAxisVisible {
		fr.Lines = appendLine(fr.Lines, cam, Point3{Z: -s}, Point3{Z: s}, zAxisColor)
	}
}

// appendLine projects the world segment a-b and appends it to lines, unless
// it is entirely behind the near plane.
func appendLine(lines []Line, cam *Camera, a, b Point3, clr color.RGBA) []Line {
	ca, cb, ok := clipLineAgainstNearPlane(cam.ToCamera(a), cam.ToCamera(b))
	if !ok {
		return lines
	}
	pa, pb := cam.Project(ca), cam.Project(cb)
	return append(lines, Line{X0: pa.X, Y0: pa.Y, X1: pb.X, Y1: pb.Y, Color: clr})
}

// sortByDistance orders polygons so the farthest are drawn first.
func sortByDistance(polys []Polygon) {
	sort.SliceStable(polys, func(i, j int) bool {
		return polys[i].Distance > polys[j].Distance
	})
}

// Paint draws the frame onto c.
func (fr *Frame) Paint(c Canvas) {
	c.Fill(backgroundColor)
	for _, l := range fr.Lines {
		c.StrokeLine(l.X0, l.Y0, l.X1, l.Y1, 1, l.Color)
	}
	for _, p := range fr.Polygons {
		c.FillPolygon(p.XS, p.YS, p.Color)
		if p.Selected {
			c.StrokePolygon(p.XS, p.YS, 1, outlineColor)
		}
	}
	for _, l := range fr.Normals {
		c.StrokeLine(l.X0, l.Y0, l.X1, l.Y1, 1, l.Color)
	}
}

// Pick returns the index of the frontmost face drawn at (x, y), or -1.
func (fr *Frame) Pick(x, y float32) int {
	for i := len(fr.Polygons) - 1; i >= 0; i-- {
		p := fr.Polygons[i]
		if pointInPolygon(x, y, p.XS, p.YS) {
			return p.FaceIndex
		}
	}
	return -1
}
