package polyview

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is the drawing surface a Frame paints onto.
type Canvas interface {
	Fill(clr color.Color)
	FillPolygon(xp, yp []float32, clr color.RGBA)
	StrokePolygon(xp, yp []float32, strokeWidth float32, clr color.RGBA)
	StrokeLine(x0, y0, x1, y1, strokeWidth float32, clr color.RGBA)
}

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// ImageCanvas draws onto an ebiten image.
type ImageCanvas struct {
	Screen *ebiten.Image
}

func NewImageCanvas(screen *ebiten.Image) *ImageCanvas {
	return &ImageCanvas{Screen: screen}
}

func (c *ImageCanvas) Fill(clr color.Color) {
	c.Screen.Fill(clr)
}

func (c *ImageCanvas) FillPolygon(xp, yp []float32, clr color.RGBA) {
	fillConvexPolygon(c.Screen, xp, yp, clr)
}

func (c *ImageCanvas) StrokePolygon(xp, yp []float32, strokeWidth float32, clr color.RGBA) {
	drawPolygonOutline(c.Screen, xp, yp, strokeWidth, clr)
}

func (c *ImageCanvas) StrokeLine(x0, y0, x1, y1, strokeWidth float32, clr color.RGBA) {
	vector.StrokeLine(c.Screen, x0, y0, x1, y1, strokeWidth, clr, true)
}

func colorScale(clr color.RGBA) (r, g, b, a float32) {
	return float32(clr.R) / 255.0, float32(clr.G) / 255.0, float32(clr.B) / 255.0, float32(clr.A) / 255.0
}

// fillConvexPolygon fans the polygon into triangles around its first point.
func fillConvexPolygon(screen *ebiten.Image, xp, yp []float32, clr color.RGBA) {
	if len(xp) < 3 {
		return
	}

	indices := make([]uint16, 0, (len(xp)-2)*3)
	for i := 2; i < len(xp); i++ {
		indices = append(indices, 0, uint16(i-1), uint16(i))
	}

	cr, cg, cb, ca := colorScale(clr)
	vertices := make([]ebiten.Vertex, len(xp))
	for i := range xp {
		vertices[i] = ebiten.Vertex{
			DstX:   xp[i],
			DstY:   yp[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vertices, indices, whiteSub, op)
}

// drawPolygonOutline strokes the closed outline of a polygon.
func drawPolygonOutline(screen *ebiten.Image, xp, yp []float32, strokeWidth float32, clr color.RGBA) {
	if len(xp) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(xp[0], yp[0])
	for i := 1; i < len(xp); i++ {
		path.LineTo(xp[i], yp[i])
	}
	path.Close()

	strokeOp := &vector.StrokeOptions{Width: strokeWidth}
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOp)

	cr, cg, cb, ca := colorScale(clr)
	for i := range vertices {
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
	}

	screen.DrawTriangles(vertices, indices, whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
