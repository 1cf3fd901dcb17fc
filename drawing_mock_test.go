package polyview

import "image/color"

type canvasOp struct {
	kind  string
	xp    []float32
	yp    []float32
	color color.Color
}

// recordingCanvas is a Canvas that remembers what was drawn.
type recordingCanvas struct {
	ops []canvasOp
}

func (c *recordingCanvas) Fill(clr color.Color) {
	c.ops = append(c.ops, canvasOp{kind: "fill", color: clr})
}

func (c *recordingCanvas) FillPolygon(xp, yp []float32, clr color.RGBA) {
	c.ops = append(c.ops, canvasOp{kind: "polygon", xp: xp, yp: yp, color: clr})
}

func (c *recordingCanvas) StrokePolygon(xp, yp []float32, strokeWidth float32, clr color.RGBA) {
	c.ops = append(c.ops, canvasOp{kind: "outline", xp: xp, yp: yp, color: clr})
}

func (c *recordingCanvas) StrokeLine(x0, y0, x1, y1, strokeWidth float32, clr color.RGBA) {
	c.ops = append(c.ops, canvasOp{kind: "line", xp: []float32{x0, x1}, yp: []float32{y0, y1}, color: clr})
}

func (c *recordingCanvas) count(kind string) int {
	n := 0
	for _, op := range c.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}
