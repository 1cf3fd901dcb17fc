package polyview

import "math"

// fieldOfView is the vertical field of view in radians.
const fieldOfView = math.Pi / 3

// Point is a position on the screen.
type Point struct {
	X float32
	Y float32
}

// focalLength returns the distance at which one world unit spans one pixel
// for a viewport of the given height.
func focalLength(height float64) float64 {
	return (height / 2) / math.Tan(fieldOfView/2)
}

func ConvertToScreenX(width, height, x, z float64) float32 {
	return float32(focalLength(height)*x/z + width/2)
}

func ConvertToScreenY(width, height, y, z float64) float32 {
	return float32(focalLength(height)*y/z + height/2)
}

// ConvertFromScreen maps a screen position back to camera space at depth z.
func ConvertFromScreen(width, height, screenX, screenY, z float64) (float64, float64) {
	f := focalLength(height)
	x := (screenX - width/2) * z / f
	y := (screenY - height/2) * z / f
	return x, y
}

type clipEdge int

const (
	clipLeft clipEdge = iota
	clipRight
	clipTop
	clipBottom
)

func (e clipEdge) inside(p Point, maxX, maxY float32) bool {
	switch e {
	case clipLeft:
		return p.X >= 0
	case clipRight:
		return p.X <= maxX
	case clipTop:
		return p.Y >= 0
	default:
		return p.Y <= maxY
	}
}

func (e clipEdge) intersect(a, b Point, maxX, maxY float32) Point {
	switch e {
	case clipLeft, clipRight:
		x := float32(0)
		if e == clipRight {
			x = maxX
		}
		t := (x - a.X) / (b.X - a.X)
		return Point{X: x, Y: a.Y + (b.Y-a.Y)*t}
	default:
		y := float32(0)
		if e == clipBottom {
			y = maxY
		}
		t := (y - a.Y) / (b.Y - a.Y)
		return Point{X: a.X + (b.X-a.X)*t, Y: y}
	}
}

// clipPolygon clips a screen polygon to the visible area, with one pixel of
// slack on the right and bottom edges.
func clipPolygon(points []Point, screenWidth, screenHeight float32) []Point {
	maxX, maxY := screenWidth+1, screenHeight+1

	out := points
	for _, edge := range []clipEdge{clipLeft, clipRight, clipTop, clipBottom} {
		if len(out) == 0 {
			break
		}
		in := out
		out = make([]Point, 0, len(in)+2)
		prev := in[len(in)-1]
		for _, cur := range in {
			prevIn, curIn := edge.inside(prev, maxX, maxY), edge.inside(cur, maxX, maxY)
			switch {
			case prevIn && curIn:
				out = append(out, cur)
			case prevIn && !curIn:
				out = append(out, edge.intersect(prev, cur, maxX, maxY))
			case !prevIn && curIn:
				out = append(out, edge.intersect(prev, cur, maxX, maxY), cur)
			}
			prev = cur
		}
	}
	return out
}

// pointInPolygon reports whether (x, y) lies inside the polygon, using the
// even-odd rule.
func pointInPolygon(x, y float32, xs, ys []float32) bool {
	inside := false
	j := len(xs) - 1
	for i := range xs {
		if (ys[i] > y) != (ys[j] > y) &&
			x < (xs[j]-xs[i])*(y-ys[i])/(ys[j]-ys[i])+xs[i] {
			inside = !inside
		}
		j = i
	}
	return inside
}
