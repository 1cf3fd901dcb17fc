package polyview

import (
	"fmt"
	"math"
	"strings"
)

const (
	defaultZoom     = 100
	minZoom         = 0.01
	defaultAxisSize = 2000
	dragRadsPerPx   = 2 * math.Pi / 1000
	wheelZoomFactor = 0.1
)

// Workspace holds the state of one viewing session: camera orbit and zoom,
// overlay toggles and the selected face. The renderer reads it; only input
// handling changes it.
type Workspace struct {
	RotationX float64
	RotationY float64
	Scale     float64
	AxisSize  float64

	XAxisVisible   bool
	YAxisVisible   bool
	ZAxisVisible   bool
	GridVisible    bool
	NormalsVisible bool
	CullBackfaces  bool

	// SelectedFace is the index of the face under the cursor, or -1.
	SelectedFace int
}

func NewWorkspace() *Workspace {
	return &Workspace{
		Scale:          defaultZoom,
		AxisSize:       defaultAxisSize,
		GridVisible:    true,
		NormalsVisible: true,
		CullBackfaces:  true,
		SelectedFace:   -1,
	}
}

// OnMouseWheel zooms out for positive amounts and in for negative ones.
func (ws *Workspace) OnMouseWheel(amount float64) {
	ws.Scale -= amount * wheelZoomFactor
	if ws.Scale < minZoom {
		ws.Scale = minZoom
	}
}

// OnMouseDragged orbits the camera by the cursor movement since the last
// frame. Only drags with the left button rotate.
func (ws *Workspace) OnMouseDragged(left bool, dx, dy float64) {
	if !left {
		return
	}
	ws.RotationX -= dy * dragRadsPerPx
	ws.RotationY += dx * dragRadsPerPx
}

// HandleKey applies the toggle bound to key and reports whether there was one.
func (ws *Workspace) HandleKey(key rune) bool {
	switch key {
	case 'n':
		ws.NormalsVisible = !ws.NormalsVisible
	case 'g':
		ws.GridVisible = !ws.GridVisible
	case 'x':
		ws.XAxisVisible = !ws.XAxisVisible
	case 'y':
		ws.YAxisVisible = !ws.YAxisVisible
	case 'z':
		ws.ZAxisVisible = !ws.ZAxisVisible
	case 'c':
		ws.CullBackfaces = !ws.CullBackfaces
	default:
		return false
	}
	return true
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// StatusLine is the text shown in the menu bar.
func (ws *Workspace) StatusLine(solid string) string {
	var sb strings.Builder
	sb.WriteString(solid)
	fmt.Fprintf(&sb, "  [n]ormals %s  [g]rid %s  [c]ull %s  axes [x]%s [y]%s [z]%s",
		onOff(ws.NormalsVisible),
		onOff(ws.GridVisible),
		onOff(ws.CullBackfaces),
		onOff(ws.XAxisVisible),
		onOff(ws.YAxisVisible),
		onOff(ws.ZAxisVisible),
	)
	fmt.Fprintf(&sb, "  zoom %.2f", ws.Scale)
	if ws.SelectedFace >= 0 {
		fmt.Fprintf(&sb, "  face %d", ws.SelectedFace)
	}
	return sb.String()
}
