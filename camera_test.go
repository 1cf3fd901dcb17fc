package polyview

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCameraZoomIsPixelsPerUnit(t *testing.T) {
	ws := NewWorkspace()
	cam := NewCamera(ws, 800, 600)

	p := cam.ToCamera(NewPoint3(1, 0, 0))
	assertPointNear(t, NewPoint3(100, 0, focalLength(600)), p)

	s := cam.Project(p)
	assert.InDelta(t, 500, s.X, screenEqualityThreshold)
	assert.InDelta(t, 300, s.Y, screenEqualityThreshold)

	ws.Scale = 50
	s = NewCamera(ws, 800, 600).Project(NewCamera(ws, 800, 600).ToCamera(NewPoint3(0, 1, 0)))
	assert.InDelta(t, 400, s.X, screenEqualityThreshold)
	assert.InDelta(t, 350, s.Y, screenEqualityThreshold)
}

func TestCameraRotateNormal(t *testing.T) {
	ws := NewWorkspace()
	ws.RotationY = math.Pi / 2
	cam := NewCamera(ws, 800, 600)

	// zoom and translation do not touch directions
	assertPointNear(t, NewPoint3(0, 0, -1), cam.RotateNormal(NewPoint3(1, 0, 0)))
	assertPointNear(t, NewPoint3(0, 1, 0), cam.RotateNormal(NewPoint3(0, 1, 0)))

	ws.RotationY = 0
	ws.RotationX = math.Pi / 2
	cam = NewCamera(ws, 800, 600)
	assertPointNear(t, NewPoint3(0, 0, 1), cam.RotateNormal(NewPoint3(0, 1, 0)))
}
