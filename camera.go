package polyview

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera orbits the origin. It is rebuilt from the Workspace every frame.
type Camera struct {
	modelView mgl64.Mat4
	rotation  mgl64.Mat4
	width     float64
	height    float64
}

// NewCamera places the camera on the -z axis at the focal distance, so one
// world unit at the origin spans ws.Scale pixels, and applies the
// workspace's orbit angles.
func NewCamera(ws *Workspace, width, height int) *Camera {
	w, h := float64(width), float64(height)
	s := ws.Scale

	rotation := mgl64.HomogRotate3DX(ws.RotationX).Mul4(mgl64.HomogRotate3DY(ws.RotationY))
	modelView := mgl64.Translate3D(0, 0, focalLength(h)).
		Mul4(mgl64.Scale3D(s, s, s)).
		Mul4(rotation)

	return &Camera{
		modelView: modelView,
		rotation:  rotation,
		width:     w,
		height:    h,
	}
}

// ToCamera transforms a world position into camera space, where +z points
// into the screen and +y points down.
func (c *Camera) ToCamera(p Point3) Point3 {
	return point3FromVec(c.modelView.Mul4x1(p.Vec().Vec4(1)).Vec3())
}

// RotateNormal transforms a direction into camera space, ignoring
// translation and zoom.
func (c *Camera) RotateNormal(n Point3) Point3 {
	return point3FromVec(c.rotation.Mul4x1(n.Vec().Vec4(0)).Vec3())
}

// Project maps a camera-space point in front of the near plane to the screen.
func (c *Camera) Project(p Point3) Point {
	return Point{
		X: ConvertToScreenX(c.width, c.height, p.X, p.Z),
		Y: ConvertToScreenY(c.width, c.height, p.Y, p.Z),
	}
}

