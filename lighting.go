package polyview

import (
	"image/color"
	"math"
)

// DirectionalLight shines along Direction, given in camera space.
type DirectionalLight struct {
	Direction Point3
	Intensity uint8
}

// Lighting is an ambient term plus directional lights, applied to a flat
// material color.
type Lighting struct {
	Ambient  uint8
	Lights   []DirectionalLight
	Material color.RGBA
}

// DefaultLighting is a white key light from the upper left behind the
// viewer and a half-strength fill light from the opposite side.
func DefaultLighting() Lighting {
	return Lighting{
		Ambient: 100,
		Lights: []DirectionalLight{
			{Direction: Point3{X: 1, Y: 1, Z: 1}, Intensity: 255},
			{Direction: Point3{X: -1, Y: -1, Z: -1}, Intensity: 127},
		},
		Material: color.RGBA{R: 180, G: 180, B: 180, A: 255},
	}
}

// Shade returns the color of a face with the given camera-space unit normal.
func (l Lighting) Shade(normal Point3) color.RGBA {
	brightness := float64(l.Ambient) / 255
	for _, light := range l.Lights {
		toLight, ok := light.Direction.Scale(-1).Normalize()
		if !ok {
			continue
		}
		diffuse := math.Max(0, normal.Dot(toLight))
		brightness += diffuse * float64(light.Intensity) / 255
	}

	return color.RGBA{
		R: shadeChannel(l.Material.R, brightness),
		G: shadeChannel(l.Material.G, brightness),
		B: shadeChannel(l.Material.B, brightness),
		A: l.Material.A,
	}
}

func shadeChannel(c uint8, brightness float64) uint8 {
	return uint8(clamp(int(float64(c)*brightness), 0, 255))
}
