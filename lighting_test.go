package polyview

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShade(t *testing.T) {
	invSqrt3 := 1 / math.Sqrt(3)
	invSqrt2 := 1 / math.Sqrt(2)

	testCases := []struct {
		name     string
		normal   Point3
		expected color.RGBA
	}{
		{
			name:     "Facing the viewer",
			normal:   Point3{0, 0, -1},
			expected: color.RGBA{R: 174, G: 174, B: 174, A: 255},
		},
		{
			name:     "Perpendicular to both lights, ambient only",
			normal:   Point3{invSqrt2, -invSqrt2, 0},
			expected: color.RGBA{R: 70, G: 70, B: 70, A: 255},
		},
		{
			name:     "Facing the key light",
			normal:   Point3{-invSqrt3, -invSqrt3, -invSqrt3},
			expected: color.RGBA{R: 250, G: 250, B: 250, A: 255},
		},
		{
			name:     "Facing the fill light",
			normal:   Point3{invSqrt3, invSqrt3, invSqrt3},
			expected: color.RGBA{R: 160, G: 160, B: 160, A: 255},
		},
	}

	l := DefaultLighting()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, l.Shade(tc.normal))
		})
	}
}

func TestShadeClamps(t *testing.T) {
	l := Lighting{
		Ambient:  255,
		Lights:   []DirectionalLight{{Direction: Point3{0, 0, 1}, Intensity: 255}},
		Material: color.RGBA{R: 255, G: 10, B: 0, A: 200},
	}
	assert.Equal(t, color.RGBA{R: 255, G: 20, B: 0, A: 200}, l.Shade(Point3{0, 0, -1}))
}

func TestShadeIgnoresZeroDirection(t *testing.T) {
	l := Lighting{
		Ambient:  255,
		Lights:   []DirectionalLight{{Intensity: 255}},
		Material: color.RGBA{R: 100, G: 100, B: 100, A: 255},
	}
	assert.Equal(t, color.RGBA{R: 100, G: 100, B: 100, A: 255}, l.Shade(Point3{0, 0, -1}))
}
