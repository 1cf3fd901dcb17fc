package polyview

import "image/color"

var (
	backgroundColor = color.RGBA{R: 58, G: 58, B: 58, A: 255}
	gridColor       = color.RGBA{R: 74, G: 74, B: 74, A: 255}
	normalColor     = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	selectedColor   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	outlineColor    = color.RGBA{R: 255, G: 255, B: 255, A: 160}
	xAxisColor      = color.RGBA{R: 255, A: 255}
	yAxisColor      = color.RGBA{G: 255, A: 255}
	zAxisColor      = color.RGBA{B: 255, A: 255}
)

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
