package rimage

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Colors used when rendering trees.
var (
	White = color.RGBA{255, 240, 200, 255}
	Red   = color.RGBA{255, 20, 20, 255}
	Black = color.RGBA{20, 20, 40, 255}
	Blue  = color.RGBA{70, 130, 255, 255}
	Gray  = color.RGBA{90, 90, 110, 255}
)

// Gradient returns the color a fraction t of the way from one color to another, blended in the
// perceptually uniform Lab space. t is clamped to [0, 1].
func Gradient(from, to color.Color, t float64) color.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	cFrom, _ := colorful.MakeColor(from)
	cTo, _ := colorful.MakeColor(to)
	return cFrom.BlendLab(cTo, t).Clamped()
}
