// Package rimage holds the raster drawing helpers used to render planner output.
package rimage

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

var font *truetype.Font

// init sets up the fonts we want to use.
func init() {
	var err error
	font, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
}

// Font returns the font we use for drawing.
func Font() *truetype.Font {
	return font
}

// NewCanvas returns a drawing context of the given size filled with the background color.
func NewCanvas(width, height int, background color.Color) *gg.Context {
	dc := gg.NewContext(width, height)
	dc.SetColor(background)
	dc.Clear()
	return dc
}

// DrawString writes a string to the given context at a particular point.
func DrawString(dc *gg.Context, text string, p image.Point, c color.Color, size float64) {
	dc.SetFontFace(truetype.NewFace(Font(), &truetype.Options{Size: size}))
	dc.SetColor(c)
	dc.DrawStringWrapped(text, float64(p.X), float64(p.Y), 0, 0, float64(dc.Width()), 1, 0)
}

// DrawLine draws a straight segment between two points.
func DrawLine(dc *gg.Context, from, to gg.Point, c color.Color, width float64) {
	dc.SetColor(c)
	dc.SetLineWidth(width)
	dc.DrawLine(from.X, from.Y, to.X, to.Y)
	dc.Stroke()
}

// DrawCircle draws a filled circle centered on p.
func DrawCircle(dc *gg.Context, p gg.Point, radius float64, c color.Color) {
	dc.SetColor(c)
	dc.DrawCircle(p.X, p.Y, radius)
	dc.Fill()
}

// DrawRectangleEmpty draws the given rectangle into the context. The positions of the
// rectangle are used to place it within the context.
func DrawRectangleEmpty(dc *gg.Context, r image.Rectangle, c color.Color, width float64) {
	minX, minY := float64(r.Min.X), float64(r.Min.Y)
	maxX, maxY := float64(r.Max.X), float64(r.Max.Y)
	DrawLine(dc, gg.Point{X: minX, Y: minY}, gg.Point{X: maxX, Y: minY}, c, width)
	DrawLine(dc, gg.Point{X: minX, Y: minY}, gg.Point{X: minX, Y: maxY}, c, width)
	DrawLine(dc, gg.Point{X: maxX, Y: minY}, gg.Point{X: maxX, Y: maxY}, c, width)
	DrawLine(dc, gg.Point{X: minX, Y: maxY}, gg.Point{X: maxX, Y: maxY}, c, width)
}
