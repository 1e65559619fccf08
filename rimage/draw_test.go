package rimage

import (
	"image"
	"image/color"
	"testing"

	"github.com/fogleman/gg"
	"go.viam.com/test"
)

func sameRGB(t *testing.T, actual, expected color.Color) {
	t.Helper()
	ar, ag, ab, _ := actual.RGBA()
	er, eg, eb, _ := expected.RGBA()
	test.That(t, ar>>8, test.ShouldAlmostEqual, er>>8, 1)
	test.That(t, ag>>8, test.ShouldAlmostEqual, eg>>8, 1)
	test.That(t, ab>>8, test.ShouldAlmostEqual, eb>>8, 1)
}

func TestDraw(t *testing.T) {
	dc := NewCanvas(40, 30, Black)
	test.That(t, dc.Width(), test.ShouldEqual, 40)
	test.That(t, dc.Height(), test.ShouldEqual, 30)
	sameRGB(t, dc.Image().At(0, 0), Black)

	DrawCircle(dc, gg.Point{X: 10, Y: 10}, 3, Red)
	sameRGB(t, dc.Image().At(10, 10), Red)

	DrawLine(dc, gg.Point{X: 0, Y: 20.5}, gg.Point{X: 40, Y: 20.5}, White, 3)
	sameRGB(t, dc.Image().At(30, 20), White)

	DrawRectangleEmpty(dc, image.Rect(25, 2, 35, 12), Blue, 2)
	sameRGB(t, dc.Image().At(30, 2), Blue)
	sameRGB(t, dc.Image().At(30, 7), Black)

	DrawString(dc, "rrt", image.Point{X: 1, Y: 1}, White, 8)
	test.That(t, Font(), test.ShouldNotBeNil)
}

func TestGradient(t *testing.T) {
	sameRGB(t, Gradient(Red, Blue, 0), Red)
	sameRGB(t, Gradient(Red, Blue, 1), Blue)
	sameRGB(t, Gradient(Red, Blue, -3), Red)
	sameRGB(t, Gradient(Red, Blue, 7), Blue)

	mid := Gradient(Black, White, 0.5)
	r, _, _, _ := mid.RGBA()
	test.That(t, r>>8, test.ShouldBeGreaterThan, 20)
	test.That(t, r>>8, test.ShouldBeLessThan, 255)
}
