package motionplan

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestNearestNeighbor(t *testing.T) {
	nodes := []Node{NewNode([]float64{0.0})}
	// Candidates along a line, the nearest is simply the closest integer.
	for i := 1.0; i < 110.0; i++ {
		nodes = append(nodes, NewNode([]float64{i}))
	}

	idx, dist := nearestNeighbor(nodes, []float64{23.1})
	test.That(t, idx, test.ShouldEqual, 23)
	test.That(t, dist, test.ShouldAlmostEqual, 0.1)

	idx, dist = nearestNeighbor(nodes, []float64{-4})
	test.That(t, idx, test.ShouldEqual, 0)
	test.That(t, dist, test.ShouldAlmostEqual, 4)

	t.Run("ties keep the lowest index", func(t *testing.T) {
		nodes := []Node{
			NewNode([]float64{5, 5}),
			NewNode([]float64{0, 0}),
			NewNode([]float64{2, 0}),
			NewNode([]float64{0, 0}),
		}
		idx, dist := nearestNeighbor(nodes, []float64{1, 0})
		test.That(t, idx, test.ShouldEqual, 1)
		test.That(t, dist, test.ShouldEqual, 1.)

		idx, dist = nearestNeighbor(nodes, []float64{0, 0})
		test.That(t, idx, test.ShouldEqual, 1)
		test.That(t, dist, test.ShouldEqual, 0.)
	})

	t.Run("single root", func(t *testing.T) {
		idx, dist := nearestNeighbor([]Node{NewNode([]float64{3, 4})}, []float64{0, 0})
		test.That(t, idx, test.ShouldEqual, 0)
		test.That(t, dist, test.ShouldAlmostEqual, 5)
	})

	t.Run("unmeasurable distances", func(t *testing.T) {
		nodes := []Node{NewNode([]float64{-math.MaxFloat64}), NewNode([]float64{-math.MaxFloat64 / 2})}
		idx, dist := nearestNeighbor(nodes, []float64{math.MaxFloat64})
		test.That(t, idx, test.ShouldEqual, 0)
		test.That(t, math.IsInf(dist, 1), test.ShouldBeTrue)
	})
}
