package motionplan

import (
	"math"
	"math/rand"
	"testing"

	"go.viam.com/test"
)

func TestSampler(t *testing.T) {
	const samples = 20000

	t.Run("interval bounds", func(t *testing.T) {
		domain := NewIntervalDomain(Limit{-3, 7}, Limit{100, 100.5}, Limit{-2, -1})
		sampler := NewSampler(domain, rand.New(rand.NewSource(1)))
		lows := []float64{7, 100.5, -1}
		highs := []float64{-3, 100, -2}
		for i := 0; i < samples; i++ {
			q := sampler.Sample()
			test.That(t, len(q), test.ShouldEqual, 3)
			test.That(t, domain.Contains(q), test.ShouldBeTrue)
			for j, v := range q {
				if v < lows[j] {
					lows[j] = v
				}
				if v > highs[j] {
					highs[j] = v
				}
			}
		}
		// The samples cover the interval on every axis.
		for j, limit := range domain.Limits {
			width := limit.Max - limit.Min
			test.That(t, lows[j], test.ShouldBeLessThan, limit.Min+0.01*width)
			test.That(t, highs[j], test.ShouldBeGreaterThan, limit.Max-0.01*width)
		}
	})

	t.Run("bounds at the float limits", func(t *testing.T) {
		domain := NewIntervalDomain(Limit{-math.MaxFloat64, math.MaxFloat64}, Limit{math.MaxFloat64, math.MaxFloat64})
		sampler := NewSampler(domain, rand.New(rand.NewSource(3)))
		for i := 0; i < 1000; i++ {
			q := sampler.Sample()
			test.That(t, math.IsInf(q[0], 0), test.ShouldBeFalse)
			test.That(t, domain.Contains(q), test.ShouldBeTrue)
			test.That(t, q[1], test.ShouldEqual, math.MaxFloat64)
		}
	})

	t.Run("scale bounds", func(t *testing.T) {
		domain := NewScaleDomain(640, 480)
		sampler := NewSampler(domain, rand.New(rand.NewSource(2)))
		var sumX, sumY float64
		for i := 0; i < samples; i++ {
			q := sampler.Sample()
			test.That(t, q[0], test.ShouldBeGreaterThanOrEqualTo, 0)
			test.That(t, q[0], test.ShouldBeLessThanOrEqualTo, 640)
			test.That(t, q[1], test.ShouldBeGreaterThanOrEqualTo, 0)
			test.That(t, q[1], test.ShouldBeLessThanOrEqualTo, 480)
			sumX += q[0]
			sumY += q[1]
		}
		// Uniform over [0, scale] has mean scale/2.
		test.That(t, sumX/samples, test.ShouldAlmostEqual, 320, 10)
		test.That(t, sumY/samples, test.ShouldAlmostEqual, 240, 10)
	})

	t.Run("each axis consumes one draw", func(t *testing.T) {
		a := NewSampler(NewScaleDomain(1, 1), rand.New(rand.NewSource(5)))
		b := rand.New(rand.NewSource(5))
		q := a.Sample()
		test.That(t, q, test.ShouldResemble, []float64{b.Float64(), b.Float64()})
	})
}
