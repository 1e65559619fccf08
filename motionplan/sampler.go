package motionplan

import (
	"math"
	"math/rand"
)

// Sampler draws uniformly distributed configurations from a Domain. No configuration is ever
// rejected here; filtering happens in the growth step.
type Sampler struct {
	domain   Domain
	randseed *rand.Rand
}

// NewSampler returns a sampler over the domain consuming the given random source. The domain is
// assumed to be valid.
func NewSampler(domain Domain, randseed *rand.Rand) *Sampler {
	return &Sampler{domain: domain, randseed: randseed}
}

// Sample returns a new configuration, consuming one draw per axis.
func (s *Sampler) Sample() []float64 {
	switch s.domain.Mode {
	case BoundsScale:
		q := make([]float64, len(s.domain.Scale))
		for i, scale := range s.domain.Scale {
			q[i] = s.randseed.Float64() * scale
		}
		return q
	default:
		q := make([]float64, len(s.domain.Limits))
		for i, limit := range s.domain.Limits {
			// Interpolating the bounds cannot overflow even when Max-Min does. Rounding may still
			// land an ulp outside, so the result is clamped.
			u := s.randseed.Float64()
			q[i] = math.Min(math.Max(limit.Min*(1-u)+limit.Max*u, limit.Min), limit.Max)
		}
		return q
	}
}
