package motionplan

import "gonum.org/v1/gonum/floats"

// Steer returns the configuration stepSize along the straight line from near toward target. The
// step is always exactly stepSize, so a target closer than stepSize is overshot. When near and
// target coincide there is no direction to move in and a copy of near is returned.
func Steer(near, target []float64, stepSize float64) []float64 {
	dist := configurationDistance(near, target)
	if dist == 0 {
		return append([]float64(nil), near...)
	}
	return steer(near, target, dist, stepSize)
}

// steer moves from near toward target by stepSize given their precomputed distance, which must
// be non-zero.
func steer(near, target []float64, dist, stepSize float64) []float64 {
	direction := make([]float64, len(near))
	floats.SubTo(direction, target, near)
	newQ := make([]float64, len(near))
	floats.AddScaledTo(newQ, near, stepSize/dist, direction)
	return newQ
}
