package motionplan

// nearestNeighbor scans every node and returns the index of the one closest to q along with its
// distance. Ties keep the lowest index. nodes must be non-empty.
func nearestNeighbor(nodes []Node, q []float64) (int, float64) {
	best := 0
	bestDist := configurationDistance(nodes[0].q, q)
	for i := 1; i < len(nodes); i++ {
		if dist := configurationDistance(nodes[i].q, q); dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return best, bestDist
}
