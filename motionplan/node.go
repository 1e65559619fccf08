package motionplan

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Node is a configuration in the state space. Nodes are immutable once created.
type Node struct {
	q []float64
}

// NewNode copies the given coordinates into a new Node.
func NewNode(q []float64) Node {
	return Node{q: append([]float64(nil), q...)}
}

// Q returns a copy of the node's coordinates.
func (n Node) Q() []float64 {
	return append([]float64(nil), n.q...)
}

// Dim is the number of coordinates of the node.
func (n Node) Dim() int {
	return len(n.q)
}

// At returns the i-th coordinate.
func (n Node) At(i int) float64 {
	return n.q[i]
}

// DistanceTo returns the Euclidean distance between two nodes of the same dimension.
func (n Node) DistanceTo(other Node) float64 {
	return configurationDistance(n.q, other.q)
}

func (n Node) String() string {
	return fmt.Sprintf("%v", n.q)
}

// Edge links a parent node to the child that was grown from it, by index into the tree's node list.
// Parent is always less than Child.
type Edge struct {
	Parent int
	Child  int
}

func (e Edge) String() string {
	return fmt.Sprintf("%d->%d", e.Parent, e.Child)
}

// configurationDistance is the L2 norm of the difference between two configurations.
func configurationDistance(a, b []float64) float64 {
	// 2 is the L value returning a standard L2 Normalization
	return floats.Distance(a, b, 2)
}
