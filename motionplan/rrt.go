package motionplan

import (
	"context"
	"math/rand"

	"github.com/pkg/errors"
	"go.opencensus.io/trace"

	"go.viam.com/rrt/logging"
)

// Tree is a Rapidly Exploring Random Tree. It grows by repeatedly sampling the domain, finding
// the nearest existing node and stepping from it toward the sample. Nodes and edges are only ever
// appended; index 0 is the root.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	cfg      *Config
	sampler  *Sampler
	feasible FeasibilityCheck
	logger   logging.Logger

	nodes []Node
	edges []Edge
	depth []int
}

// NewTree validates cfg and creates a tree rooted at start. A nil randseed is replaced by a source
// seeded with cfg.RandomSeed.
func NewTree(start []float64, cfg *Config, randseed *rand.Rand, logger logging.Logger) (*Tree, error) {
	if cfg == nil {
		return nil, errNoConfig
	}
	if err := cfg.Validate(""); err != nil {
		return nil, err
	}
	if len(start) == 0 {
		return nil, errors.New("start node must have at least one dimension")
	}
	if len(start) != cfg.Domain.Dim() {
		return nil, newDimensionMismatchError(len(start), cfg.Domain.Dim())
	}
	for _, v := range start {
		if !isFinite(v) {
			return nil, errors.Errorf("start node %v has a non-finite coordinate", start)
		}
	}
	if randseed == nil {
		//nolint:gosec
		randseed = rand.New(rand.NewSource(cfg.RandomSeed))
	}
	if logger == nil {
		logger = logging.NewBlankLogger("rrt")
	}

	// The tree keeps its own copy so later changes to cfg cannot affect it.
	ownCfg := *cfg
	iterations := *cfg.Iterations
	ownCfg.Iterations = &iterations
	ownCfg.Domain = cfg.Domain.clone()

	return &Tree{
		cfg:      &ownCfg,
		sampler:  NewSampler(ownCfg.Domain, randseed),
		feasible: ownCfg.FeasibilityCheck,
		logger:   logger,
		nodes:    []Node{NewNode(start)},
		depth:    []int{0},
	}, nil
}

// Build grows the tree until it holds the configured number of growth steps.
func (t *Tree) Build() error {
	return t.BuildContext(context.Background())
}

// BuildContext is like Build but stops between growth steps once ctx is done. The steps completed
// so far are kept, and a later call resumes from them.
func (t *Tree) BuildContext(ctx context.Context) error {
	ctx, span := trace.StartSpan(ctx, "rrt::BuildContext")
	defer span.End()

	budget := t.Budget()
	t.logger.Debugf("building tree of %d growth steps with step size %v from %v", budget, t.cfg.StepSize, t.nodes[0])
	for t.Steps() < budget {
		select {
		case <-ctx.Done():
			t.logger.Debugf("tree build stopped after %d growth steps", t.Steps())
			return errors.Wrapf(ctx.Err(), "tree build stopped after %d of %d growth steps", t.Steps(), budget)
		default:
		}
		if _, _, err := t.Step(); err != nil {
			return err
		}
	}
	t.logger.Debugf("built tree with %d nodes", len(t.nodes))
	return nil
}

// Step performs one growth step and returns the node and edge it added. On error the tree is
// unchanged.
func (t *Tree) Step() (Node, Edge, error) {
	nearIdx, newQ, err := t.extend()
	if err != nil {
		return Node{}, Edge{}, err
	}

	newNode := Node{q: newQ}
	edge := Edge{Parent: nearIdx, Child: len(t.nodes)}
	t.nodes = append(t.nodes, newNode)
	t.edges = append(t.edges, edge)
	t.depth = append(t.depth, t.depth[nearIdx]+1)
	return newNode, edge, nil
}

// extend samples until the nearest node is farther than the step size, which guarantees every
// step makes real progress, then steers from that node toward the sample.
func (t *Tree) extend() (int, []float64, error) {
	maxAttempts := t.cfg.maxSampleAttempts()
	for attempt := 0; attempt < maxAttempts; attempt++ {
		target := t.sampler.Sample()
		nearIdx, dist := nearestNeighbor(t.nodes, target)
		// An unmeasurable distance cannot be steered along.
		if dist <= t.cfg.StepSize || !isFinite(dist) {
			continue
		}
		near := t.nodes[nearIdx].q
		newQ := steer(near, target, dist, t.cfg.StepSize)
		if t.feasible != nil && !t.feasible.CheckSegment(near, newQ) {
			continue
		}
		return nearIdx, newQ, nil
	}
	t.logger.Warnw("no progress possible in domain", "attempts", maxAttempts, "step_size", t.cfg.StepSize, "nodes", len(t.nodes))
	return 0, nil, newDomainTooConstrainedError(maxAttempts, t.cfg.StepSize)
}

// Nodes returns the tree's nodes in insertion order.
func (t *Tree) Nodes() []Node {
	return append([]Node(nil), t.nodes...)
}

// Edges returns the tree's edges in insertion order. Edge i always has child i+1.
func (t *Tree) Edges() []Edge {
	return append([]Edge(nil), t.edges...)
}

// Node returns the node at index i.
func (t *Tree) Node(i int) Node {
	return t.nodes[i]
}

// Root returns the start node.
func (t *Tree) Root() Node {
	return t.nodes[0]
}

// Len returns the number of nodes, including the root.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Steps returns the number of completed growth steps.
func (t *Tree) Steps() int {
	return len(t.edges)
}

// Budget returns the number of growth steps Build grows the tree to.
func (t *Tree) Budget() int {
	return *t.cfg.Iterations
}

// Dim returns the dimension of every node in the tree.
func (t *Tree) Dim() int {
	return t.nodes[0].Dim()
}

// StepSize returns the distance every growth step advances.
func (t *Tree) StepSize() float64 {
	return t.cfg.StepSize
}

// Domain returns the sampling domain.
func (t *Tree) Domain() Domain {
	return t.cfg.Domain.clone()
}

// Parent returns the index of node i's parent. The root has no parent.
func (t *Tree) Parent(i int) (int, bool) {
	if i <= 0 || i >= len(t.nodes) {
		return 0, false
	}
	return t.edges[i-1].Parent, true
}

// Depth returns the number of edges between node i and the root.
func (t *Tree) Depth(i int) int {
	return t.depth[i]
}

// MaxDepth returns the largest depth of any node.
func (t *Tree) MaxDepth() int {
	maxDepth := 0
	for _, d := range t.depth {
		if d > maxDepth {
			maxDepth = d
		}
	}
	return maxDepth
}
