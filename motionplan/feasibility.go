package motionplan

// FeasibilityCheck decides whether the straight segment between two configurations may be added
// to the tree. It is the extension point for obstacle or collision testing; a tree without one
// treats every segment as feasible.
type FeasibilityCheck interface {
	CheckSegment(from, to []float64) bool
}

// FeasibilityCheckFunc adapts a plain function into a FeasibilityCheck.
type FeasibilityCheckFunc func(from, to []float64) bool

// CheckSegment calls f(from, to).
func (f FeasibilityCheckFunc) CheckSegment(from, to []float64) bool { return f(from, to) }

// NewDomainFeasibilityCheck rejects any segment whose endpoint leaves the domain. Growth from a
// start node outside the domain can otherwise place nodes outside it too.
func NewDomainFeasibilityCheck(domain Domain) FeasibilityCheck {
	return FeasibilityCheckFunc(func(_, to []float64) bool {
		return domain.Contains(to)
	})
}
