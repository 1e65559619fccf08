package motionplan

import "github.com/pkg/errors"

var (
	// ErrDomainTooConstrained is returned when no sample far enough from the tree to make progress
	// could be drawn within the configured number of attempts.
	ErrDomainTooConstrained = errors.New("domain too constrained to make progress")

	errNoConfig = errors.New("cannot create tree, no config provided")
)

func newDomainTooConstrainedError(attempts int, stepSize float64) error {
	return errors.Wrapf(ErrDomainTooConstrained,
		"no sample farther than step size %v from the tree after %d attempts", stepSize, attempts)
}

func newDimensionMismatchError(startDim, domainDim int) error {
	return errors.Errorf("start node has %d dimensions but domain has %d", startDim, domainDim)
}
