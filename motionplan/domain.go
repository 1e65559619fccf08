package motionplan

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"go.viam.com/utils"
)

// BoundsMode selects how a Domain describes the sampling region of each axis.
type BoundsMode string

const (
	// BoundsInterval samples each axis from an explicit [Min, Max] limit.
	BoundsInterval BoundsMode = "interval"
	// BoundsScale samples each axis from [0, scale], anchored at the origin.
	BoundsScale BoundsMode = "scale"
)

// Limit represents the sampling limits of one axis.
type Limit struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Domain describes the region of the state space the tree samples from.
type Domain struct {
	Mode   BoundsMode `json:"mode"`
	Limits []Limit    `json:"limits,omitempty"`
	Scale  []float64  `json:"scale,omitempty"`
}

// NewIntervalDomain returns a domain bounded per axis by the given limits.
func NewIntervalDomain(limits ...Limit) Domain {
	return Domain{Mode: BoundsInterval, Limits: append([]Limit(nil), limits...)}
}

// NewScaleDomain returns a domain spanning [0, scale[i]] on each axis i.
func NewScaleDomain(scale ...float64) Domain {
	return Domain{Mode: BoundsScale, Scale: append([]float64(nil), scale...)}
}

// Dim returns the number of axes of the domain.
func (d Domain) Dim() int {
	switch d.Mode {
	case BoundsInterval:
		return len(d.Limits)
	case BoundsScale:
		return len(d.Scale)
	default:
		return 0
	}
}

// Validate ensures the domain is non-empty and consistent with its mode.
func (d Domain) Validate(path string) error {
	switch d.Mode {
	case BoundsInterval:
		if len(d.Scale) != 0 {
			return utils.NewConfigValidationError(path, errors.New("scale cannot be set for interval bounds"))
		}
		if len(d.Limits) == 0 {
			return utils.NewConfigValidationFieldRequiredError(path, "limits")
		}
		for i, limit := range d.Limits {
			if !isFinite(limit.Min) || !isFinite(limit.Max) {
				return utils.NewConfigValidationError(fmt.Sprintf("%s.limits.%d", path, i), errors.New("limits must be finite"))
			}
			if limit.Max < limit.Min {
				return utils.NewConfigValidationError(fmt.Sprintf("%s.limits.%d", path, i),
					errors.Errorf("empty interval, max %v is below min %v", limit.Max, limit.Min))
			}
			if !isFinite(limit.Max - limit.Min) {
				return utils.NewConfigValidationError(fmt.Sprintf("%s.limits.%d", path, i),
					errors.Errorf("interval [%v, %v] is too wide to measure", limit.Min, limit.Max))
			}
		}
	case BoundsScale:
		if len(d.Limits) != 0 {
			return utils.NewConfigValidationError(path, errors.New("limits cannot be set for scale bounds"))
		}
		if len(d.Scale) == 0 {
			return utils.NewConfigValidationFieldRequiredError(path, "scale")
		}
		for i, s := range d.Scale {
			if !isFinite(s) || s <= 0 {
				return utils.NewConfigValidationError(fmt.Sprintf("%s.scale.%d", path, i),
					errors.Errorf("scale must be positive and finite, got %v", s))
			}
		}
	case "":
		return utils.NewConfigValidationFieldRequiredError(path, "mode")
	default:
		return utils.NewConfigValidationError(path, errors.Errorf("unknown bounds mode %q", d.Mode))
	}
	return nil
}

// AxisLimits returns the closed sampling interval of every axis, whatever the mode.
func (d Domain) AxisLimits() []Limit {
	switch d.Mode {
	case BoundsInterval:
		return append([]Limit(nil), d.Limits...)
	case BoundsScale:
		limits := make([]Limit, 0, len(d.Scale))
		for _, s := range d.Scale {
			limits = append(limits, Limit{Min: 0, Max: s})
		}
		return limits
	default:
		return nil
	}
}

// Contains reports whether q has the domain's dimension and lies within every axis limit.
func (d Domain) Contains(q []float64) bool {
	limits := d.AxisLimits()
	if len(q) != len(limits) {
		return false
	}
	for i, v := range q {
		if v < limits[i].Min || v > limits[i].Max {
			return false
		}
	}
	return true
}

func (d Domain) clone() Domain {
	return Domain{
		Mode:   d.Mode,
		Limits: append([]Limit(nil), d.Limits...),
		Scale:  append([]float64(nil), d.Scale...),
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
