// Package motionplan grows Rapidly Exploring Random Trees over bounded n-dimensional state spaces,
// a building block for sampling-based motion planning.
package motionplan
