// Package wheel defines core types, options, and sentinel errors
// for the wheel subpackage of github.com/katalvlaran/roulette.
package wheel

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for wheel operations.
var (
	// ErrInvalidWeight indicates AddRegion received a weight that is not strictly positive.
	ErrInvalidWeight = errors.New("wheel: weight must be strictly positive")
	// ErrEmptyWheel indicates a selection was attempted on a wheel with no regions.
	ErrEmptyWheel = errors.New("wheel: cannot select from an empty wheel")
)

// Weight constrains the weight type of a wheel: any integer or
// floating-point type. Integral weights draw from the integer uniform
// distribution over [0, total-1]; floating-point weights draw from the
// continuous uniform distribution over [0, total).
type Weight interface {
	constraints.Integer | constraints.Float
}

// Region is a single segment of a wheel: an element and its selection
// weight. Regions are owned by the wheel that holds them; a region whose
// weight is ≤ 0 is logically absent and eligible for pruning.
type Region[E comparable, W Weight] struct {
	element E
	weight  W
}

// NewRegion returns a region holding element with the given weight.
// No validation happens here; positivity is enforced by the wheel.
func NewRegion[E comparable, W Weight](element E, weight W) Region[E, W] {
	return Region[E, W]{element: element, weight: weight}
}

// Element returns the element stored in this region.
func (r Region[E, W]) Element() E { return r.element }

// Weight returns the selection weight of this region.
func (r Region[E, W]) Weight() W { return r.weight }

// SetWeight overwrites the region's weight. Driving a weight to zero or
// below through a Regions view must be followed by RemoveInvalidRegions.
func (r *Region[E, W]) SetWeight(weight W) { r.weight = weight }

// Pair is an (element, weight) input for NewFromPairs.
type Pair[E comparable, W Weight] struct {
	Element E
	Weight  W
}
