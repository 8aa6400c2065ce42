package wheel

// Wheel — roulette-wheel selection container.
//
// Description:
//
//	A Wheel holds regions in insertion order and draws an element with
//	probability weight/totalWeight. The unit interval picture: the draw
//	partitions [0, total) into contiguous sub-intervals proportional to
//	each region's weight, in storage order; a uniform draw lands in
//	exactly one of them. Storage order decides which literal values map
//	to which element but never changes any element's probability.
//
// Algorithm Outline (Select):
//  1. Empty wheel ⇒ ErrEmptyWheel; single region ⇒ return it outright.
//  2. total = Σ weights.
//  3. r = uniform draw in [0, total) (see drawWeight for the per-type range).
//  4. Walk regions accumulating a partial sum; the first region whose
//     partial sum strictly exceeds r is selected.
//  5. If floating-point round-off lets the walk run off the tail, settle
//     on the last region.
//
// Invariants:
//   - At most one region per element value.
//   - Stored weights are strictly positive, except transiently between an
//     external SetWeight through the Regions view and RemoveInvalidRegions.
import "golang.org/x/exp/rand"

// Wheel is a weighted random selection container over elements of type E
// with weights of type W. Construct with New, NewFromMap or NewFromPairs;
// the zero value is usable and behaves like an empty wheel.
//
// A Wheel is not safe for concurrent use.
type Wheel[E comparable, W Weight] struct {
	regions []Region[E, W]
	rng     *rand.Rand
}

// New returns an empty wheel. Without options the random source is seeded
// from OS entropy, so successive runs draw different sequences; pass
// WithSeed (or call SeedRandom) for reproducible draws.
func New[E comparable, W Weight](opts ...Option) *Wheel[E, W] {
	cfg := newConfig(opts...)

	return &Wheel[E, W]{rng: cfg.rng}
}

// NewFromMap builds a wheel from an element→weight mapping, adding one
// region per entry. Returns ErrInvalidWeight if any weight is ≤ 0.
// Insertion order follows map iteration and is therefore unspecified;
// it never affects selection probabilities.
func NewFromMap[E comparable, W Weight](weights map[E]W, opts ...Option) (*Wheel[E, W], error) {
	w := New[E, W](opts...)
	for element, weight := range weights {
		if err := w.AddRegion(element, weight); err != nil {
			return nil, err
		}
	}

	return w, nil
}

// NewFromPairs builds a wheel from (element, weight) pairs in order.
// A repeated element accumulates weight onto its first occurrence.
// Returns ErrInvalidWeight if any weight is ≤ 0.
func NewFromPairs[E comparable, W Weight](pairs []Pair[E, W], opts ...Option) (*Wheel[E, W], error) {
	w := New[E, W](opts...)
	for _, p := range pairs {
		if err := w.AddRegion(p.Element, p.Weight); err != nil {
			return nil, err
		}
	}

	return w, nil
}

// AddRegion adds weight for element. If the element is already present
// the weight is added to its existing region; otherwise a new region is
// appended at the end of the sequence. Weight must be strictly positive,
// else ErrInvalidWeight is returned and the wheel is left untouched.
//
// Complexity: O(n) time, O(1) space.
func (w *Wheel[E, W]) AddRegion(element E, weight W) error {
	if weight <= 0 {
		return ErrInvalidWeight
	}

	if i, ok := w.indexOf(element); ok {
		w.regions[i].weight += weight

		return nil
	}
	w.regions = append(w.regions, NewRegion(element, weight))

	return nil
}

// Select draws an element with probability proportional to its weight.
// Returns ErrEmptyWheel when the wheel has no regions. A single-region
// wheel returns its element without touching the random source.
//
// Complexity: O(n) time, O(1) space.
func (w *Wheel[E, W]) Select() (E, error) {
	if len(w.regions) == 0 {
		var zero E

		return zero, ErrEmptyWheel
	}
	if len(w.regions) == 1 {
		return w.regions[0].element, nil
	}

	r := drawWeight(w.rand(), w.totalWeight())

	return w.elementAt(r), nil
}

// SelectSafe is Select with comma-ok semantics: an empty wheel yields
// the zero element and false instead of an error.
func (w *Wheel[E, W]) SelectSafe() (E, bool) {
	element, err := w.Select()
	if err != nil {
		var zero E

		return zero, false
	}

	return element, true
}

// SelectAndModifyWeight draws an element, then adds delta to its weight.
// If the new weight is ≤ 0 the region is pruned rather than kept invalid.
// The conventional decay delta is -1. Returns the element selected before
// any modification, or ErrEmptyWheel when the wheel has no regions.
func (w *Wheel[E, W]) SelectAndModifyWeight(delta W) (E, error) {
	element, err := w.Select()
	if err != nil {
		return element, err
	}
	w.modifyWeight(element, delta)

	return element, nil
}

// SelectAndRemove draws an element and unconditionally removes its
// region, implementing weighted selection without replacement when
// called in a loop. Returns ErrEmptyWheel when the wheel has no regions.
func (w *Wheel[E, W]) SelectAndRemove() (E, error) {
	element, err := w.Select()
	if err != nil {
		return element, err
	}
	w.RemoveElement(element)

	return element, nil
}

// RemoveElement removes the region holding element, if present, and
// reports whether a removal occurred. Remaining regions keep their order.
func (w *Wheel[E, W]) RemoveElement(element E) bool {
	i, ok := w.indexOf(element)
	if !ok {
		return false
	}
	w.regions = append(w.regions[:i], w.regions[i+1:]...)

	return true
}

// RemoveInvalidRegions drops every region whose weight is ≤ 0 and returns
// the number removed. Ordinary flows prune through SelectAndModifyWeight;
// this handles weights driven non-positive through the Regions view.
func (w *Wheel[E, W]) RemoveInvalidRegions() int {
	kept := w.regions[:0]
	for _, region := range w.regions {
		if region.weight > 0 {
			kept = append(kept, region)
		}
	}
	removed := len(w.regions) - len(kept)
	w.regions = kept

	return removed
}

// Empty reports whether the wheel has no regions.
func (w *Wheel[E, W]) Empty() bool { return len(w.regions) == 0 }

// Size returns the number of regions.
func (w *Wheel[E, W]) Size() int { return len(w.regions) }

// SelectionProbability returns the chance of drawing element as a
// percentage in [0.0, 100.0]. It is 0.0 when the wheel is empty, the
// element is absent, or the total weight is ≤ 0.
func (w *Wheel[E, W]) SelectionProbability(element E) float64 {
	i, ok := w.indexOf(element)
	if !ok {
		return 0.0
	}

	total := w.totalWeight()
	if total <= 0 {
		return 0.0
	}

	return float64(w.regions[i].weight) / float64(total) * 100.0
}

// Regions exposes the wheel's backing region sequence for inspection.
// The slice aliases internal state: treat it as read-only. Mutating a
// weight through it to zero or below leaves the wheel inconsistent until
// RemoveInvalidRegions is called.
func (w *Wheel[E, W]) Regions() []Region[E, W] { return w.regions }

// SeedRandom reseeds the wheel's random source deterministically.
// Identical wheels reseeded with the same value produce identical draw
// sequences; distinct seeds diverge with overwhelming probability.
func (w *Wheel[E, W]) SeedRandom(seed uint64) {
	w.rng = rand.New(rand.NewSource(seed))
}

// rand returns the wheel's random source, booting a zero-value wheel
// from OS entropy on first use.
func (w *Wheel[E, W]) rand() *rand.Rand {
	if w.rng == nil {
		w.rng = newEntropyRand()
	}

	return w.rng
}

// totalWeight sums all region weights.
func (w *Wheel[E, W]) totalWeight() W {
	var total W
	for _, region := range w.regions {
		total += region.weight
	}

	return total
}

// elementAt walks the region sequence accumulating a partial sum and
// returns the first element whose partial sum strictly exceeds r.
func (w *Wheel[E, W]) elementAt(r W) E {
	var acc W
	for _, region := range w.regions {
		acc += region.weight
		if acc > r {
			return region.element
		}
	}

	// Floating-point round-off at the tail: settle on the last region.
	return w.regions[len(w.regions)-1].element
}

// indexOf locates element in the region sequence.
func (w *Wheel[E, W]) indexOf(element E) (int, bool) {
	for i := range w.regions {
		if w.regions[i].element == element {
			return i, true
		}
	}

	return 0, false
}

// modifyWeight adds delta to element's weight, pruning the region when
// the result is no longer strictly positive. Absent elements are ignored.
func (w *Wheel[E, W]) modifyWeight(element E, delta W) {
	i, ok := w.indexOf(element)
	if !ok {
		return
	}

	next := w.regions[i].weight + delta
	if next <= 0 {
		w.regions = append(w.regions[:i], w.regions[i+1:]...)

		return
	}
	w.regions[i].weight = next
}
