// codec.go — JSON snapshots of the region sequence.
//
// A wheel marshals as a JSON array of {"element":…,"weight":…} objects in
// insertion order; the random source is never serialized. Restoring goes
// through AddRegion, so weight validation and accumulation rules hold,
// and the restored wheel draws from a fresh non-deterministic source
// unless the caller reseeds explicitly.
package wheel

import "encoding/json"

// regionJSON is the wire shape of a single region. The element type must
// itself be JSON-codable.
type regionJSON[E comparable, W Weight] struct {
	Element E `json:"element"`
	Weight  W `json:"weight"`
}

// MarshalJSON encodes the region as {"element":…,"weight":…}.
func (r Region[E, W]) MarshalJSON() ([]byte, error) {
	return json.Marshal(regionJSON[E, W]{Element: r.element, Weight: r.weight})
}

// UnmarshalJSON decodes a region from its wire shape. No weight
// validation happens here; the wheel validates on restore.
func (r *Region[E, W]) UnmarshalJSON(data []byte) error {
	var enc regionJSON[E, W]
	if err := json.Unmarshal(data, &enc); err != nil {
		return err
	}
	r.element = enc.Element
	r.weight = enc.Weight

	return nil
}

// MarshalJSON encodes the wheel's region sequence in insertion order.
// The random source is omitted: a snapshot captures contents, not the
// draw stream.
func (w *Wheel[E, W]) MarshalJSON() ([]byte, error) {
	if w.regions == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(w.regions)
}

// UnmarshalJSON replaces the wheel's contents with the decoded region
// sequence, feeding each region through AddRegion so ErrInvalidWeight
// surfaces for corrupted snapshots. On error the wheel is left untouched.
// The random source is not restored; reseed via SeedRandom when a
// reproducible sequence is needed.
func (w *Wheel[E, W]) UnmarshalJSON(data []byte) error {
	var decoded []Region[E, W]
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	rebuilt := Wheel[E, W]{rng: w.rng}
	for _, region := range decoded {
		if err := rebuilt.AddRegion(region.element, region.weight); err != nil {
			return err
		}
	}
	w.regions = rebuilt.regions

	return nil
}
