// Package wheel implements roulette-wheel selection: weighted random
// draws over a dynamic collection of (element, weight) regions.
//
// What:
//
//   - Wheel[E, W] holds regions in insertion order and draws an element
//     with probability weight/totalWeight.
//   - AddRegion accumulates weight when the element already exists, so a
//     wheel never holds two regions for the same element.
//   - SelectAndModifyWeight and SelectAndRemove implement draw-and-decay
//     and draw-without-replacement flows; regions whose weight drops to
//     zero or below are pruned.
//   - Each wheel owns its own random source, seeded from OS entropy by
//     default and reseedable via SeedRandom (or WithSeed) for
//     reproducible sequences.
//   - MarshalJSON/UnmarshalJSON snapshot the region sequence only; the
//     random source is never serialized.
//
// Why:
//
//   - Loot tables and gacha pools: rarity-weighted drops.
//   - Game AI: probability-weighted action picking with adaptive weights.
//   - Load balancing: capacity-weighted backend choice.
//   - Genetic algorithms: fitness-proportionate mating selection.
//
// Complexity:
//
//   - Select / SelectSafe:        O(n) time, O(1) memory.
//   - AddRegion / RemoveElement:  O(n) time, O(1) memory.
//   - RemoveInvalidRegions:       O(n) time, O(1) memory.
//   - SelectionProbability:       O(n) time, O(1) memory.
//
// Concurrency:
//
//	A Wheel is not safe for concurrent use. The random source carries
//	mutable state, so even Select races with itself; guard shared wheels
//	externally. Pure queries (Size, Empty, SelectionProbability, Regions)
//	do not touch the random source and may interleave with each other.
//
// Errors:
//
//   - ErrInvalidWeight: AddRegion received a weight ≤ 0.
//   - ErrEmptyWheel: Select-family call on a wheel with no regions.
package wheel
