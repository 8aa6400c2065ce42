// Package wheel - RNG utilities for the Wheel container.
//
// This file centralizes random generation for weighted draws.
//
// Goals:
//   - Isolation: every wheel owns its own *rand.Rand; no global source.
//   - Determinism on demand: SeedRandom / WithSeed lock the draw sequence.
//   - Fidelity: integral weights use the integer uniform distribution over
//     [0, total-1], floating-point weights the continuous one over [0, total).
//
// Concurrency:
//   - rand.Rand is NOT goroutine-safe. Do not share a Wheel across
//     goroutines without external synchronization.
package wheel

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"

	"golang.org/x/exp/rand"
)

// entropySeed returns a 64-bit seed read from the OS entropy source, so
// that freshly constructed wheels differ between runs. Falls back to the
// wall clock if the entropy source is unavailable.
func entropySeed() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// newEntropyRand returns a generator seeded from OS entropy.
//
// Complexity: O(1).
func newEntropyRand() *rand.Rand {
	return rand.New(rand.NewSource(entropySeed()))
}

// isIntegral reports whether W truncates fractional values, i.e. whether
// W is an integer type. The conversion goes through a variable so it
// compiles for every type in the Weight set.
func isIntegral[W Weight]() bool {
	half := 0.5
	return W(half) == 0
}

// drawWeight returns a uniformly random value in [0, total).
// For integral W the draw is the integer distribution over [0, total-1];
// for floating-point W it is continuous over [0, total). The two ranges
// are kept distinct on purpose: collapsing them would shift the last
// region's probability by one part in total for integer wheels.
//
// total must be > 0.
func drawWeight[W Weight](rng *rand.Rand, total W) W {
	if isIntegral[W]() {
		return W(rng.Uint64n(uint64(total)))
	}
	return W(rng.Float64() * float64(total))
}
