package wheel_test

import (
	"testing"

	"github.com/katalvlaran/roulette/wheel"
)

// buildWheel returns a seeded wheel with n regions of equal weight.
func buildWheel(n int) *wheel.Wheel[int, int] {
	w := wheel.New[int, int](wheel.WithSeed(1))
	for i := 0; i < n; i++ {
		if err := w.AddRegion(i, 100); err != nil {
			panic(err)
		}
	}

	return w
}

// benchmarkSelect draws from a wheel of n equal-weight regions.
func benchmarkSelect(b *testing.B, n int) {
	w := buildWheel(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := w.Select(); err != nil {
			b.Fatalf("Select failed: %v", err)
		}
	}
}

// BenchmarkSelect_10 draws from a small wheel.
func BenchmarkSelect_10(b *testing.B) { benchmarkSelect(b, 10) }

// BenchmarkSelect_100 draws from a medium wheel.
func BenchmarkSelect_100(b *testing.B) { benchmarkSelect(b, 100) }

// BenchmarkSelect_1000 draws from a large wheel; the linear walk dominates.
func BenchmarkSelect_1000(b *testing.B) { benchmarkSelect(b, 1000) }

// BenchmarkSelect_SingleRegion measures the no-draw fast path.
func BenchmarkSelect_SingleRegion(b *testing.B) { benchmarkSelect(b, 1) }

// BenchmarkSelect_SkewedWeights draws from a wheel where one region holds
// almost the entire weight mass, so the walk usually stops early.
func BenchmarkSelect_SkewedWeights(b *testing.B) {
	w := wheel.New[int, int](wheel.WithSeed(1))
	if err := w.AddRegion(0, 1_000_000); err != nil {
		b.Fatal(err)
	}
	for i := 1; i < 100; i++ {
		if err := w.AddRegion(i, 1); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := w.Select(); err != nil {
			b.Fatalf("Select failed: %v", err)
		}
	}
}

// BenchmarkSelect_FloatWeights measures the continuous draw path.
func BenchmarkSelect_FloatWeights(b *testing.B) {
	w := wheel.New[int, float64](wheel.WithSeed(1))
	for i := 0; i < 100; i++ {
		if err := w.AddRegion(i, 0.5+float64(i)); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := w.Select(); err != nil {
			b.Fatalf("Select failed: %v", err)
		}
	}
}

// BenchmarkSelectSafe_100 measures the comma-ok wrapper.
func BenchmarkSelectSafe_100(b *testing.B) {
	w := buildWheel(100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := w.SelectSafe(); !ok {
			b.Fatal("unexpected empty wheel")
		}
	}
}

// benchmarkAddRegionNew appends n distinct regions per iteration.
func benchmarkAddRegionNew(b *testing.B, n int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		w := wheel.New[int, int](wheel.WithSeed(1))
		b.StartTimer()

		for e := 0; e < n; e++ {
			if err := w.AddRegion(e, 100); err != nil {
				b.Fatalf("AddRegion failed: %v", err)
			}
		}
	}
}

// BenchmarkAddRegion_New10 appends 10 distinct regions.
func BenchmarkAddRegion_New10(b *testing.B) { benchmarkAddRegionNew(b, 10) }

// BenchmarkAddRegion_New1000 appends 1000 distinct regions; each add pays
// the O(n) duplicate scan.
func BenchmarkAddRegion_New1000(b *testing.B) { benchmarkAddRegionNew(b, 1000) }

// BenchmarkAddRegion_Combine repeatedly accumulates onto one region —
// the duplicate-hit worst case.
func BenchmarkAddRegion_Combine(b *testing.B) {
	w := wheel.New[int, int](wheel.WithSeed(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := w.AddRegion(0, 1); err != nil {
			b.Fatalf("AddRegion failed: %v", err)
		}
	}
}

// BenchmarkNewFromMap_100 measures keyed construction.
func BenchmarkNewFromMap_100(b *testing.B) {
	weights := make(map[int]int, 100)
	for i := 0; i < 100; i++ {
		weights[i] = i + 1
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := wheel.NewFromMap(weights, wheel.WithSeed(1)); err != nil {
			b.Fatalf("NewFromMap failed: %v", err)
		}
	}
}

// BenchmarkNewFromPairs_100 measures ordered construction.
func BenchmarkNewFromPairs_100(b *testing.B) {
	pairs := make([]wheel.Pair[int, int], 100)
	for i := range pairs {
		pairs[i] = wheel.Pair[int, int]{Element: i, Weight: i + 1}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := wheel.NewFromPairs(pairs, wheel.WithSeed(1)); err != nil {
			b.Fatalf("NewFromPairs failed: %v", err)
		}
	}
}

// benchmarkRemoveElement removes a fixed element from a fresh 100-region wheel.
func benchmarkRemoveElement(b *testing.B, target int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		w := buildWheel(100)
		b.StartTimer()

		if !w.RemoveElement(target) {
			b.Fatal("element missing")
		}
	}
}

// BenchmarkRemoveElement_First removes the head region (worst shift).
func BenchmarkRemoveElement_First(b *testing.B) { benchmarkRemoveElement(b, 0) }

// BenchmarkRemoveElement_Middle removes from the middle of the sequence.
func BenchmarkRemoveElement_Middle(b *testing.B) { benchmarkRemoveElement(b, 50) }

// BenchmarkSelectAndModifyWeight_Decay draws with the -1 decay delta from
// a wheel heavy enough never to empty during the run.
func BenchmarkSelectAndModifyWeight_Decay(b *testing.B) {
	w := wheel.New[int, int](wheel.WithSeed(1))
	for i := 0; i < 100; i++ {
		if err := w.AddRegion(i, 1<<30); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := w.SelectAndModifyWeight(-1); err != nil {
			b.Fatalf("SelectAndModifyWeight failed: %v", err)
		}
	}
}

// BenchmarkSelectAndRemove_Drain100 drains a 100-region wheel per iteration.
func BenchmarkSelectAndRemove_Drain100(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		w := buildWheel(100)
		b.StartTimer()

		for !w.Empty() {
			if _, err := w.SelectAndRemove(); err != nil {
				b.Fatalf("SelectAndRemove failed: %v", err)
			}
		}
	}
}

// BenchmarkRemoveInvalidRegions_HalfInvalid prunes a wheel where every
// second weight was driven to zero through the Regions view.
func BenchmarkRemoveInvalidRegions_HalfInvalid(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		w := buildWheel(100)
		regions := w.Regions()
		for j := 0; j < len(regions); j += 2 {
			regions[j].SetWeight(0)
		}
		b.StartTimer()

		if removed := w.RemoveInvalidRegions(); removed != 50 {
			b.Fatalf("removed %d regions, want 50", removed)
		}
	}
}

// BenchmarkSelectionProbability_100 measures the O(n) probability query.
func BenchmarkSelectionProbability_100(b *testing.B) {
	w := buildWheel(100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if p := w.SelectionProbability(50); p <= 0 {
			b.Fatal("unexpected zero probability")
		}
	}
}
