package randutil

import "testing"

func TestNew_Deterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		if got, want := a.IntN(1000), b.IntN(1000); got != want {
			t.Fatalf("Expected identical streams for the same seed, got %d and %d at draw %d", got, want, i)
		}
	}
}

func TestNew_SeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	for i := 0; i < 100; i++ {
		if a.IntN(1000) == b.IntN(1000) {
			same++
		}
	}
	if same == 100 {
		t.Error("Expected different seeds to produce different streams")
	}
}

func TestDerive_IndependentSubSeeds(t *testing.T) {
	seen := make(map[int64]int)
	for i := 0; i < 100; i++ {
		seen[Derive(7, i)] = i
	}
	if len(seen) != 100 {
		t.Errorf("Expected 100 distinct sub-seeds, got %d", len(seen))
	}

	if Derive(7, 3) != Derive(7, 3) {
		t.Error("Expected Derive to be deterministic")
	}
}
