package rand_test

import (
	"testing"

	"github.com/nozzle/simplex/internal/rand"
)

func TestTauswortheFloat64Range(t *testing.T) {
	tau := rand.NewTausworthe(42)

	for i := 0; i < 100000; i++ {
		v := tau.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v, outside [0, 1)", v)
		}
	}
}

func TestTauswortheDeterministic(t *testing.T) {
	a := rand.NewTausworthe(9)
	b := rand.NewTausworthe(9)

	for i := 0; i < 1000; i++ {
		if va, vb := a.Float64(), b.Float64(); va != vb {
			t.Fatalf("Same-seed sequences diverged at %d: %v != %v", i, va, vb)
		}
	}
}

func TestTauswortheSeedsDiffer(t *testing.T) {
	a := rand.NewTausworthe(1)
	b := rand.NewTausworthe(2)

	same := 0
	for i := 0; i < 100; i++ {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	if same == 100 {
		t.Error("Different seeds produced identical sequences")
	}
}

func TestTauswortheZeroSeed(t *testing.T) {
	// Seed 0 maps to 1 internally; the generator must still produce a
	// usable sequence.
	tau := rand.NewTausworthe(0)
	first := tau.Float64()
	second := tau.Float64()
	if first == second {
		t.Errorf("Degenerate sequence from zero seed: %v repeated", first)
	}
}
