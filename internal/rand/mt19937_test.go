package rand_test

import (
	"testing"

	"github.com/nozzle/simplex/internal/rand"
)

func TestMT19937VsNumpy(t *testing.T) {
	mt := rand.NewMT19937(42)

	// Expected values from Python: numpy.random.RandomState(42).uniform(-10, 10, 20)
	expected := []float64{
		-2.509197623052750,
		9.014286128198323,
		4.639878836228101,
		1.973169683940732,
		-6.879627191151270,
		-6.880109593275947,
		-8.838327756636010,
		7.323522915498703,
		2.022300234864176,
		4.161451555920910,
		-9.588310114083951,
		9.398197043239886,
		6.648852816008435,
		-5.753217786434477,
		-6.363500655857988,
		-6.331909802931324,
		-3.915155140809246,
		0.495128632644757,
		-1.361099627157685,
		-4.175417196039161,
	}

	for i, exp := range expected {
		got := mt.Uniform(-10.0, 10.0)
		diff := got - exp
		if diff < 0 {
			diff = -diff
		}
		if diff > 1e-6 {
			t.Errorf("Value %d: got %.15f, expected %.15f, diff %.2e", i, got, exp, diff)
		}
	}
}

func TestMT19937Float64Range(t *testing.T) {
	mt := rand.NewMT19937(7)

	for i := 0; i < 100000; i++ {
		v := mt.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v, outside [0, 1)", v)
		}
	}
}

func TestMT19937Deterministic(t *testing.T) {
	a := rand.NewMT19937(123)
	b := rand.NewMT19937(123)

	for i := 0; i < 1000; i++ {
		if va, vb := a.Float64(), b.Float64(); va != vb {
			t.Fatalf("Same-seed sequences diverged at %d: %v != %v", i, va, vb)
		}
	}
}
