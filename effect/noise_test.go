package effect

import (
	"math"
	"testing"

	"github.com/jlofgren/asciidrift/common"
)

func newTestNoise(seed uint32) *Noise {
	return NewNoise(common.NewSeededRNG(seed))
}

func TestNewNoise_PermutationIsBijection(t *testing.T) {
	n := newTestNoise(1)

	seen := make(map[int]bool, 256)
	for i := 0; i < 256; i++ {
		v := n.perm[i]
		if v < 0 || v > 255 {
			t.Fatalf("perm[%d] = %d, out of range [0, 255]", i, v)
		}
		if seen[v] {
			t.Fatalf("perm[%d] = %d appears twice in first 256 entries", i, v)
		}
		seen[v] = true
	}
}

func TestNewNoise_TableDuplicatedForWraparound(t *testing.T) {
	n := newTestNoise(1)

	for i := 0; i < 256; i++ {
		if n.perm[i] != n.perm[i+256] {
			t.Fatalf("perm[%d] = %d but perm[%d] = %d, want identical halves",
				i, n.perm[i], i+256, n.perm[i+256])
		}
	}
}

func TestNoise2D_Deterministic(t *testing.T) {
	a := newTestNoise(42)
	b := newTestNoise(42)

	for x := -5.0; x < 5.0; x += 0.37 {
		for y := -5.0; y < 5.0; y += 0.41 {
			va := a.Noise2D(x, y)
			vb := b.Noise2D(x, y)
			if va != vb {
				t.Fatalf("Noise2D(%f, %f) differs between same-seed generators: %f != %f", x, y, va, vb)
			}
		}
	}
}

func TestNoise2D_Range(t *testing.T) {
	n := newTestNoise(7)

	for x := -100.0; x < 100.0; x += 0.73 {
		for y := -100.0; y < 100.0; y += 0.91 {
			v := n.Noise2D(x, y)
			if v < -1 || v > 1 {
				t.Fatalf("Noise2D(%f, %f) = %f, want [-1, 1]", x, y, v)
			}
		}
	}
}

func TestNoise2D_ZeroAtLatticePoints(t *testing.T) {
	// Gradient noise is exactly zero wherever both coordinates are integers:
	// the fractional offset at the nearest corner is the zero vector.
	n := newTestNoise(3)

	for x := -3; x <= 3; x++ {
		for y := -3; y <= 3; y++ {
			v := n.Noise2D(float64(x), float64(y))
			if math.Abs(v) > 1e-12 {
				t.Errorf("Noise2D(%d, %d) = %g, want 0 at lattice point", x, y, v)
			}
		}
	}
}

func TestNoise2D_Continuity(t *testing.T) {
	// Sample pairs a small step apart; a smooth field cannot jump.
	n := newTestNoise(11)
	const step = 1e-4

	for x := -2.0; x < 2.0; x += 0.57 {
		for y := -2.0; y < 2.0; y += 0.63 {
			v0 := n.Noise2D(x, y)
			v1 := n.Noise2D(x+step, y+step)
			if math.Abs(v1-v0) > 0.01 {
				t.Errorf("Discontinuity at (%f, %f): %f -> %f over step %g", x, y, v0, v1, step)
			}
		}
	}
}

func TestRidged_Range(t *testing.T) {
	n := newTestNoise(5)

	for x := -50.0; x < 50.0; x += 1.37 {
		for y := -50.0; y < 50.0; y += 1.73 {
			v := n.Ridged(x, y, 4, 2.0, 0.5)
			if v < 0 || v > 1 {
				t.Fatalf("Ridged(%f, %f) = %f, want [0, 1]", x, y, v)
			}
		}
	}
}

func TestRidged_SingleOctaveRange(t *testing.T) {
	n := newTestNoise(5)

	for x := -20.0; x < 20.0; x += 0.89 {
		v := n.Ridged(x, -x, 1, 2.0, 0.5)
		if v < 0 || v > 1 {
			t.Fatalf("Ridged(%f, %f) with 1 octave = %f, want [0, 1]", x, -x, v)
		}
	}
}

func TestRidged_Deterministic(t *testing.T) {
	a := newTestNoise(123)
	b := newTestNoise(123)

	for x := 0.0; x < 10.0; x += 0.77 {
		va := a.Ridged(x, x*0.5, 4, 2.0, 0.5)
		vb := b.Ridged(x, x*0.5, 4, 2.0, 0.5)
		if va != vb {
			t.Fatalf("Ridged differs between same-seed generators at x=%f: %f != %f", x, va, vb)
		}
	}
}

func TestDifferentSeedsProduceDifferentFields(t *testing.T) {
	a := newTestNoise(1)
	b := newTestNoise(2)

	same := 0
	total := 0
	for x := 0.1; x < 10.0; x += 0.57 {
		total++
		if a.Noise2D(x, x) == b.Noise2D(x, x) {
			same++
		}
	}

	if same == total {
		t.Error("Expected different seeds to produce different noise fields")
	}
}
