package effect

import (
	"math"

	"github.com/jlofgren/asciidrift/common"
)

// Noise is a classic 2D gradient noise generator over a fixed permutation
// table. The table is built once and never reseeded; two generators built
// from the same seed produce identical fields.
type Noise struct {
	// perm holds a shuffled permutation of [0..255] duplicated to 512
	// entries so corner hashing never needs an explicit wraparound.
	perm [512]int
}

// NewNoise builds a generator whose permutation table is a Fisher-Yates
// shuffle of [0..255] drawn from rng.
func NewNoise(rng *common.SeededRNG) *Noise {
	n := &Noise{}

	p := make([]int, 256)
	for i := range p {
		p[i] = i
	}
	rng.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })

	for i := 0; i < 512; i++ {
		n.perm[i] = p[i&255]
	}
	return n
}

// fade is the smoothstep-like quintic t^3*(t*(6t-15)+10). It has zero first
// and second derivatives at t=0 and t=1, which keeps the field smooth across
// lattice cell boundaries.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// lerp linearly interpolates between a and b.
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// grad maps a corner hash to one of four diagonal gradient directions and
// returns its dot product with the offset (x, y).
func grad(hash int, x, y float64) float64 {
	switch hash & 3 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	default:
		return -x - y
	}
}

// Noise2D returns smooth gradient noise in [-1, 1] for any real (x, y).
// Deterministic for a fixed permutation table.
func (n *Noise) Noise2D(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	xi := int(fx) & 255
	yi := int(fy) & 255
	xf := x - fx
	yf := y - fy

	u := fade(xf)
	v := fade(yf)

	// Hash the four surrounding lattice corners.
	aa := n.perm[n.perm[xi]+yi]
	ab := n.perm[n.perm[xi]+yi+1]
	ba := n.perm[n.perm[xi+1]+yi]
	bb := n.perm[n.perm[xi+1]+yi+1]

	x1 := lerp(grad(aa, xf, yf), grad(ba, xf-1, yf), u)
	x2 := lerp(grad(ab, xf, yf-1), grad(bb, xf-1, yf-1), u)
	return lerp(x1, x2, v)
}

// Ridged sums octaves of folded noise into a value in [0, 1]. Octave i runs
// at frequency freqMult^i with amplitude ampMult^i; each raw sample is
// folded twice around its midpoint and cubed, which turns smooth hills into
// sharp ridge lines.
func (n *Noise) Ridged(x, y float64, octaves int, freqMult, ampMult float64) float64 {
	var sum, ampSum float64
	freq := 1.0
	amp := 1.0

	for i := 0; i < octaves; i++ {
		s := n.Noise2D(x*freq, y*freq)
		s = 1 - math.Abs(s)
		s = 1 - math.Abs(2*s-1)
		s = s * s * s
		sum += s * amp
		ampSum += amp
		freq *= freqMult
		amp *= ampMult
	}

	return sum / ampSum
}
