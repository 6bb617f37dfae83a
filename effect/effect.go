package effect

import (
	"math"

	"github.com/jlofgren/asciidrift/common"
)

// Effect holds the complete state of one trail instance. Multiple instances
// are independent; nothing in this package is shared between them.
type Effect struct {
	Config Config
	Grid   *Grid
	Cursor Cursor
	Noise  *Noise

	// Viewport size in pixels, as last reported by the host.
	Width  int
	Height int

	// Noise offsets for the ambient field's scroll drift. Both stay zero
	// unless DriftSpeed is set.
	OffsetX float64
	OffsetY float64
}

// New creates an effect for a viewport of w×h pixels. The permutation table
// is seeded from rng once; the config must already be validated.
func New(cfg Config, w, h int, rng *common.SeededRNG) *Effect {
	cols, rows := GridDimensions(w, h, cfg.CellWidth, cfg.CellHeight)
	return &Effect{
		Config: cfg,
		Grid:   NewGrid(cols, rows),
		Noise:  NewNoise(rng),
		Width:  w,
		Height: h,
	}
}

// PointerMove records a raw pointer-move signal in viewport coordinates.
func (e *Effect) PointerMove(x, y float64) {
	e.Cursor.Move(x, y)
}

// Resize recomputes grid dimensions for the new viewport and resets all
// activation. Runs synchronously, outside the frame loop.
func (e *Effect) Resize(w, h int) {
	e.Width = w
	e.Height = h
	cols, rows := GridDimensions(w, h, e.Config.CellWidth, e.Config.CellHeight)
	e.Grid.Reset(cols, rows)
}

// Step advances the effect by one frame: velocity smoothing, decay, then
// buildup around the cursor while it is moving.
func (e *Effect) Step() {
	movement := e.Cursor.Movement()
	e.Cursor.SmoothVelocity(movement)

	velocityScale := clamp(e.Cursor.Velocity/e.Config.MaxVelocity, 0, 1)
	effectiveRadius := e.Config.InfluenceRadius * velocityScale

	e.Grid.Decay(e.Config.DecayRate)

	if e.Config.AmbientStrength > 0 {
		e.addAmbient()
	}

	// The movement threshold doubles as the zero-division guard: at zero
	// velocity the radius is zero and this branch is never entered.
	if movement > minMovement && effectiveRadius > 0 {
		e.addInfluence(effectiveRadius)
	}

	e.Cursor.Settle()
}

// addInfluence adds noise-distorted radial influence around the cursor.
func (e *Effect) addInfluence(effectiveRadius float64) {
	cfg := &e.Config
	for row := 0; row < e.Grid.Rows; row++ {
		py := float64(row * cfg.CellHeight)
		for col := 0; col < e.Grid.Cols; col++ {
			px := float64(col * cfg.CellWidth)

			dx := px - e.Cursor.X
			dy := py - e.Cursor.Y
			distSq := dx*dx + dy*dy

			// Single-octave, low-frequency sample bends the radius so the
			// lit region grows into organic, non-circular shapes.
			sample := e.Noise.Noise2D(px*cfg.DistortFrequency+e.OffsetX, py*cfg.DistortFrequency+e.OffsetY)
			distorted := effectiveRadius * (1 + sample*cfg.DistortStrength)
			if distorted <= 0 || distSq > distorted*distorted {
				continue
			}

			normalized := math.Sqrt(distSq) / distorted
			influence := math.Pow(1-normalized, cfg.DensityFalloff)
			e.Grid.Add(row, col, influence*influenceGain)
		}
	}
}

// addAmbient layers a slow ridged field under the trail. The per-frame gain
// is scaled by (1 - decayRate) so the steady state of a cell equals
// ridged * AmbientStrength instead of saturating at 1.
func (e *Effect) addAmbient() {
	cfg := &e.Config
	gain := cfg.AmbientStrength * (1 - cfg.DecayRate)
	for row := 0; row < e.Grid.Rows; row++ {
		py := float64(row*cfg.CellHeight)*cfg.NoiseScale + e.OffsetY
		for col := 0; col < e.Grid.Cols; col++ {
			px := float64(col*cfg.CellWidth)*cfg.NoiseScale + e.OffsetX
			r := e.Noise.Ridged(px, py, cfg.NoiseOctaves, cfg.FreqMultiplier, cfg.AmpMultiplier)
			e.Grid.Add(row, col, r*gain)
		}
	}
	e.OffsetX += cfg.DriftSpeed
	e.OffsetY += cfg.DriftSpeed
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
