package effect

import "fmt"

// Fixed frame-path constants. These are part of the visual feel and are not
// exposed as tunables.
const (
	// FrameDuration is the minimum time between frames in milliseconds (~30 FPS).
	FrameDuration = 33.33

	// velocitySmoothing is the weight of the previous velocity estimate in the
	// per-frame exponential moving average.
	velocitySmoothing = 0.7

	// minMovement is the raw per-frame cursor movement, in pixels, below which
	// no activation buildup happens. Also guards the zero-radius division.
	minMovement = 0.5

	// influenceGain scales how much a single frame of influence adds to a cell.
	influenceGain = 0.15
)

// Config holds all tunable parameters of the effect. It is fixed for the
// lifetime of an Effect instance.
type Config struct {
	// Palette is the ordered glyph ramp, lightest to heaviest. Activation
	// below BrightnessThreshold renders blank instead of Palette[0].
	Palette []rune

	// CellWidth and CellHeight are the size of one grid cell in pixels.
	CellWidth  int
	CellHeight int

	// NoiseScale is the base spatial frequency of the ambient ridged field.
	NoiseScale float64

	// NoiseOctaves, FreqMultiplier and AmpMultiplier parameterize ridged
	// noise: octave i runs at frequency FreqMultiplier^i with amplitude
	// AmpMultiplier^i.
	NoiseOctaves   int
	FreqMultiplier float64
	AmpMultiplier  float64

	// InfluenceRadius is the maximum reach of the cursor in pixels, attained
	// at MaxVelocity.
	InfluenceRadius float64

	// DensityFalloff is the exponent applied to (1 - normalizedDistance).
	// Higher values concentrate brightness near the cursor core.
	DensityFalloff float64

	// DistortStrength and DistortFrequency control how far and how coarsely
	// noise bends the influence radius away from a perfect circle.
	DistortStrength  float64
	DistortFrequency float64

	// DecayRate multiplies every cell's activation each frame.
	DecayRate float64

	// BrightnessThreshold is the activation below which a cell renders blank.
	BrightnessThreshold float64

	// MaxVelocity is the smoothed cursor speed, in pixels per frame, at which
	// the influence radius reaches its full extent.
	MaxVelocity float64

	// AmbientStrength enables a faint background ridged field when positive.
	// Zero disables it; the grid then lights up only from cursor movement.
	AmbientStrength float64

	// DriftSpeed advances the noise offsets each frame, scrolling the ambient
	// field. Only effective while AmbientStrength is positive.
	DriftSpeed float64
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Palette:             []rune(".:-=+*#%@"),
		CellWidth:           6,
		CellHeight:          10,
		NoiseScale:          0.012,
		NoiseOctaves:        4,
		FreqMultiplier:      2.0,
		AmpMultiplier:       0.5,
		InfluenceRadius:     150,
		DensityFalloff:      2.5,
		DistortStrength:     0.4,
		DistortFrequency:    0.008,
		DecayRate:           0.92,
		BrightnessThreshold: 0.05,
		MaxVelocity:         50,
		AmbientStrength:     0,
		DriftSpeed:          0,
	}
}

// Validate rejects degenerate configurations at startup. The frame path
// assumes a valid config and performs no further checks.
func (c *Config) Validate() error {
	if len(c.Palette) == 0 {
		return fmt.Errorf("config: palette must not be empty")
	}
	if c.CellWidth < 1 || c.CellHeight < 1 {
		return fmt.Errorf("config: cell size %dx%d invalid, both dimensions must be >= 1", c.CellWidth, c.CellHeight)
	}
	if c.DecayRate <= 0 || c.DecayRate >= 1 {
		return fmt.Errorf("config: decay rate %f out of range (0, 1)", c.DecayRate)
	}
	if c.NoiseOctaves < 1 {
		return fmt.Errorf("config: noise octaves %d invalid, must be >= 1", c.NoiseOctaves)
	}
	if c.InfluenceRadius <= 0 {
		return fmt.Errorf("config: influence radius %f invalid, must be positive", c.InfluenceRadius)
	}
	if c.DensityFalloff <= 0 {
		return fmt.Errorf("config: density falloff %f invalid, must be positive", c.DensityFalloff)
	}
	if c.BrightnessThreshold < 0 || c.BrightnessThreshold > 1 {
		return fmt.Errorf("config: brightness threshold %f out of range [0, 1]", c.BrightnessThreshold)
	}
	if c.MaxVelocity <= 0 {
		return fmt.Errorf("config: max velocity %f invalid, must be positive", c.MaxVelocity)
	}
	if c.AmbientStrength < 0 || c.AmbientStrength > 1 {
		return fmt.Errorf("config: ambient strength %f out of range [0, 1]", c.AmbientStrength)
	}
	return nil
}
