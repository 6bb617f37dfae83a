//go:build !js
// +build !js

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jlofgren/asciidrift/effect"
)

// fileConfig mirrors effect.Config for YAML. All fields are optional;
// unset ones keep their defaults.
type fileConfig struct {
	Palette             *string  `yaml:"palette"`
	CellWidth           *int     `yaml:"cell_width"`
	CellHeight          *int     `yaml:"cell_height"`
	NoiseScale          *float64 `yaml:"noise_scale"`
	NoiseOctaves        *int     `yaml:"noise_octaves"`
	FreqMultiplier      *float64 `yaml:"freq_multiplier"`
	AmpMultiplier       *float64 `yaml:"amp_multiplier"`
	InfluenceRadius     *float64 `yaml:"influence_radius"`
	DensityFalloff      *float64 `yaml:"density_falloff"`
	DistortStrength     *float64 `yaml:"distort_strength"`
	DistortFrequency    *float64 `yaml:"distort_frequency"`
	DecayRate           *float64 `yaml:"decay_rate"`
	BrightnessThreshold *float64 `yaml:"brightness_threshold"`
	MaxVelocity         *float64 `yaml:"max_velocity"`
	AmbientStrength     *float64 `yaml:"ambient_strength"`
	DriftSpeed          *float64 `yaml:"drift_speed"`
}

// loadConfig reads a YAML file and applies its overrides on top of the
// default tuning. Validation happens at the call site.
func loadConfig(path string) (effect.Config, error) {
	cfg := effect.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	applyOverrides(&cfg, &fc)
	return cfg, nil
}

func applyOverrides(cfg *effect.Config, fc *fileConfig) {
	if fc.Palette != nil {
		cfg.Palette = []rune(*fc.Palette)
	}
	if fc.CellWidth != nil {
		cfg.CellWidth = *fc.CellWidth
	}
	if fc.CellHeight != nil {
		cfg.CellHeight = *fc.CellHeight
	}
	if fc.NoiseScale != nil {
		cfg.NoiseScale = *fc.NoiseScale
	}
	if fc.NoiseOctaves != nil {
		cfg.NoiseOctaves = *fc.NoiseOctaves
	}
	if fc.FreqMultiplier != nil {
		cfg.FreqMultiplier = *fc.FreqMultiplier
	}
	if fc.AmpMultiplier != nil {
		cfg.AmpMultiplier = *fc.AmpMultiplier
	}
	if fc.InfluenceRadius != nil {
		cfg.InfluenceRadius = *fc.InfluenceRadius
	}
	if fc.DensityFalloff != nil {
		cfg.DensityFalloff = *fc.DensityFalloff
	}
	if fc.DistortStrength != nil {
		cfg.DistortStrength = *fc.DistortStrength
	}
	if fc.DistortFrequency != nil {
		cfg.DistortFrequency = *fc.DistortFrequency
	}
	if fc.DecayRate != nil {
		cfg.DecayRate = *fc.DecayRate
	}
	if fc.BrightnessThreshold != nil {
		cfg.BrightnessThreshold = *fc.BrightnessThreshold
	}
	if fc.MaxVelocity != nil {
		cfg.MaxVelocity = *fc.MaxVelocity
	}
	if fc.AmbientStrength != nil {
		cfg.AmbientStrength = *fc.AmbientStrength
	}
	if fc.DriftSpeed != nil {
		cfg.DriftSpeed = *fc.DriftSpeed
	}
}
