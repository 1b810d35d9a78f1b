package config

import "sort"

// Presets holds named parameter sets per model. Entries carry only model
// and per-frame settings; grid and window dimensions come from defaults,
// config file or flags.
var Presets = map[string]map[string]*Config{
	"grayscott": {
		"amorphous": {
			Model: "grayscott", Steps: 16,
			Params: ModelParams{Feed: 0.040, Kill: 0.060, DiffusionU: 2e-5, DiffusionV: 1e-5, Dt: 1.0, Channel: "u"},
		},
		"spots": {
			Model: "grayscott", Steps: 16,
			Params: ModelParams{Feed: 0.035, Kill: 0.065, DiffusionU: 2e-5, DiffusionV: 1e-5, Dt: 1.0, Channel: "u"},
		},
		"stripes": {
			Model: "grayscott", Steps: 16,
			Params: ModelParams{Feed: 0.022, Kill: 0.051, DiffusionU: 2e-5, DiffusionV: 1e-5, Dt: 1.0, Channel: "u"},
		},
		"waves": {
			Model: "grayscott", Steps: 32,
			Params: ModelParams{Feed: 0.014, Kill: 0.045, DiffusionU: 2e-5, DiffusionV: 1e-5, Dt: 1.0, Channel: "u"},
		},
		"solitons": {
			Model: "grayscott", Steps: 16,
			Params: ModelParams{Feed: 0.030, Kill: 0.062, DiffusionU: 2e-5, DiffusionV: 1e-5, Dt: 1.0, Channel: "u"},
		},
	},
	"life": {
		"sparse": {
			Model:  "life",
			Params: ModelParams{Density: 0.15},
		},
		"dense": {
			Model:  "life",
			Params: ModelParams{Density: 0.5},
		},
	},
	"plasma": {
		"calm": {
			Model:  "plasma",
			Params: ModelParams{Speed: 0.02},
		},
		"storm": {
			Model:  "plasma",
			Params: ModelParams{Speed: 0.12},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
