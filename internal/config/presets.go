package config

import "sort"

// Presets are named starting points; fields left zero are filled from
// DefaultConfig by GetPreset.
var Presets = map[string]*Config{
	"default": {},
	"smooth": {
		Initial: InitConfig{Width: 3.0, Noise: 0},
	},
	"quick": {
		N: 100, Steps: 200,
	},
	"sharp": {
		Initial: InitConfig{Width: 12.0, Noise: 0.2},
	},
	"gentle": {
		LR: 0.01, Steps: 5000,
	},
	"frozen": {
		LR: 0, Steps: 10,
	},
}

// zeroNoise marks presets whose zero noise is intentional.
var zeroNoise = map[string]bool{"smooth": true}

// zeroLR marks presets whose zero step size is intentional.
var zeroLR = map[string]bool{"frozen": true}

// GetPreset returns a full configuration for the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}

	cfg := DefaultConfig()
	if p.N != 0 {
		cfg.N = p.N
	}
	if p.Steps != 0 {
		cfg.Steps = p.Steps
	}
	if p.LR != 0 || zeroLR[name] {
		cfg.LR = p.LR
	}
	if p.Initial.Width != 0 {
		cfg.Initial.Width = p.Initial.Width
	}
	if p.Initial.Noise != 0 || zeroNoise[name] {
		cfg.Initial.Noise = p.Initial.Noise
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
