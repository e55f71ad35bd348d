package config

var Presets = map[string]map[string]*Config{
	"bubble": {
		"tiny": {
			Algorithm: "bubble", Size: 6, Speed: 1.0, MinValue: 1, MaxValue: 20,
		},
		"classroom": {
			Algorithm: "bubble", Size: 12, Speed: 0.75, MinValue: 1, MaxValue: 99,
		},
		"fast": {
			Algorithm: "bubble", Size: 24, Speed: 3.0, MinValue: 1, MaxValue: 99,
		},
	},
	"selection": {
		"tiny": {
			Algorithm: "selection", Size: 6, Speed: 1.0, MinValue: 1, MaxValue: 20,
		},
		"classroom": {
			Algorithm: "selection", Size: 12, Speed: 0.75, MinValue: 1, MaxValue: 99,
		},
		"fast": {
			Algorithm: "selection", Size: 24, Speed: 3.0, MinValue: 1, MaxValue: 99,
		},
	},
	"insertion": {
		"tiny": {
			Algorithm: "insertion", Size: 6, Speed: 1.0, MinValue: 1, MaxValue: 20,
		},
		"classroom": {
			Algorithm: "insertion", Size: 12, Speed: 0.75, MinValue: 1, MaxValue: 99,
		},
		"nearly_sorted": {
			Algorithm: "insertion", Size: 16, Speed: 1.5, MinValue: 1, MaxValue: 99,
		},
	},
}

func GetPreset(algorithm, preset string) *Config {
	algoPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	cfg, ok := algoPresets[preset]
	if !ok {
		return nil
	}
	out := *DefaultConfig()
	out.Algorithm = cfg.Algorithm
	out.Size = cfg.Size
	out.Speed = cfg.Speed
	out.MinValue = cfg.MinValue
	out.MaxValue = cfg.MaxValue
	return &out
}

func ListPresets(algorithm string) []string {
	algoPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(algoPresets))
	for name := range algoPresets {
		names = append(names, name)
	}
	return names
}
