package config

import "sort"

// Presets are ready-made scenarios. "alpine" and "steep" follow classic
// exercise geometries; "wide" is the long shallow span used across the
// test suite.
var Presets = map[string]*Config{
	"alpine": {
		Span: 200, Rise: 50, Length: 210,
		Density: 5, Gravity: DefaultGravity,
		GondolaMass: 500, CounterweightMass: 2040,
		Samples: DefaultSamples, ShapeSamples: DefaultShapeSamples,
		OnFailure: "abort",
	},
	"steep": {
		Span: 200, Rise: 300, Length: 370,
		Density: 5, Gravity: DefaultGravity,
		GondolaMass: 250, CounterweightMass: 3400,
		Samples: DefaultSamples, ShapeSamples: DefaultShapeSamples,
		OnFailure: "abort",
	},
	"wide": {
		Span: 500, Rise: 50, Length: 520,
		Density: 2, Gravity: DefaultGravity,
		GondolaMass: 500,
		Samples: DefaultSamples, ShapeSamples: DefaultShapeSamples,
		OnFailure: "abort",
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns the preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
