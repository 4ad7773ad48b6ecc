package config

import "sort"

// Presets map workload names to load percentages.
var Presets = map[string]float64{
	"idle":   5,
	"office": 30,
	"gaming": 70,
	"render": 100,
}

func GetPreset(name string) (float64, bool) {
	load, ok := Presets[name]
	return load, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
