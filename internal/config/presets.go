package config

import "sort"

var Presets = map[string]map[string]*Config{
	"orbit": {
		"circular": {
			Eccentricity: 0.0, Tau: 0.0, Z0: 1.0, V0: 0.0,
			Step: 1e-2, Periods: 100, Method: "yoshida4", Seed: 1,
		},
		"elliptic": {
			Eccentricity: 0.2, Tau: 0.0, Z0: 1.0, V0: 0.0,
			Step: 1e-2, Periods: 100, Method: "yoshida4", Seed: 1,
		},
		"grazing": {
			Eccentricity: 0.9, Tau: 0.0, Z0: 0.5, V0: 0.0,
			Step: 1e-3, Periods: 100, Method: "yoshida4", Seed: 1,
		},
	},
	"megno": {
		"regular": {
			Eccentricity: 0.0, Tau: 0.0, Z0: 1.0, V0: 0.0,
			Step: 1e-2, Periods: 1000, Method: "yoshida4", MEGNO: true, Seed: 1,
		},
		"resonant": {
			Eccentricity: 0.35, Tau: 0.0, Z0: 1.2, V0: 0.0,
			Step: 1e-2, Periods: 1000, Method: "yoshida4", MEGNO: true, Seed: 1,
		},
		"chaotic": {
			Eccentricity: 0.6, Tau: 0.0, Z0: 1.5, V0: 0.0,
			Step: 1e-2, Periods: 1000, Method: "yoshida4", MEGNO: true, Seed: 1,
		},
	},
}

func GetPreset(family, preset string) *Config {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	cfg, ok := familyPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(family string) []string {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(familyPresets))
	for name := range familyPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ListFamilies() []string {
	families := make([]string, 0, len(Presets))
	for name := range Presets {
		families = append(families, name)
	}
	sort.Strings(families)
	return families
}
