package config

import "sort"

var Presets = map[string]SurfaceConfig{
	"tv":    {Width: 1280, Height: 720, Ratio: 1},
	"phone": {Width: 390, Height: 844, Ratio: 2},
	"small": {Width: 320, Height: 360, Ratio: 1},
}

// GetPreset returns the default config sized for a named surface, or nil.
func GetPreset(name string) *Config {
	s, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Surface = s
	return cfg
}

// Apply resizes cfg to a named surface. It reports whether the preset exists.
func (c *Config) Apply(name string) bool {
	s, ok := Presets[name]
	if ok {
		c.Surface = s
	}
	return ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
