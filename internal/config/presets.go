package config

import "sort"

// Presets are named starting points layered under a config file.
var Presets = map[string]*Config{
	"classroom": {
		Theme: "song", FPS: 60, LogLevel: "info", DataDir: DefaultDataDir,
		Audio:    AudioConfig{Enabled: true, Volume: 1.0},
		Viewport: ViewportConfig{RootTwoWidth: 420, GoldenMaxWidth: 840, GoldenMargin: 60},
		Export:   ExportConfig{Dir: ".", Width: DefaultExportWidth, Format: "svg"},
	},
	"quiet": {
		Theme: "ink", FPS: 30, LogLevel: "warn", DataDir: DefaultDataDir,
		Audio:    AudioConfig{Enabled: false, Volume: 0},
		Viewport: ViewportConfig{RootTwoWidth: 300, GoldenMaxWidth: 600, GoldenMargin: 60},
		Export:   ExportConfig{Dir: ".", Width: DefaultExportWidth, Format: "svg"},
	},
	"print": {
		Theme: "paper", FPS: 30, LogLevel: "info", DataDir: DefaultDataDir,
		Audio:    AudioConfig{Enabled: false, Volume: 0},
		Viewport: ViewportConfig{RootTwoWidth: 300, GoldenMaxWidth: 600, GoldenMargin: 60},
		Export:   ExportConfig{Dir: "exports", Width: 2400, Format: "png"},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
