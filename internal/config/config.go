package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme          = "song"
	DefaultFPS            = 60
	DefaultLogLevel       = "info"
	DefaultDataDir        = ".ratiolab"
	DefaultVolume         = 1.0
	DefaultRootTwoWidth   = 300.0
	DefaultGoldenMaxWidth = 600.0
	DefaultGoldenMargin   = 60.0
	DefaultExportWidth    = 800
	DefaultExportFormat   = "svg"
)

type Config struct {
	Theme    string         `yaml:"theme"`
	FPS      int            `yaml:"fps"`
	LogLevel string         `yaml:"log_level"`
	DataDir  string         `yaml:"data_dir"`
	Audio    AudioConfig    `yaml:"audio"`
	Viewport ViewportConfig `yaml:"viewport"`
	Export   ExportConfig   `yaml:"export"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// ViewportConfig sets the on-screen size of each panel in pixels. The
// golden panel is drawn at min(GoldenMaxWidth, available-GoldenMargin).
type ViewportConfig struct {
	RootTwoWidth   float64 `yaml:"root2_width"`
	GoldenMaxWidth float64 `yaml:"golden_max_width"`
	GoldenMargin   float64 `yaml:"golden_margin"`
}

type ExportConfig struct {
	Dir    string `yaml:"dir"`
	Width  int    `yaml:"width"`
	Format string `yaml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:    DefaultTheme,
		FPS:      DefaultFPS,
		LogLevel: DefaultLogLevel,
		DataDir:  DefaultDataDir,
		Audio: AudioConfig{
			Enabled: true,
			Volume:  DefaultVolume,
		},
		Viewport: ViewportConfig{
			RootTwoWidth:   DefaultRootTwoWidth,
			GoldenMaxWidth: DefaultGoldenMaxWidth,
			GoldenMargin:   DefaultGoldenMargin,
		},
		Export: ExportConfig{
			Dir:    ".",
			Width:  DefaultExportWidth,
			Format: DefaultExportFormat,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", c.FPS)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio volume must be in [0,1], got %g", c.Audio.Volume)
	}
	if c.Viewport.RootTwoWidth <= 0 || c.Viewport.GoldenMaxWidth <= 0 {
		return fmt.Errorf("config: viewport widths must be positive")
	}
	if c.Export.Width <= 0 {
		return fmt.Errorf("config: export width must be positive, got %d", c.Export.Width)
	}
	return nil
}
