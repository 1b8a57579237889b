package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/acousticcorner/channel/internal/lava"
)

const (
	DefaultWidth         = 1280
	DefaultHeight        = 720
	DefaultRatio         = 1.0
	DefaultFPS           = 60
	DefaultCandleSeconds = 5.0
	DefaultLavaSeconds   = 3.0
	DefaultCatalog       = "episodes.json"
	DefaultDataDir       = "exports"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Surface SurfaceConfig `yaml:"surface"`
	FPS     int           `yaml:"fps"`
	Candle  IntroConfig   `yaml:"candle"`
	Lava    LavaConfig    `yaml:"lava"`
	Catalog string        `yaml:"catalog"`
	DataDir string        `yaml:"data_dir"`
	Log     LogConfig     `yaml:"log"`
}

type SurfaceConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Ratio  float64 `yaml:"ratio"`
}

type IntroConfig struct {
	Seconds float64 `yaml:"seconds"`
}

type LavaConfig struct {
	Seconds float64          `yaml:"seconds"`
	Field   lava.FieldParams `yaml:"field"`
	Palette lava.Palette     `yaml:"palette"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Surface: SurfaceConfig{Width: DefaultWidth, Height: DefaultHeight, Ratio: DefaultRatio},
		FPS:     DefaultFPS,
		Candle:  IntroConfig{Seconds: DefaultCandleSeconds},
		Lava: LavaConfig{
			Seconds: DefaultLavaSeconds,
			Field:   lava.DefaultFieldParams(),
			Palette: lava.Palette{}.WithDefaults(),
		},
		Catalog: DefaultCatalog,
		DataDir: DefaultDataDir,
		Log:     LogConfig{Level: "info"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
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

// Validate rejects values no surface or run could use. Small surfaces and
// out-of-range ratios are fine; the renderers clamp them.
func (c *Config) Validate() error {
	switch {
	case !finite(c.Surface.Width) || !finite(c.Surface.Height) || c.Surface.Width < 0 || c.Surface.Height < 0:
		return fmt.Errorf("%w: surface %vx%v", ErrInvalid, c.Surface.Width, c.Surface.Height)
	case !finite(c.Surface.Ratio) || c.Surface.Ratio < 0:
		return fmt.Errorf("%w: ratio %v", ErrInvalid, c.Surface.Ratio)
	case c.FPS < 1 || c.FPS > 240:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.FPS)
	case !finite(c.Candle.Seconds) || !finite(c.Lava.Seconds) || c.Candle.Seconds < 0 || c.Lava.Seconds < 0:
		return fmt.Errorf("%w: negative intro duration", ErrInvalid)
	case c.Lava.Field.Scale < 0 || c.Lava.Field.Scale > 1:
		return fmt.Errorf("%w: field scale %v", ErrInvalid, c.Lava.Field.Scale)
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
