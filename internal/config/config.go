package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/timeflow/internal/hsb"
	"github.com/san-kum/timeflow/internal/particle"
	"github.com/san-kum/timeflow/internal/playback"
)

const (
	DefaultWidth     = 800.0
	DefaultHeight    = 450.0
	DefaultTimeScale = 1.0
	DefaultFPS       = 30
	DefaultTheme     = "dusk"
	DefaultLogDir    = "."
)

var (
	ErrRead  = errors.New("config: read failed")
	ErrParse = errors.New("config: parse failed")
	ErrWrite = errors.New("config: write failed")
)

type Config struct {
	Viewport   particle.Viewport `yaml:"viewport"`
	Params     particle.Params   `yaml:"params"`
	TimeScale  float64           `yaml:"time_scale"`
	MaxFrames  int               `yaml:"max_frames"`
	FPS        int               `yaml:"fps"`
	Theme      string            `yaml:"theme"`
	Background hsb.Color         `yaml:"background"`
	LogDir     string            `yaml:"log_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Viewport:   particle.Viewport{Width: DefaultWidth, Height: DefaultHeight},
		Params:     particle.DefaultParams(),
		TimeScale:  DefaultTimeScale,
		FPS:        DefaultFPS,
		Theme:      DefaultTheme,
		Background: hsb.New(210, 80, 10, hsb.MaxAlpha),
		LogDir:     DefaultLogDir,
	}
}

// Load reads a YAML file over the defaults, so a file only needs the keys
// it changes.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over a copy of base.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}
	cfg.sanitize()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// sanitize replaces values the engine cannot run with.
func (c *Config) sanitize() {
	def := DefaultConfig()
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		c.Viewport = def.Viewport
	}
	if c.FPS <= 0 {
		c.FPS = def.FPS
	}
	if c.MaxFrames < 0 {
		c.MaxFrames = 0
	}
	if !(c.Params.Size > 0) {
		c.Params.Size = def.Params.Size
	}
	// rings never expire without a positive fade
	if !(c.Params.RingFade > 0) {
		c.Params.RingFade = def.Params.RingFade
	}
	c.TimeScale = playback.QuantizeTimeScale(c.TimeScale)
	c.Background = c.Background.Normalize()
}

// Settings converts the file representation into session settings.
func (c *Config) Settings() playback.Settings {
	return playback.Settings{
		Viewport:   c.Viewport,
		Params:     c.Params,
		TimeScale:  c.TimeScale,
		MaxFrames:  c.MaxFrames,
		Background: c.Background,
	}
}
