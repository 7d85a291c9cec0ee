package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme           = "ocean"
	DefaultCounterDuration = 1500 * time.Millisecond
	DefaultTickInterval    = 16 * time.Millisecond
	DefaultRevealDuration  = 2 * time.Second
	DefaultFrameRate       = 60
	DefaultScrollThreshold = 3
)

var (
	ErrInvalidConfig = errors.New("config: invalid")
	ErrUnknownPreset = errors.New("config: unknown preset")
)

type Config struct {
	Theme     string          `yaml:"theme"`
	Fixtures  string          `yaml:"fixtures"`
	Log       LogConfig       `yaml:"log"`
	Animation AnimationConfig `yaml:"animation"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// AnimationConfig times the dashboard counters and the landing reveal.
type AnimationConfig struct {
	CounterDuration time.Duration `yaml:"counter_duration"`
	TickInterval    time.Duration `yaml:"tick_interval"`
	RevealDuration  time.Duration `yaml:"reveal_duration"`
	FrameRate       int           `yaml:"frame_rate"`
	ScrollThreshold int           `yaml:"scroll_threshold"`
}

// FrameInterval is the period between reveal frames.
func (a AnimationConfig) FrameInterval() time.Duration {
	if a.FrameRate <= 0 {
		return time.Second / DefaultFrameRate
	}
	return time.Second / time.Duration(a.FrameRate)
}

func DefaultConfig() *Config {
	return &Config{
		Theme: DefaultTheme,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Animation: AnimationConfig{
			CounterDuration: DefaultCounterDuration,
			TickInterval:    DefaultTickInterval,
			RevealDuration:  DefaultRevealDuration,
			FrameRate:       DefaultFrameRate,
			ScrollThreshold: DefaultScrollThreshold,
		},
	}
}

// Load overlays the file at path on the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
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
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	if c.Theme == "" {
		return fmt.Errorf("%w: theme is empty", ErrInvalidConfig)
	}
	a := c.Animation
	if a.CounterDuration <= 0 {
		return fmt.Errorf("%w: animation.counter_duration must be positive", ErrInvalidConfig)
	}
	if a.TickInterval <= 0 {
		return fmt.Errorf("%w: animation.tick_interval must be positive", ErrInvalidConfig)
	}
	if a.TickInterval > a.CounterDuration {
		return fmt.Errorf("%w: animation.tick_interval exceeds counter_duration", ErrInvalidConfig)
	}
	if a.RevealDuration <= 0 {
		return fmt.Errorf("%w: animation.reveal_duration must be positive", ErrInvalidConfig)
	}
	if a.FrameRate <= 0 {
		return fmt.Errorf("%w: animation.frame_rate must be positive", ErrInvalidConfig)
	}
	if a.ScrollThreshold < 0 {
		return fmt.Errorf("%w: animation.scroll_threshold is negative", ErrInvalidConfig)
	}
	return nil
}
