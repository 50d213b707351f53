// Package config loads and persists user settings from a TOML file,
// falling back to built-in defaults for anything unspecified.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/mouselook/parameter"
	"github.com/lixenwraith/mouselook/toml"
)

// Config mirrors the on-disk TOML layout. Durations are stored as
// integer milliseconds so the file stays plain.
type Config struct {
	Camera CameraConfig `toml:"camera"`
	Scene  SceneConfig  `toml:"scene"`
	Render RenderConfig `toml:"render"`
	Input  InputConfig  `toml:"input"`
	Audio  AudioConfig  `toml:"audio"`
}

type CameraConfig struct {
	ScrollSpeed float64 `toml:"scroll_speed"`
}

type SceneConfig struct {
	WidthMult  int `toml:"width_mult"`
	HeightMult int `toml:"height_mult"`
}

type RenderConfig struct {
	FrameMS int  `toml:"frame_ms"`
	HUD     bool `toml:"hud"`
}

type InputConfig struct {
	KeyImpulse   int `toml:"key_impulse"`
	CursorHideMS int `toml:"cursor_hide_ms"`
}

type AudioConfig struct {
	Enabled     bool    `toml:"enabled"`
	FrequencyHz float64 `toml:"frequency_hz"`
	BlipMS      int     `toml:"blip_ms"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Camera: CameraConfig{
			ScrollSpeed: parameter.ScrollSpeed,
		},
		Scene: SceneConfig{
			WidthMult:  parameter.SceneWidthMult,
			HeightMult: parameter.SceneHeightMult,
		},
		Render: RenderConfig{
			FrameMS: int(parameter.FrameUpdateInterval / time.Millisecond),
			HUD:     false,
		},
		Input: InputConfig{
			KeyImpulse:   parameter.KeyImpulse,
			CursorHideMS: int(parameter.CursorHideInterval / time.Millisecond),
		},
		Audio: AudioConfig{
			Enabled:     true,
			FrequencyHz: parameter.BlipFrequency,
			BlipMS:      int(parameter.BlipDuration / time.Millisecond),
		},
	}
}

// Load reads the file at path over the defaults. A missing file is not
// an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config read: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config dir create: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config encode: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config write: %w", err)
	}
	return nil
}

// DefaultPath returns the per-user config location, typically
// ~/.config/mouselook/config.toml.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(base, "mouselook", "config.toml"), nil
}

// Validate rejects values the runtime cannot work with.
func (c *Config) Validate() error {
	if c.Camera.ScrollSpeed <= 0 {
		return fmt.Errorf("config: scroll_speed must be positive, got %v", c.Camera.ScrollSpeed)
	}
	if c.Scene.WidthMult < 1 || c.Scene.HeightMult < 1 {
		return fmt.Errorf("config: scene multipliers must be at least 1, got %dx%d", c.Scene.WidthMult, c.Scene.HeightMult)
	}
	if c.Render.FrameMS < 1 {
		return fmt.Errorf("config: frame_ms must be at least 1, got %d", c.Render.FrameMS)
	}
	if c.Input.KeyImpulse < 1 {
		return fmt.Errorf("config: key_impulse must be at least 1, got %d", c.Input.KeyImpulse)
	}
	if c.Input.CursorHideMS < 1 {
		return fmt.Errorf("config: cursor_hide_ms must be at least 1, got %d", c.Input.CursorHideMS)
	}
	if c.Audio.FrequencyHz <= 0 {
		return fmt.Errorf("config: frequency_hz must be positive, got %v", c.Audio.FrequencyHz)
	}
	if c.Audio.BlipMS < 1 {
		return fmt.Errorf("config: blip_ms must be at least 1, got %d", c.Audio.BlipMS)
	}
	return nil
}

// FrameInterval converts the configured frame budget to a duration.
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Render.FrameMS) * time.Millisecond
}

// HideInterval converts the cursor re-hide period to a duration.
func (c *Config) HideInterval() time.Duration {
	return time.Duration(c.Input.CursorHideMS) * time.Millisecond
}

// BlipDuration converts the audio blip length to a duration.
func (c *Config) BlipDuration() time.Duration {
	return time.Duration(c.Audio.BlipMS) * time.Millisecond
}
